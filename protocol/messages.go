package protocol

// Destination says where PlayCard puts a card. Grouping is an index into the
// player's groupings; NewGrouping (or the number of groupings) founds a new
// one, in which case Colour picks the colour for a dual wildcard.
type Destination struct {
	Area     Area   `json:"area"`
	Grouping int    `json:"grouping"`
	Colour   string `json:"colour,omitempty"`
}

// InboundMessage is a command from the current player to the game
type InboundMessage struct {
	PlayerID    int         `json:"playerID"`
	Command     Cmd         `json:"command"`
	CardIndex   int         `json:"cardIndex"`
	Destination Destination `json:"destination"`
	Target      *int        `json:"target,omitempty"`
	Amount      *int        `json:"amount,omitempty"`
	Grouping    int         `json:"grouping"`
	Decision    []int       `json:"decision,omitempty"`
}

// Card is the public view of a card
type Card struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Value       int      `json:"value"`
	Colour      string   `json:"colour,omitempty"`
	Secondary   string   `json:"secondary,omitempty"`
	Mode        string   `json:"mode,omitempty"`
	Action      string   `json:"action,omitempty"`
	RentColours []string `json:"rentColours,omitempty"`
}

// Grouping is the public view of a property grouping
type Grouping struct {
	Colour        string `json:"colour"`
	Cards         []Card `json:"cards"`
	Complete      bool   `json:"complete"`
	RequiredCards int    `json:"requiredCards"`
	Houses        int    `json:"houses"`
	Hotels        int    `json:"hotels"`
	Rent          int    `json:"rent"`
}

// Player is the public view of a player. Hand is only filled in for the
// player the message is addressed to.
type Player struct {
	PlayerID      int        `json:"playerID"`
	HandCount     int        `json:"handCount"`
	Hand          []Card     `json:"hand,omitempty"`
	Bank          []Card     `json:"bank"`
	BankTotal     int        `json:"bankTotal"`
	Groupings     []Grouping `json:"groupings"`
	CompleteCount int        `json:"completeCount"`
}

// Chosen is a card already picked by a multi-step action
type Chosen struct {
	PlayerID int    `json:"playerID"`
	Colour   string `json:"colour"`
	Card     Card   `json:"card"`
}

// Pending describes the action waiting for a selection
type Pending struct {
	Step   string  `json:"step"`
	Card   Card    `json:"card"`
	Target *int    `json:"target,omitempty"`
	Chosen *Chosen `json:"chosen,omitempty"`
}

// OutboundMessage is a message from the game to a player
type OutboundMessage struct {
	PlayerID      int      `json:"playerID"`
	Command       Cmd      `json:"command"`
	Message       string   `json:"message"`
	Stage         string   `json:"stage"`
	CurrentPlayer int      `json:"currentPlayer"`
	CardsPlayed   int      `json:"cardsPlayed"`
	HasDrawn      bool     `json:"hasDrawn"`
	PileCount     int      `json:"pileCount"`
	ActionArea    []Card   `json:"actionArea"`
	Players       []Player `json:"players"`
	Pending       *Pending `json:"pending,omitempty"`
	Winner        *int     `json:"winner,omitempty"`
	Error         string   `json:"error,omitempty"`
}
