package game

import (
	"errors"
	"fmt"

	"github.com/minaorangina/deal/deck"
	"github.com/minaorangina/deal/protocol"
)

var (
	ErrNilGame          = errors.New("game is nil")
	ErrGameOver         = errors.New("game is already over")
	ErrIllegalPlacement = errors.New("illegal placement")
	ErrIllegalCommand   = errors.New("illegal command")
	ErrInvariant        = errors.New("invariant violated")
	ErrNotYourTurn      = fmt.Errorf("%w: not your turn", ErrIllegalCommand)
)

// New deals a fresh game for numPlayers players
func New(catalog deck.Catalog, numPlayers int, s deck.Shuffler) (*State, error) {
	hands, pile, err := deck.Deal(catalog, numPlayers, s)
	if err != nil {
		return nil, err
	}

	state := &State{
		Players:    make([]*Player, numPlayers),
		Pile:       pile,
		Stage:      AwaitingDraw,
		ActionArea: []deck.Card{},
	}
	for i, hand := range hands {
		state.Players[i] = &Player{
			ID:        i,
			Hand:      hand,
			Bank:      []deck.Card{},
			Groupings: []Grouping{},
		}
	}

	return state, nil
}

// Apply runs one command against s and returns the resulting snapshot and a
// status message. s itself is never modified: on error the original
// snapshot is returned unchanged alongside the error.
func Apply(s *State, msg protocol.InboundMessage) (*State, string, error) {
	if s == nil {
		return nil, "", ErrNilGame
	}
	if s.GameOver() {
		return s, "", ErrGameOver
	}
	if msg.PlayerID != s.Current {
		return s, "", ErrNotYourTurn
	}

	next := s.Clone()

	var (
		message string
		err     error
	)

	switch msg.Command {
	case protocol.Draw:
		message, err = next.draw()
	case protocol.PlayCard:
		message, err = next.playCard(msg.CardIndex, msg.Destination)
	case protocol.PlayActionCard:
		message, err = next.playActionCard(msg.CardIndex)
	case protocol.ResolveAction:
		message, err = next.resolveAction(msg.Target)
	case protocol.SelectProperty:
		message, err = next.selectProperty(msg.Grouping, msg.CardIndex)
	case protocol.Cancel:
		message, err = next.cancel()
	case protocol.Discard:
		message, err = next.discard(msg.Decision)
	case protocol.EndTurn:
		message, err = next.endTurn()
	default:
		err = fmt.Errorf("%w: unexpected command %s", ErrIllegalCommand, msg.Command)
	}

	if err != nil {
		return s, "", err
	}
	if err := next.checkGroupings(); err != nil {
		return s, "", err
	}

	if winner, ok := next.findWinner(); ok {
		next.Stage = GameOver
		next.Pending = nil
		next.Winner = &winner
		message = fmt.Sprintf("Player %d wins with %d complete property sets!", winner+1, SetsToWin)
	}

	return next, message, nil
}

func (s *State) draw() (string, error) {
	if s.Stage != AwaitingDraw || s.HasDrawn {
		return "", fmt.Errorf("%w: already drawn this turn", ErrIllegalCommand)
	}

	s.drawInto(s.CurrentPlayer(), deck.DrawPerTurn)
	s.HasDrawn = true
	s.Stage = Acting

	return fmt.Sprintf("Cards drawn. Play up to %d cards.", MaxCardsPlayed), nil
}

// drawInto draws for p, taking the empty-hand rule into account, and
// returns how many cards were drawn.
func (s *State) drawInto(p *Player, nominal int) int {
	drawn := s.Pile.Draw(deck.DrawCount(len(p.Hand), nominal))
	p.Hand = append(p.Hand, drawn...)
	return len(drawn)
}

func (s *State) checkCanPlay(cardIdx int) error {
	switch {
	case s.Stage != Acting:
		return fmt.Errorf("%w: cannot play cards during %s", ErrIllegalCommand, s.Stage)
	case s.Pending != nil:
		return fmt.Errorf("%w: finish or cancel %s first", ErrIllegalCommand, s.Pending.Card)
	case s.CardsPlayed >= MaxCardsPlayed:
		return fmt.Errorf("%w: already played %d cards this turn", ErrIllegalCommand, MaxCardsPlayed)
	case cardIdx < 0 || cardIdx >= len(s.CurrentPlayer().Hand):
		return fmt.Errorf("%w: no card %d in hand", ErrIllegalCommand, cardIdx)
	}
	return nil
}

func (s *State) playCard(cardIdx int, dest protocol.Destination) (string, error) {
	if dest.Area == protocol.ActionArea {
		return s.playActionCard(cardIdx)
	}
	if err := s.checkCanPlay(cardIdx); err != nil {
		return "", err
	}

	p := s.CurrentPlayer()
	card := p.Hand[cardIdx]
	if err := CanPlace(p, card, dest); err != nil {
		return "", err
	}

	switch dest.Area {
	case protocol.Bank:
		p.Bank = append(p.Bank, card)
	case protocol.PropertyArea:
		colour, err := groupingColour(p, card, dest)
		if err != nil {
			return "", err
		}
		idx := dest.Grouping
		if isNewGrouping(p, idx) {
			idx = protocol.NewGrouping
		}
		if err := p.Place(card, idx, colour); err != nil {
			return "", err
		}
	}

	p.Hand = removeCard(p.Hand, cardIdx)
	s.CardsPlayed++

	return fmt.Sprintf("Card played (%d/%d)", s.CardsPlayed, MaxCardsPlayed), nil
}

func (s *State) cancel() (string, error) {
	if s.Pending == nil {
		return "", fmt.Errorf("%w: nothing to cancel", ErrIllegalCommand)
	}
	card := s.Pending.Card
	s.Pending = nil
	return fmt.Sprintf("Cancelled %s", card), nil
}

func (s *State) endTurn() (string, error) {
	switch {
	case s.Stage != Acting:
		return "", fmt.Errorf("%w: cannot end the turn during %s", ErrIllegalCommand, s.Stage)
	case s.Pending != nil:
		return "", fmt.Errorf("%w: finish or cancel %s first", ErrIllegalCommand, s.Pending.Card)
	}

	if n := len(s.CurrentPlayer().Hand); n > MaxHandSize {
		s.Stage = DiscardRequired
		return fmt.Sprintf("You have %d cards. Discard %d to end your turn.", n, n-MaxHandSize), nil
	}

	return s.turn(), nil
}

func (s *State) discard(indices []int) (string, error) {
	if s.Stage != DiscardRequired {
		return "", fmt.Errorf("%w: no discard required", ErrIllegalCommand)
	}

	p := s.CurrentPlayer()
	if !uniqueInRange(indices, len(p.Hand)) {
		return "", fmt.Errorf("%w: invalid card selection", ErrIllegalCommand)
	}
	if len(p.Hand)-len(indices) != MaxHandSize {
		return "", fmt.Errorf("%w: must discard exactly %d cards", ErrIllegalCommand, len(p.Hand)-MaxHandSize)
	}

	discarded := make([]deck.Card, 0, len(indices))
	for _, i := range indices {
		discarded = append(discarded, p.Hand[i])
	}
	p.Hand = removeCards(p.Hand, indices)
	s.Pile.ReturnToBottom(discarded)

	return fmt.Sprintf("Discarded %d cards. %s", len(discarded), s.turn()), nil
}

// turn passes play to the next player
func (s *State) turn() string {
	s.Current = (s.Current + 1) % len(s.Players)
	s.CardsPlayed = 0
	s.HasDrawn = false
	s.Stage = AwaitingDraw

	return fmt.Sprintf("Player %d's turn. Draw cards to begin.", s.Current+1)
}

// findWinner returns the first player, in turn order, holding enough
// complete sets.
func (s *State) findWinner() (int, bool) {
	for i, p := range s.Players {
		if p.CompleteSets() >= SetsToWin {
			return i, true
		}
	}
	return 0, false
}
