package deck

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	ErrInvalidCatalog = errors.New("invalid card catalog")
	ErrEmptyCatalog   = errors.New("card catalog has no cards")
)

// Catalog is the immutable reference list of every card in a game
type Catalog []Card

type catalogFile struct {
	Cards []cardEntry `yaml:"cards"`
}

type cardEntry struct {
	ID           string                 `yaml:"id"`
	Name         string                 `yaml:"name"`
	Count        int                    `yaml:"count"`
	Category     string                 `yaml:"category"`
	Value        int                    `yaml:"value"`
	Mode         string                 `yaml:"mode"`
	Colour       Colour                 `yaml:"colour"`
	Secondary    Colour                 `yaml:"secondary"`
	Action       ActionKind             `yaml:"action"`
	RentColours  []Colour               `yaml:"rent_colours"`
	Rent         map[int]int            `yaml:"rent"`
	RentByColour map[Colour]map[int]int `yaml:"rent_by_colour"`
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() Catalog {
	c, err := LoadCatalog(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is broken: %v", err))
	}
	return c
}

// LoadCatalogFile reads a YAML catalog from path
func LoadCatalogFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadCatalog(f)
}

// LoadCatalog parses and validates a YAML catalog. Entries with a count
// greater than one expand into numbered copies.
func LoadCatalog(r io.Reader) (Catalog, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if len(file.Cards) == 0 {
		return nil, ErrEmptyCatalog
	}

	catalog := Catalog{}
	seen := map[string]struct{}{}

	for _, entry := range file.Cards {
		card, err := entry.toCard()
		if err != nil {
			return nil, err
		}

		copies := entry.Count
		if copies < 1 {
			copies = 1
		}

		for i := 1; i <= copies; i++ {
			c := card
			if copies > 1 {
				c.ID = fmt.Sprintf("%s-%d", entry.ID, i)
			}
			if _, dup := seen[c.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate card id %q", ErrInvalidCatalog, c.ID)
			}
			seen[c.ID] = struct{}{}
			catalog = append(catalog, c)
		}
	}

	return catalog, nil
}

func (e cardEntry) toCard() (Card, error) {
	invalid := func(format string, a ...interface{}) error {
		return fmt.Errorf("%w: card %q: %s", ErrInvalidCatalog, e.ID, fmt.Sprintf(format, a...))
	}

	if e.ID == "" {
		return Card{}, fmt.Errorf("%w: card with no id", ErrInvalidCatalog)
	}
	if e.Value < 0 {
		return Card{}, invalid("negative value %d", e.Value)
	}

	card := Card{
		ID:          e.ID,
		Name:        e.Name,
		Value:       e.Value,
		Colour:      e.Colour,
		Secondary:   e.Secondary,
		Action:      e.Action,
		RentColours: e.RentColours,
		Rent:        RentTable{Flat: e.Rent, ByColour: e.RentByColour},
	}

	switch e.Category {
	case "money":
		card.Category = Money
	case "property":
		card.Category = Property
	case "action":
		card.Category = Action
	case "wildcard":
		card.Category = Wildcard
	default:
		return Card{}, invalid("unknown category %q", e.Category)
	}

	switch e.Mode {
	case "", "single":
		card.Mode = Single
	case "dual":
		card.Mode = Dual
	case "universal":
		card.Mode = Universal
		card.Colour = AnyColour
	default:
		return Card{}, invalid("unknown colour mode %q", e.Mode)
	}

	switch card.Category {
	case Property:
		if card.Mode != Single || card.Colour == "" {
			return Card{}, invalid("property cards need exactly one colour")
		}
	case Wildcard:
		if card.Mode == Single {
			return Card{}, invalid("wildcards must be dual or universal")
		}
		if card.Mode == Dual && (card.Colour == "" || card.Secondary == "" || card.Colour == card.Secondary) {
			return Card{}, invalid("dual wildcards need two different colours")
		}
	case Action:
		if _, ok := actionKinds[card.Action]; !ok {
			return Card{}, invalid("unknown action %q", card.Action)
		}
		if card.Action == Rent && (len(card.RentColours) < 1 || len(card.RentColours) > 2) {
			return Card{}, invalid("rent cards name one or two colours")
		}
	}

	return card, nil
}
