package deck

// Colour names a property colour
type Colour string

// AnyColour is the colour carried by universal wildcards
const AnyColour Colour = "any"

const (
	Brown     Colour = "brown"
	DarkBlue  Colour = "dark blue"
	Mint      Colour = "mint"
	LightBlue Colour = "light blue"
	Pink      Colour = "pink"
	Orange    Colour = "orange"
	Red       Colour = "red"
	Yellow    Colour = "yellow"
	Green     Colour = "green"
	Black     Colour = "black"
)

// RequiredCards returns how many cards complete a grouping of colour.
// Unknown colours need a single card.
func RequiredCards(colour Colour) int {
	switch colour {
	case Brown, DarkBlue, Mint:
		return 2
	case LightBlue, Pink, Orange, Red, Yellow, Green:
		return 3
	case Black:
		return 4
	default:
		return 1
	}
}
