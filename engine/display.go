package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/minaorangina/deal/protocol"
)

var (
	headerText  = color.New(color.FgWhite, color.Bold)
	infoText    = color.New(color.FgCyan)
	warnText    = color.New(color.FgHiYellow)
	errorText   = color.New(color.FgRed)
	successText = color.New(color.FgGreen)
)

var colourText = map[string]*color.Color{
	"brown":      color.New(color.FgYellow, color.Faint),
	"dark blue":  color.New(color.FgBlue),
	"mint":       color.New(color.FgHiGreen),
	"light blue": color.New(color.FgHiCyan),
	"pink":       color.New(color.FgHiMagenta),
	"orange":     color.New(color.FgHiRed),
	"red":        color.New(color.FgRed),
	"yellow":     color.New(color.FgHiYellow),
	"green":      color.New(color.FgGreen),
	"black":      color.New(color.FgHiBlack),
}

// SendText writes formatted text to w
func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

func colourise(colour string) string {
	if c, ok := colourText[colour]; ok {
		return c.Sprint(colour)
	}
	return colour
}

func describeCard(c protocol.Card) string {
	switch c.Category {
	case "property":
		return fmt.Sprintf("%s (%s)", c.Name, colourise(c.Colour))
	case "wildcard":
		if c.Mode == "universal" {
			return c.Name
		}
		return fmt.Sprintf("%s (%s/%s)", c.Name, colourise(c.Colour), colourise(c.Secondary))
	}
	return c.Name
}

// RenderView draws a snapshot from the point of view of its addressee
func RenderView(w io.Writer, msg protocol.OutboundMessage) {
	if msg.Error != "" {
		errorText.Fprintf(w, "%s\n", msg.Error)
	} else if msg.Message != "" {
		successText.Fprintf(w, "%s\n", msg.Message)
	}

	if msg.Winner != nil {
		headerText.Fprintf(w, "\nGame over! Player %d wins.\n", *msg.Winner+1)
		return
	}

	headerText.Fprintf(w, "\nPlayer %d's turn", msg.CurrentPlayer+1)
	infoText.Fprintf(w, " [%s] plays %d/3, %d cards in the pile\n", msg.Stage, msg.CardsPlayed, msg.PileCount)

	for _, p := range msg.Players {
		renderTable(w, p)
	}

	if msg.PlayerID >= 0 && msg.PlayerID < len(msg.Players) {
		renderHand(w, msg.Players[msg.PlayerID].Hand)
	}

	if msg.Pending != nil {
		pending := fmt.Sprintf("Waiting on %s: %s", msg.Pending.Card.Name, msg.Pending.Step)
		if msg.Pending.Target != nil {
			pending += fmt.Sprintf(" against Player %d", *msg.Pending.Target+1)
		}
		if chosen := msg.Pending.Chosen; chosen != nil {
			pending += fmt.Sprintf(", taking %s from their %s set", chosen.Card.Name, colourise(chosen.Colour))
		}
		warnText.Fprintf(w, "%s\n", pending)
	}
}

func renderTable(w io.Writer, p protocol.Player) {
	headerText.Fprintf(w, "\nPlayer %d: %dM banked, %d complete, %d in hand\n", p.PlayerID+1, p.BankTotal, p.CompleteCount, p.HandCount)
	if len(p.Groupings) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Set", "Colour", "Cards", "Complete", "Rent"})

	for i, g := range p.Groupings {
		names := make([]string, 0, len(g.Cards))
		for _, c := range g.Cards {
			names = append(names, c.Name)
		}
		complete := fmt.Sprintf("%d/%d", len(g.Cards), g.RequiredCards)
		if g.Complete {
			complete = successText.Sprint(complete)
		}
		rent := fmt.Sprintf("%dM", g.Rent)
		if g.Houses+g.Hotels > 0 {
			rent += fmt.Sprintf(" (%dH %dT)", g.Houses, g.Hotels)
		}
		t.AppendRow(table.Row{i + 1, colourise(g.Colour), strings.Join(names, ", "), complete, rent})
	}

	t.SetStyle(table.StyleLight)
	t.Render()
}

func renderHand(w io.Writer, hand []protocol.Card) {
	if len(hand) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Your hand")
	t.AppendHeader(table.Row{"#", "Card", "Type", "Value"})
	for i, c := range hand {
		t.AppendRow(table.Row{i + 1, describeCard(c), c.Category, fmt.Sprintf("%dM", c.Value)})
	}
	t.SetStyle(table.StyleRounded)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.Render()
}
