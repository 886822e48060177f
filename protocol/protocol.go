package protocol

import (
	"encoding/json"
	"fmt"
)

// Cmd represents a command sent to the game
type Cmd int

const (
	Null Cmd = iota
	Start
	Draw
	PlayCard       // play a card from hand to the bank or a property grouping
	PlayActionCard // play a card from hand as an action
	ResolveAction  // pick the target of the action in progress
	SelectProperty // pick a grouping/card for the action in progress
	Cancel         // drop the pending selection; the action card stays spent
	Discard
	EndTurn
	Error
	GameOver
)

var CmdNames = map[Cmd]string{
	Null:           "Null",
	Start:          "Start",
	Draw:           "Draw",
	PlayCard:       "PlayCard",
	PlayActionCard: "PlayActionCard",
	ResolveAction:  "ResolveAction",
	SelectProperty: "SelectProperty",
	Cancel:         "Cancel",
	Discard:        "Discard",
	EndTurn:        "EndTurn",
	Error:          "Error",
	GameOver:       "GameOver",
}

var NameToCmd = map[string]Cmd{
	"Null":           Null,
	"Start":          Start,
	"Draw":           Draw,
	"PlayCard":       PlayCard,
	"PlayActionCard": PlayActionCard,
	"ResolveAction":  ResolveAction,
	"SelectProperty": SelectProperty,
	"Cancel":         Cancel,
	"Discard":        Discard,
	"EndTurn":        EndTurn,
	"Error":          Error,
	"GameOver":       GameOver,
}

func (c Cmd) String() string {
	if name, ok := CmdNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Cmd(%d)", int(c))
}

func (c Cmd) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Cmd) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	cmd, ok := NameToCmd[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	*c = cmd
	return nil
}

// Area is where a played card goes
type Area int

const (
	Bank Area = iota
	PropertyArea
	ActionArea
)

var areaNames = map[Area]string{
	Bank:         "bank",
	PropertyArea: "property",
	ActionArea:   "action",
}

func (a Area) String() string {
	return areaNames[a]
}

func (a Area) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Area) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for area, n := range areaNames {
		if n == name {
			*a = area
			return nil
		}
	}
	return fmt.Errorf("unknown area %q", name)
}

// NewGrouping is the grouping index that asks for a new grouping to be founded
const NewGrouping = -1
