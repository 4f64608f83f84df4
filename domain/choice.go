package domain

import (
	"strconv"
	"strings"
)

// Choice is the classification selector offered to the user.
type Choice int

const (
	ChoiceSend      Choice = 1
	ChoiceDisregard Choice = 2
	ChoiceStore     Choice = 3
)

// Status maps a choice to the terminal status it produces.
func (c Choice) Status() (Status, bool) {
	switch c {
	case ChoiceSend:
		return StatusSent, true
	case ChoiceDisregard:
		return StatusDisregarded, true
	case ChoiceStore:
		return StatusStored, true
	default:
		return "", false
	}
}

// ParseChoice accepts the menu number or the action name.
// Unknown input returns a zero Choice which Status rejects.
func ParseChoice(input string) Choice {
	input = strings.ToLower(strings.TrimSpace(input))
	switch input {
	case "send":
		return ChoiceSend
	case "disregard", "discard":
		return ChoiceDisregard
	case "store":
		return ChoiceStore
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0
	}
	return Choice(n)
}
