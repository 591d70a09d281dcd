package inventory

import (
	"fmt"
	"strconv"
	"strings"
)

// Action is a player action. The numeric values are the menu codes.
type Action int

const (
	ActionPlay Action = iota + 1
	ActionReserve
	ActionUse
	ActionSwapOne
	ActionSwapBlock
)

var actionNames = map[Action]string{
	ActionPlay:      "play",
	ActionReserve:   "reserve",
	ActionUse:       "use",
	ActionSwapOne:   "swap-one",
	ActionSwapBlock: "swap-block",
}

// Actions lists every action in menu order.
func Actions() []Action {
	return []Action{ActionPlay, ActionReserve, ActionUse, ActionSwapOne, ActionSwapBlock}
}

// String returns the action name, or "action(N)" for unknown values.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "action(" + strconv.Itoa(int(a)) + ")"
}

// Valid reports whether a is one of the five known actions.
func (a Action) Valid() bool {
	_, ok := actionNames[a]
	return ok
}

// ParseAction accepts a menu code ("1".."5") or an action name.
func ParseAction(s string) (Action, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if a := Action(n); a.Valid() {
			return a, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
	for a, name := range actionNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}
