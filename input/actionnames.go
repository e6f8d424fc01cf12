package input

import "strings"

// Action is what a key does to the session
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionToggleFill
	ActionToggleCross
)

// actionNames maps actions to canonical config names
var actionNames = [...]string{
	ActionNone:        "none",
	ActionQuit:        "quit",
	ActionMoveUp:      "move_up",
	ActionMoveDown:    "move_down",
	ActionMoveLeft:    "move_left",
	ActionMoveRight:   "move_right",
	ActionToggleFill:  "toggle_fill",
	ActionToggleCross: "toggle_cross",
}

// actionRegistry is the reverse lookup used by the keymap loader
var actionRegistry map[string]Action

func init() {
	actionRegistry = make(map[string]Action, len(actionNames))
	for a, name := range actionNames {
		actionRegistry[name] = Action(a)
	}
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "invalid"
}

// ActionByName resolves a config action name, case-insensitive
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}
