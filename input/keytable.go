package input

import "github.com/lixenwraith/picross/terminal"

// Keymap binds special keys and printable runes to actions
type Keymap struct {
	Keys  map[terminal.Key]Action
	Runes map[rune]Action
}

// DefaultKeymap returns the stock bindings
func DefaultKeymap() *Keymap {
	return &Keymap{
		Keys: map[terminal.Key]Action{
			terminal.KeyUp:    ActionMoveUp,
			terminal.KeyDown:  ActionMoveDown,
			terminal.KeyLeft:  ActionMoveLeft,
			terminal.KeyRight: ActionMoveRight,
		},
		Runes: map[rune]Action{
			'q': ActionQuit,
			'k': ActionMoveUp,
			'j': ActionMoveDown,
			'h': ActionMoveLeft,
			'l': ActionMoveRight,
			'z': ActionToggleFill,
			'x': ActionToggleCross,
		},
	}
}

// Resolve returns the action bound to a key event, ActionNone for unbound
// keys and non-key events
func (km *Keymap) Resolve(ev terminal.Event) Action {
	if ev.Type != terminal.EventKey {
		return ActionNone
	}
	switch ev.Key {
	case terminal.KeyRune, terminal.KeySpace:
		if ev.Modifiers&(terminal.ModCtrl|terminal.ModAlt) != 0 {
			return ActionNone
		}
		return km.Runes[ev.Rune]
	default:
		return km.Keys[ev.Key]
	}
}

// Clone returns a deep copy with independent maps
func (km *Keymap) Clone() *Keymap {
	return &Keymap{
		Keys:  cloneKeyMap(km.Keys),
		Runes: cloneRuneMap(km.Runes),
	}
}

func cloneRuneMap(m map[rune]Action) map[rune]Action {
	c := make(map[rune]Action, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func cloneKeyMap(m map[terminal.Key]Action) map[terminal.Key]Action {
	c := make(map[terminal.Key]Action, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
