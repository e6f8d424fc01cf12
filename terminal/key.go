package terminal

import "github.com/gdamore/tcell/v2"

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete
	KeySpace

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter, excluding H/I/J/M which terminals report as
	// Backspace/Tab/newline/Enter
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// tcellKeys maps tcell special keys to Key
// tcell aliases (KeyCtrlH == KeyBackspace etc.) appear once
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,

	tcell.KeyUp:     KeyUp,
	tcell.KeyDown:   KeyDown,
	tcell.KeyLeft:   KeyLeft,
	tcell.KeyRight:  KeyRight,
	tcell.KeyHome:   KeyHome,
	tcell.KeyEnd:    KeyEnd,
	tcell.KeyPgUp:   KeyPageUp,
	tcell.KeyPgDn:   KeyPageDown,
	tcell.KeyInsert: KeyInsert,

	tcell.KeyF1:  KeyF1,
	tcell.KeyF2:  KeyF2,
	tcell.KeyF3:  KeyF3,
	tcell.KeyF4:  KeyF4,
	tcell.KeyF5:  KeyF5,
	tcell.KeyF6:  KeyF6,
	tcell.KeyF7:  KeyF7,
	tcell.KeyF8:  KeyF8,
	tcell.KeyF9:  KeyF9,
	tcell.KeyF10: KeyF10,
	tcell.KeyF11: KeyF11,
	tcell.KeyF12: KeyF12,

	tcell.KeyCtrlA: KeyCtrlA,
	tcell.KeyCtrlB: KeyCtrlB,
	tcell.KeyCtrlC: KeyCtrlC,
	tcell.KeyCtrlD: KeyCtrlD,
	tcell.KeyCtrlE: KeyCtrlE,
	tcell.KeyCtrlF: KeyCtrlF,
	tcell.KeyCtrlG: KeyCtrlG,
	tcell.KeyCtrlK: KeyCtrlK,
	tcell.KeyCtrlL: KeyCtrlL,
	tcell.KeyCtrlN: KeyCtrlN,
	tcell.KeyCtrlO: KeyCtrlO,
	tcell.KeyCtrlP: KeyCtrlP,
	tcell.KeyCtrlQ: KeyCtrlQ,
	tcell.KeyCtrlR: KeyCtrlR,
	tcell.KeyCtrlS: KeyCtrlS,
	tcell.KeyCtrlT: KeyCtrlT,
	tcell.KeyCtrlU: KeyCtrlU,
	tcell.KeyCtrlV: KeyCtrlV,
	tcell.KeyCtrlW: KeyCtrlW,
	tcell.KeyCtrlX: KeyCtrlX,
	tcell.KeyCtrlY: KeyCtrlY,
	tcell.KeyCtrlZ: KeyCtrlZ,
}

func modifiersFromTcell(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}

// keyEventFromTcell converts a tcell key press into an Event
func keyEventFromTcell(ev *tcell.EventKey) Event {
	mod := modifiersFromTcell(ev.Modifiers())

	// tcell reports plain Ctrl+letter as KeyCtrlA..KeyCtrlZ
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return Event{Type: EventKey, Key: KeySpace, Rune: r, Modifiers: mod}
		}
		return Event{Type: EventKey, Key: KeyRune, Rune: r, Modifiers: mod}
	}

	if k, ok := tcellKeys[ev.Key()]; ok {
		return Event{Type: EventKey, Key: k, Modifiers: mod}
	}
	return Event{Type: EventKey, Key: KeyNone, Modifiers: mod}
}
