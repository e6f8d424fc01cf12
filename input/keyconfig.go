package input

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/picross/terminal"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Bindings is the TOML shape of a keymap: [keys] maps terminal key names,
// [runes] maps single characters, both to action names
type Bindings struct {
	Keys  map[string]string `toml:"keys"`
	Runes map[string]string `toml:"runes"`
}

// LoadKeymap parses TOML keymap data into a sparse override Keymap
// Returns error on unknown sections, action names, key names, or parse failure
func LoadKeymap(data []byte) (*Keymap, error) {
	var b Bindings
	md, err := toml.Decode(string(data), &b)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown entry %q", undecoded[0].String())
	}
	return b.Keymap()
}

// Keymap resolves the raw bindings into a sparse override Keymap
// Only keys present are populated; "none" entries are kept so Merge can unbind
func (b Bindings) Keymap() (*Keymap, error) {
	km := &Keymap{
		Keys:  make(map[terminal.Key]Action, len(b.Keys)),
		Runes: make(map[rune]Action, len(b.Runes)),
	}

	for keyStr, name := range b.Keys {
		k, ok := terminal.KeyByName(strings.ToLower(keyStr))
		if !ok {
			return nil, fmt.Errorf("[keys] unknown key name: %q", keyStr)
		}
		a, err := resolveAction(name)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		km.Keys[k] = a
	}

	for keyStr, name := range b.Runes {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
		}
		a, err := resolveAction(name)
		if err != nil {
			return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
		}
		km.Runes[r] = a
	}

	return km, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

func resolveAction(name string) (Action, error) {
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}

// Merge returns a new Keymap with base values overridden by override entries
// Override entries bound to ActionNone delete the key from the result
func Merge(base, override *Keymap) *Keymap {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.Keys, override.Keys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]Action) {
	for k, v := range override {
		if v == ActionNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
