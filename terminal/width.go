package terminal

import "github.com/mattn/go-runewidth"

// Width measures text in terminal cells
// Ambiguous-width runes (box drawing, blocks) count as one cell in every locale
var Width = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}
