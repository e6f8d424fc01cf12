// Package terminal abstracts the character-cell terminal behind a small
// capability interface.
//
// Features:
//   - Driver: raw mode, cursor visibility, absolute positioning with a
//     save/restore slot, size query and resize request, clear, text writes
//   - Event model: key presses (special keys, runes, modifiers) and resizes
//   - Screen: Driver backed by tcell, usable over a real tty or tcell's
//     simulation screen
//   - EmergencyReset for crash paths where the Driver can no longer be trusted
package terminal
