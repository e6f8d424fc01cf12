package game

import (
	"github.com/charmbracelet/log"

	"github.com/lixenwraith/picross/audio"
	"github.com/lixenwraith/picross/input"
	"github.com/lixenwraith/picross/render"
)

// Option configures a Game
type Option func(*Game)

// WithKeymap replaces the default key bindings
func WithKeymap(km *input.Keymap) Option {
	return func(g *Game) {
		if km != nil {
			g.keymap = km
		}
	}
}

// WithGlyphs replaces the default glyph table
func WithGlyphs(gl render.Glyphs) Option {
	return func(g *Game) {
		g.glyphs = gl
	}
}

// WithPlayer sets the audio cue player
func WithPlayer(p audio.Player) Option {
	return func(g *Game) {
		if p != nil {
			g.player = p
		}
	}
}

// WithLogger sets the session logger
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}
