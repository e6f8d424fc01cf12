// Package game runs an interactive session: it owns the board and cursor,
// reads one terminal event at a time and redraws the full frame after every
// accepted action.
package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/picross/audio"
	"github.com/lixenwraith/picross/board"
	"github.com/lixenwraith/picross/input"
	"github.com/lixenwraith/picross/puzzle"
	"github.com/lixenwraith/picross/render"
	"github.com/lixenwraith/picross/terminal"
)

var (
	// ErrEmptyPuzzle is returned by New for a puzzle without columns or rows
	ErrEmptyPuzzle = errors.New("puzzle has no cells")
	// ErrStarted is returned by Run on a game that already ran
	ErrStarted = errors.New("game already started")
)

// Game is one play session over a loaded puzzle
type Game struct {
	puzzle *puzzle.Puzzle
	board  *board.Board
	cursor *board.Cursor

	keymap *input.Keymap
	glyphs render.Glyphs
	player audio.Player
	logger *log.Logger

	state State
}

// New creates a session with a blank board and the cursor at (0, 0)
func New(p *puzzle.Puzzle, opts ...Option) (*Game, error) {
	cols, rows := p.Dimensions()
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyPuzzle, cols, rows)
	}

	g := &Game{
		puzzle: p,
		board:  board.New(cols, rows),
		cursor: board.NewCursor(cols, rows),
		keymap: input.DefaultKeymap(),
		glyphs: render.DefaultGlyphs(),
		player: audio.Silent{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// State returns the current lifecycle phase
func (g *Game) State() State {
	return g.state
}

// Board returns the session board
func (g *Game) Board() *board.Board {
	return g.board
}

// Cursor returns the session cursor
func (g *Game) Cursor() *board.Cursor {
	return g.cursor
}

// Run takes over the terminal until the quit key or a driver failure
// Terminal restoration runs however the session ends; a restoration failure
// is joined with the session error
func (g *Game) Run(d terminal.Driver) (err error) {
	if g.state != StateInitializing {
		return ErrStarted
	}

	defer func() {
		g.setState(StateTerminated)
		if rerr := restore(d); rerr != nil {
			g.logger.Error("terminal restore failed", "err", rerr)
			err = errors.Join(err, rerr)
		}
	}()

	r := render.NewRenderer(g.puzzle, g.board, g.cursor, g.glyphs)

	if err := g.initialize(d, r); err != nil {
		return err
	}

	g.setState(StateRunning)
	return g.loop(d, r)
}

func (g *Game) initialize(d terminal.Driver, r *render.Renderer) error {
	if err := d.EnableRawMode(); err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	if err := d.HideCursor(); err != nil {
		return fmt.Errorf("hide cursor: %w", err)
	}

	oldW, oldH, err := d.Size()
	if err != nil {
		return fmt.Errorf("query terminal size: %w", err)
	}

	requested, err := r.Fit(d)
	if err != nil {
		return err
	}
	if !requested {
		return nil
	}

	w, h := r.FrameSize()
	g.logger.Debug("waiting for resize", "width", w, "height", h, "from_width", oldW, "from_height", oldH)

	// Events before the acknowledgement are dropped, including resize
	// reports that still carry the pre-request size
	for {
		ev, err := d.ReadEvent()
		if err != nil {
			return fmt.Errorf("wait for resize: %w", err)
		}
		if ev.Type != terminal.EventResize {
			continue
		}
		if ev.Width == oldW && ev.Height == oldH {
			g.logger.Debug("stale resize dropped", "width", ev.Width, "height", ev.Height)
			continue
		}
		g.logger.Debug("resized", "width", ev.Width, "height", ev.Height)
		return nil
	}
}

func (g *Game) loop(d terminal.Driver, r *render.Renderer) error {
	if err := r.Draw(d); err != nil {
		return err
	}

	for {
		ev, err := d.ReadEvent()
		if err != nil {
			return fmt.Errorf("read event: %w", err)
		}

		action := g.keymap.Resolve(ev)
		switch action {
		case input.ActionNone:
			continue
		case input.ActionQuit:
			g.logger.Debug("action", "action", action)
			return nil
		default:
			g.apply(action)
		}

		if err := r.Draw(d); err != nil {
			return err
		}
	}
}

// apply mutates board or cursor for a non-quit action
func (g *Game) apply(action input.Action) {
	col, row := g.cursor.Position()

	switch action {
	case input.ActionMoveUp:
		g.cursor.MoveUp()
	case input.ActionMoveDown:
		g.cursor.MoveDown()
	case input.ActionMoveLeft:
		g.cursor.MoveLeft()
	case input.ActionMoveRight:
		g.cursor.MoveRight()
	case input.ActionToggleFill:
		g.board.ToggleFill(col, row)
		g.player.Play(cueFor(g.board.Get(col, row)))
	case input.ActionToggleCross:
		g.board.ToggleCross(col, row)
		g.player.Play(cueFor(g.board.Get(col, row)))
	case input.ActionNone, input.ActionQuit:
	}

	ncol, nrow := g.cursor.Position()
	g.logger.Debug("action", "action", action, "col", ncol, "row", nrow, "cell", g.board.Get(ncol, nrow))
}

func (g *Game) setState(s State) {
	if g.state == s {
		return
	}
	g.logger.Info("state", "from", g.state, "to", s)
	g.state = s
}

func cueFor(s board.CellState) audio.Cue {
	switch s {
	case board.Filled:
		return audio.CueFill
	case board.Crossed:
		return audio.CueCross
	case board.Blank:
		return audio.CueClear
	default:
		return audio.CueClear
	}
}

// restore leaves raw mode and shows the cursor, attempting both
func restore(d terminal.Driver) error {
	var errs []error
	if err := d.DisableRawMode(); err != nil {
		errs = append(errs, fmt.Errorf("disable raw mode: %w", err))
	}
	if err := d.ShowCursor(); err != nil {
		errs = append(errs, fmt.Errorf("show cursor: %w", err))
	}
	return errors.Join(errs...)
}
