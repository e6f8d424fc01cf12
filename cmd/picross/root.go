package main

import (
	"errors"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/picross/audio"
	"github.com/lixenwraith/picross/config"
	"github.com/lixenwraith/picross/game"
	"github.com/lixenwraith/picross/puzzle"
	"github.com/lixenwraith/picross/terminal"
)

var (
	errMissingPuzzle = errors.New("missing argument: path to puzzle file")
	errTooManyArgs   = errors.New("too many arguments")
)

// driverFactory opens the terminal; swapped in tests
type driverFactory func() (terminal.Driver, error)

func newTerminal() (terminal.Driver, error) {
	return terminal.NewScreen()
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(newTerminal)
}

func newRootCmdWith(open driverFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "picross <puzzle-file>",
		Short: "Solve nonogram puzzles in the terminal",
		Long: "picross loads a puzzle file and opens an interactive grid.\n" +
			"Move with the arrow keys or h/j/k/l, fill with z, cross out with x, quit with q.\n" +
			"Settings are read from the picross config.toml in the user config directory.",
		Args:          puzzleArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], open)
		},
	}
}

func puzzleArg(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return errMissingPuzzle
	case len(args) > 1:
		return errTooManyArgs
	}
	return nil
}

// run loads everything that can fail before the terminal is touched, then
// hands the terminal to the game
func run(path string, open driverFactory) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	if cfg.Source != "" {
		logger.Info("config loaded", "path", cfg.Source)
	}

	p, err := puzzle.Load(path)
	if err != nil {
		return err
	}
	cols, rows := p.Dimensions()
	logger.Info("puzzle loaded", "path", path, "cols", cols, "rows", rows)

	player := openPlayer(cfg.Audio, logger)
	if s, ok := player.(*audio.Speaker); ok {
		defer s.Close()
	}

	g, err := game.New(p,
		game.WithKeymap(cfg.Keymap),
		game.WithGlyphs(cfg.Glyphs),
		game.WithPlayer(player),
		game.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	d, err := open()
	if err != nil {
		return err
	}
	return g.Run(d)
}

// openPlayer returns a speaker player, or Silent when audio is off or unavailable
func openPlayer(cfg *audio.Config, logger *log.Logger) audio.Player {
	s, err := audio.NewSpeaker(cfg)
	if err != nil {
		logger.Info("audio unavailable, continuing without sound", "err", err)
		return audio.Silent{}
	}
	return s
}

// newErrorLogger builds the stderr logger used for fatal CLI errors
func newErrorLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix: "picross",
	})
	styles := log.DefaultStyles()
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("9"))
	styles.Prefix = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	l.SetStyles(styles)
	return l
}
