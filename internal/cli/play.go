package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/villagegame/internal/config"
	"github.com/mcoot/villagegame/internal/factory"
	"github.com/mcoot/villagegame/internal/model"
	"github.com/mcoot/villagegame/internal/services/game"
)

var errUnknownCommand = errors.New("unknown command")

const playHelp = `Commands:
  select <type>      choose the building to place (see "village types")
  place <row> <col>  build the selected type, spending one build
  board              show the board and remaining builds
  score              show the current score without ending the game
  end                end the game and score it; on a finished game, start over
  restart            clear the board and start over
  help               show this help
  quit               leave`

func newPlayCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a session interactively",
		Long: `Play a session, reading one command per line from stdin.

` + playHelp + `

The game ends on its own once the last build is spent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(app, newOutput(cmd))
			if watch {
				if err := s.watch(loader); err != nil {
					return err
				}
			}
			return s.run(cmd.InOrStdin())
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Apply rule changes from the config file while playing")

	return cmd
}

// session drives the game controller from text commands
type session struct {
	app     *factory.App
	out     *Output
	logger  *slog.Logger
	reloads chan *config.Config
}

func newSession(app *factory.App, out *Output) *session {
	return &session{
		app:    app,
		out:    out,
		logger: app.Logger.With(slog.String("component", "cli")),
	}
}

// watch queues config reloads; they are applied between commands so the
// controller is only ever touched from the command loop
func (s *session) watch(loader *config.Loader) error {
	s.reloads = make(chan *config.Config, 1)
	return loader.Watch(func(c *config.Config, err error) {
		if err != nil {
			s.logger.Warn("config reload rejected", slog.String("error", err.Error()))
			return
		}
		// Keep only the latest
		select {
		case <-s.reloads:
		default:
		}
		s.reloads <- c
	})
}

func (s *session) applyReloads() {
	select {
	case c := <-s.reloads:
		s.app.GameController.SetRules(*c)
		s.out.PrintMessage("Rules reloaded")
	default:
	}
}

func (s *session) run(in io.Reader) error {
	controller := s.app.GameController
	unsubscribe := controller.Subscribe(game.ListenerFunc(func(e model.Event) {
		s.out.Print(newEventView(e, s.app.ScoringService.Describe))
	}))
	defer unsubscribe()

	if _, err := controller.Start(); err != nil {
		return err
	}
	s.out.PrintMessage(`Type "help" for commands`)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		s.applyReloads()

		quit, err := s.safeExec(scanner.Text())
		if err != nil {
			s.out.PrintError(err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// safeExec recovers from a panic in a command so the session survives it
func (s *session) safeExec(line string) (quit bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
				slog.String("command", line),
			)
			err = fmt.Errorf("internal error running %q", line)
		}
	}()
	return s.exec(line)
}

// exec runs one command line and reports whether the session should stop
func (s *session) exec(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	controller := s.app.GameController
	args := fields[1:]

	switch strings.ToLower(fields[0]) {
	case "select", "s":
		if len(args) == 0 {
			return false, errors.New("usage: select <type>")
		}
		t, err := model.ParseCellType(strings.Join(args, " "))
		if err != nil {
			return false, err
		}
		return false, controller.Select(t)

	case "place", "p":
		pos, err := parsePosition(args)
		if err != nil {
			return false, err
		}
		_, err = controller.Place(pos)
		return false, err

	case "board", "b":
		s.out.Print(newGameStatus(controller.Game()))

	case "score":
		grid := controller.Game().Grid
		s.out.Print(newScoreResult(grid, s.app.BoardService.EvaluateBoard(grid)))

	case "end":
		_, err := controller.End()
		return false, err

	case "restart":
		return false, controller.Restart()

	case "help", "?":
		s.out.PrintMessage(playHelp)

	case "quit", "exit", "q":
		return true, nil

	default:
		return false, fmt.Errorf("%w %q, try \"help\"", errUnknownCommand, fields[0])
	}

	return false, nil
}

func parsePosition(args []string) (model.Position, error) {
	if len(args) != 2 {
		return model.Position{}, errors.New("usage: place <row> <col>")
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return model.Position{}, fmt.Errorf("row %q is not a number", args[0])
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return model.Position{}, fmt.Errorf("column %q is not a number", args[1])
	}
	return model.Position{Row: row, Col: col}, nil
}
