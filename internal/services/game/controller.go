package game

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/villagegame/internal/config"
	"github.com/mcoot/villagegame/internal/dependencies/clock"
	"github.com/mcoot/villagegame/internal/model"
	"github.com/mcoot/villagegame/internal/services/board"
	"github.com/mcoot/villagegame/internal/services/scoring"
)

// Controller runs a single-player session: building selection, the build
// budget, per-type caps and the end-of-game toggle.
type Controller struct {
	cfg            config.Config
	boardService   board.ServiceInterface
	scoringService scoring.ServiceInterface
	clock          clock.Clock
	logger         *slog.Logger

	game *model.Game
	registry
}

// NewController creates a new GameController. Call Start before playing.
func NewController(
	cfg config.Config,
	boardService board.ServiceInterface,
	scoringService scoring.ServiceInterface,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		cfg:            cfg,
		boardService:   boardService,
		scoringService: scoringService,
		clock:          clock,
		logger:         logger.With(slog.String("component", "game")),
	}
}

// Start begins a fresh session on a new grid sized from the current rules
func (c *Controller) Start() (*model.Game, error) {
	grid, err := c.boardService.CreateBoard(c.cfg.Rows, c.cfg.Columns)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	c.game = &model.Game{
		Grid:       grid,
		State:      model.GameStateBuilding,
		Selected:   model.CellHouse,
		BuildLimit: c.cfg.BuildLimit,
		BuildsLeft: c.cfg.BuildLimit,
		StartedAt:  now,
		UpdatedAt:  now,
	}

	c.logger.Info("game started",
		slog.Int("rows", grid.Rows()),
		slog.Int("columns", grid.Columns()),
		slog.Int("builds_left", c.game.BuildsLeft),
	)
	c.publish(model.EventGameStarted, model.GameStartedPayload{
		Rows:       grid.Rows(),
		Columns:    grid.Columns(),
		BuildsLeft: c.game.BuildsLeft,
	})

	return c.game, nil
}

// Game returns the current session, or nil before Start
func (c *Controller) Game() *model.Game {
	return c.game
}

// Rules returns the rules the controller is playing with
func (c *Controller) Rules() config.Config {
	return c.cfg
}

// SetRules swaps in new rules. Caps apply to the next placement; the build
// limit and grid size take effect on the next Restart or Start.
func (c *Controller) SetRules(cfg config.Config) {
	c.cfg = cfg
	c.logger.Info("rules updated",
		slog.Int("rows", cfg.Rows),
		slog.Int("columns", cfg.Columns),
		slog.Int("build_limit", cfg.BuildLimit),
	)
}

// Select changes the building that the next placement will use
func (c *Controller) Select(t model.CellType) error {
	game, err := c.current()
	if err != nil {
		return err
	}
	if err := board.ValidateType(t); err != nil {
		return err
	}
	if t == model.CellNone {
		return fmt.Errorf("%w: %w", model.ErrNoSelection, model.ErrUnknownCellType)
	}

	game.Selected = t
	game.UpdatedAt = c.clock.Now()
	c.publish(model.EventBuildingChosen, model.BuildingChosenPayload{Type: t})
	return nil
}

// Place builds the selected type at pos. Road segments are merged straight
// after, and spending the last build ends the game.
func (c *Controller) Place(pos model.Position) (*model.Placement, error) {
	game, err := c.current()
	if err != nil {
		return nil, err
	}
	if game.IsOver() {
		return nil, model.ErrGameOver
	}

	t := game.Selected
	if limit, ok := c.cfg.Limit(t); ok {
		if n := game.Grid.CountOfType(t); n > limit {
			return nil, fmt.Errorf("%w: %d %s already built (cap %d)", model.ErrPlacementLimit, n, t, limit)
		}
	}

	placement, err := c.boardService.PlaceType(game.Grid, pos, t)
	if err != nil {
		return nil, err
	}
	rewritten := c.boardService.NormalizeRoads(game.Grid)

	game.BuildsLeft--
	game.UpdatedAt = c.clock.Now()

	c.publish(model.EventCellPlaced, model.CellPlacedPayload{
		Position:   pos,
		Type:       t,
		Previous:   placement.Previous,
		Delta:      placement.Delta,
		BuildsLeft: game.BuildsLeft,
	})
	if rewritten > 0 {
		c.publish(model.EventRoadsMerged, model.RoadsMergedPayload{Rewritten: rewritten})
	}

	if game.BuildsLeft <= 0 {
		c.end(game)
	}

	return placement, nil
}

// End scores the board and closes the session. On a session that has
// already ended it restarts instead and returns a nil score.
func (c *Controller) End() (*model.BoardScore, error) {
	game, err := c.current()
	if err != nil {
		return nil, err
	}
	if game.IsOver() {
		return nil, c.restart(game)
	}
	return c.end(game), nil
}

// Restart clears the board and the build budget. The grid is rebuilt when
// the rules now ask for a different size.
func (c *Controller) Restart() error {
	game, err := c.current()
	if err != nil {
		return err
	}
	return c.restart(game)
}

func (c *Controller) end(game *model.Game) *model.BoardScore {
	score := c.scoringService.EvaluateBoard(game.Grid)

	game.FinalScore = score
	game.State = model.GameStateEnded
	game.UpdatedAt = c.clock.Now()

	c.logger.Info("game ended",
		slog.Int("total_score", score.TotalScore),
		slog.Int("builds_used", game.BuildsUsed()),
	)
	c.publish(model.EventGameEnded, model.GameEndedPayload{Score: *score})
	return score
}

func (c *Controller) restart(game *model.Game) error {
	grid := game.Grid
	if grid.Rows() != c.cfg.Rows || grid.Columns() != c.cfg.Columns {
		resized, err := c.boardService.CreateBoard(c.cfg.Rows, c.cfg.Columns)
		if err != nil {
			return err
		}
		game.Grid = resized
	} else {
		c.boardService.Reset(grid)
	}

	now := c.clock.Now()
	game.State = model.GameStateBuilding
	game.BuildLimit = c.cfg.BuildLimit
	game.BuildsLeft = c.cfg.BuildLimit
	game.FinalScore = nil
	game.StartedAt = now
	game.UpdatedAt = now

	c.logger.Info("game restarted",
		slog.Int("rows", game.Grid.Rows()),
		slog.Int("columns", game.Grid.Columns()),
		slog.Int("builds_left", game.BuildsLeft),
	)
	c.publish(model.EventGameReset, model.GameResetPayload{
		Rows:       game.Grid.Rows(),
		Columns:    game.Grid.Columns(),
		BuildsLeft: game.BuildsLeft,
	})
	return nil
}

func (c *Controller) current() (*model.Game, error) {
	if c.game == nil {
		return nil, model.ErrNoGame
	}
	return c.game, nil
}

func (c *Controller) publish(eventType model.EventType, payload any) {
	c.notify(model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		Payload:   payload,
	})
}

// Interface for dependency injection
type ControllerInterface interface {
	Start() (*model.Game, error)
	Game() *model.Game
	Rules() config.Config
	SetRules(cfg config.Config)
	Select(t model.CellType) error
	Place(pos model.Position) (*model.Placement, error)
	End() (*model.BoardScore, error)
	Restart() error
	Subscribe(l Listener) func()
}

var _ ControllerInterface = (*Controller)(nil)
