package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/villagegame/internal/config"
	"github.com/mcoot/villagegame/internal/dependencies/clock"
	"github.com/mcoot/villagegame/internal/services/board"
	"github.com/mcoot/villagegame/internal/services/game"
	"github.com/mcoot/villagegame/internal/services/scoring"
)

// App contains all wired application components
type App struct {
	Rules  config.Config
	Logger *slog.Logger

	// External dependencies
	Clock clock.Clock

	// Services
	ScoringService *scoring.Service
	BoardService   *board.Service
	GameController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Rules sets grid size, build budget and caps (optional)
	// If zero value, defaults to config.DefaultConfig()
	Rules config.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	rules := cfg.Rules
	if rules.Rows == 0 && rules.Columns == 0 && rules.BuildLimit == 0 {
		rules = config.DefaultConfig()
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	return newWithDependencies(rules, clock.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(rules config.Config, clk clock.Clock, logger *slog.Logger) *App {
	scoringService := scoring.New(logger)
	boardService := board.New(scoringService, logger)
	gameController := game.NewController(rules, boardService, scoringService, clk, logger)

	return &App{
		Rules:          rules,
		Logger:         logger,
		Clock:          clk,
		ScoringService: scoringService,
		BoardService:   boardService,
		GameController: gameController,
	}
}
