package board

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/villagegame/internal/model"
	"github.com/mcoot/villagegame/internal/services/scoring"
)

// Service provides board operations
type Service struct {
	scoring scoring.ServiceInterface
	logger  *slog.Logger
}

// New creates a new BoardService
func New(scoring scoring.ServiceInterface, logger *slog.Logger) *Service {
	return &Service{
		scoring: scoring,
		logger:  logger.With(slog.String("component", "board")),
	}
}

// CreateBoard builds an empty rows x columns grid
func (s *Service) CreateBoard(rows, columns int) (*model.Grid, error) {
	return model.NewEmptyGrid(rows, columns)
}

// PlaceType assigns t to the cell at pos. Any catalogue type is accepted;
// placement caps are the caller's policy. The returned Placement carries the
// change in board total caused by this assignment.
func (s *Service) PlaceType(grid *model.Grid, pos model.Position, t model.CellType) (*model.Placement, error) {
	if err := ValidateType(t); err != nil {
		return nil, err
	}
	cell := grid.AtPos(pos)
	if cell == nil {
		return nil, fmt.Errorf("%w: (%d, %d)", model.ErrInvalidPosition, pos.Row, pos.Col)
	}

	before := s.scoring.Total(grid)
	previous := cell.Type
	cell.Type = t
	after := s.scoring.Total(grid)

	s.logger.Debug("cell placed",
		slog.Int("row", pos.Row),
		slog.Int("col", pos.Col),
		slog.String("type", t.String()),
		slog.String("previous", previous.String()),
		slog.Int("delta", after-before),
	)

	return &model.Placement{
		Cell:     cell,
		Previous: previous,
		Delta:    after - before,
	}, nil
}

// ValidateType checks that t is part of the catalogue
func ValidateType(t model.CellType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %d", model.ErrUnknownCellType, int(t))
	}
	return nil
}

// NormalizeRoads merges connected road segments before display
func (s *Service) NormalizeRoads(grid *model.Grid) int {
	return s.scoring.NormalizeRoads(grid)
}

// EvaluateBoard scores the whole board
func (s *Service) EvaluateBoard(grid *model.Grid) *model.BoardScore {
	return s.scoring.EvaluateBoard(grid)
}

// Reset clears every cell
func (s *Service) Reset(grid *model.Grid) {
	grid.Reset()
	s.logger.Debug("board reset", slog.Int("cells", grid.Len()))
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateBoard(rows, columns int) (*model.Grid, error)
	PlaceType(grid *model.Grid, pos model.Position, t model.CellType) (*model.Placement, error)
	NormalizeRoads(grid *model.Grid) int
	EvaluateBoard(grid *model.Grid) *model.BoardScore
	Reset(grid *model.Grid)
}

var _ ServiceInterface = (*Service)(nil)
