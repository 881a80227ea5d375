package scoring

import (
	"log/slog"

	"github.com/mcoot/villagegame/internal/model"
)

// Service scores boards and prepares them for display
type Service struct {
	rules   map[model.CellType]Rule
	bonuses []PairBonus
	logger  *slog.Logger
}

// New creates a new ScoringService using the standard rule table
func New(logger *slog.Logger) *Service {
	return &Service{
		rules:   Rules,
		bonuses: Bonuses,
		logger:  logger.With(slog.String("component", "scoring")),
	}
}

// ScoreCell returns the points cell earns from its surroundings
func (s *Service) ScoreCell(grid *model.Grid, cell *model.Cell) int {
	rule, ok := s.rules[cell.Type]
	if !ok {
		return 0
	}
	return rule.Apply(grid, cell)
}

// EvaluateBoard calculates the final score for a board
func (s *Service) EvaluateBoard(grid *model.Grid) *model.BoardScore {
	result := &model.BoardScore{
		Cells:   []model.CellScore{},
		Bonuses: []model.Bonus{},
	}

	grid.ForEachCell(func(cell *model.Cell) {
		if cell.Type == model.CellNone {
			return
		}
		points := s.ScoreCell(grid, cell)
		result.Cells = append(result.Cells, model.CellScore{
			Position: cell.Position(),
			Type:     cell.Type,
			Points:   points,
		})
		result.TotalScore += points
	})

	for _, bonus := range s.bonuses {
		if grid.CountOfType(bonus.Type) != bonus.Count {
			continue
		}
		result.Bonuses = append(result.Bonuses, model.Bonus{Name: bonus.Name, Points: bonus.Points})
		result.TotalScore += bonus.Points
	}

	s.logger.Debug("board evaluated",
		slog.Int("cells", grid.Len()),
		slog.Int("bonuses", len(result.Bonuses)),
		slog.Int("total", result.TotalScore),
	)

	return result
}

// Total is EvaluateBoard without the breakdown
func (s *Service) Total(grid *model.Grid) int {
	return s.EvaluateBoard(grid).TotalScore
}

// Interface for dependency injection
type ServiceInterface interface {
	ScoreCell(grid *model.Grid, cell *model.Cell) int
	EvaluateBoard(grid *model.Grid) *model.BoardScore
	Total(grid *model.Grid) int
	NormalizeRoads(grid *model.Grid) int
	Describe(t model.CellType) []string
}

var _ ServiceInterface = (*Service)(nil)
