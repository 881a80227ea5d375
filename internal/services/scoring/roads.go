package scoring

import (
	"log/slog"

	"github.com/mcoot/villagegame/internal/model"
)

// NormalizeRoads joins connected road segments: a road cell with at least one
// orthogonal road neighbour becomes a RoadCross. Cells are rewritten in place
// during a single row-major pass. Promotion keeps a cell a road, so cells later
// in the pass see the same road/non-road layout as a snapshot would.
// Returns the number of cells whose type changed.
func (s *Service) NormalizeRoads(grid *model.Grid) int {
	rewritten := 0

	grid.ForEachCell(func(cell *model.Cell) {
		if !cell.Type.IsRoad() {
			return
		}

		connected := 1
		for _, n := range grid.Orthogonal(cell) {
			if n.Type.IsRoad() {
				connected++
			}
		}

		if connected >= 2 && cell.Type != model.CellRoadCross {
			cell.Type = model.CellRoadCross
			rewritten++
		}
	})

	if rewritten > 0 {
		s.logger.Debug("roads normalized", slog.Int("rewritten", rewritten))
	}

	return rewritten
}
