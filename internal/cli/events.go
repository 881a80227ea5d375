package cli

import (
	"fmt"

	"github.com/mcoot/villagegame/internal/model"
)

// newEventView turns a session event into display form. describe supplies the
// rule lines shown when a building is chosen.
func newEventView(e model.Event, describe func(model.CellType) []string) EventView {
	view := EventView{
		Time:  e.Timestamp,
		Event: string(e.Type),
	}

	switch p := e.Payload.(type) {
	case model.GameStartedPayload:
		view.Message = fmt.Sprintf("New game on a %dx%d board, %d builds", p.Rows, p.Columns, p.BuildsLeft)
		view.Data = map[string]int{"rows": p.Rows, "columns": p.Columns, "builds_left": p.BuildsLeft}
	case model.BuildingChosenPayload:
		view.Message = fmt.Sprintf("Selected %s", p.Type)
		view.Details = describe(p.Type)
		view.Data = map[string]model.CellType{"type": p.Type}
	case model.CellPlacedPayload:
		view.Message = fmt.Sprintf("Built %s at (%d,%d), %+d points, %d builds left",
			p.Type, p.Position.Row, p.Position.Col, p.Delta, p.BuildsLeft)
		view.Data = map[string]any{
			"row":         p.Position.Row,
			"col":         p.Position.Col,
			"type":        p.Type,
			"previous":    p.Previous,
			"delta":       p.Delta,
			"builds_left": p.BuildsLeft,
		}
	case model.RoadsMergedPayload:
		view.Message = fmt.Sprintf("Merged %d road segments", p.Rewritten)
		view.Data = map[string]int{"rewritten": p.Rewritten}
	case model.GameEndedPayload:
		view.Message = fmt.Sprintf("Game over, final score %d", p.Score.TotalScore)
		for _, b := range p.Score.Bonuses {
			view.Details = append(view.Details, fmt.Sprintf("%s %+d", b.Name, b.Points))
		}
		view.Data = map[string]int{"total_score": p.Score.TotalScore}
	case model.GameResetPayload:
		view.Message = fmt.Sprintf("Board cleared, new game on a %dx%d board, %d builds", p.Rows, p.Columns, p.BuildsLeft)
		view.Data = map[string]int{"rows": p.Rows, "columns": p.Columns, "builds_left": p.BuildsLeft}
	default:
		view.Message = string(e.Type)
	}

	return view
}
