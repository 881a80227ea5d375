package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mcoot/villagegame/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == FormatJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == FormatJSON {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.errOut, string(data))
	} else {
		_, _ = fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == FormatJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.out, string(data))
	} else {
		_, _ = fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case []CellTypeInfo:
		o.printTypes(v)
	case ScoreResult:
		o.printScore(v)
	case NormalizeResult:
		o.printNormalize(v)
	case GameStatus:
		o.printStatus(v)
	case EventView:
		o.printEvent(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// CellTypeInfo describes one buildable type
type CellTypeInfo struct {
	Name  string   `json:"name"`
	Glyph string   `json:"glyph"`
	Rules []string `json:"rules"`
}

// CellScore is the score of one occupied cell
type CellScore struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Type   string `json:"type"`
	Points int    `json:"points"`
}

// Bonus is a whole-board award
type Bonus struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// ScoreResult is a board with its score breakdown
type ScoreResult struct {
	Board      []string    `json:"board"`
	Cells      []CellScore `json:"cells"`
	Bonuses    []Bonus     `json:"bonuses"`
	TotalScore int         `json:"total_score"`
}

// NormalizeResult is a board after road merging
type NormalizeResult struct {
	Board     []string `json:"board"`
	Rewritten int      `json:"rewritten"`
}

// GameStatus is the state of a running session
type GameStatus struct {
	State      string   `json:"state"`
	Selected   string   `json:"selected"`
	BuildsLeft int      `json:"builds_left"`
	Board      []string `json:"board"`
	FinalScore *int     `json:"final_score,omitempty"`
}

// EventView is a session event prepared for display
type EventView struct {
	Time    time.Time `json:"time"`
	Event   string    `json:"event"`
	Message string    `json:"message"`
	Details []string  `json:"details,omitempty"`
	Data    any       `json:"data,omitempty"`
}

func newScoreResult(grid *model.Grid, score *model.BoardScore) ScoreResult {
	result := ScoreResult{
		Board:      model.FormatLayout(grid),
		Cells:      make([]CellScore, len(score.Cells)),
		Bonuses:    make([]Bonus, len(score.Bonuses)),
		TotalScore: score.TotalScore,
	}
	for i, c := range score.Cells {
		result.Cells[i] = CellScore{Row: c.Position.Row, Col: c.Position.Col, Type: c.Type.String(), Points: c.Points}
	}
	for i, b := range score.Bonuses {
		result.Bonuses[i] = Bonus{Name: b.Name, Points: b.Points}
	}
	return result
}

func newGameStatus(game *model.Game) GameStatus {
	status := GameStatus{
		State:      string(game.State),
		Selected:   game.Selected.String(),
		BuildsLeft: game.BuildsLeft,
		Board:      model.FormatLayout(game.Grid),
	}
	if game.FinalScore != nil {
		total := game.FinalScore.TotalScore
		status.FinalScore = &total
	}
	return status
}

func (o *Output) printTypes(types []CellTypeInfo) {
	for _, t := range types {
		_, _ = fmt.Fprintf(o.out, "%s  %s\n", t.Glyph, t.Name)
		for _, rule := range t.Rules {
			_, _ = fmt.Fprintf(o.out, "     %s\n", rule)
		}
	}
}

func (o *Output) printScore(s ScoreResult) {
	o.printBoard(s.Board)

	if len(s.Cells) > 0 {
		_, _ = fmt.Fprintln(o.out, "\nCells:")
		for _, c := range s.Cells {
			_, _ = fmt.Fprintf(o.out, "  (%d,%d) %s: %+d\n", c.Row, c.Col, c.Type, c.Points)
		}
	}
	if len(s.Bonuses) > 0 {
		_, _ = fmt.Fprintln(o.out, "\nBonuses:")
		for _, b := range s.Bonuses {
			_, _ = fmt.Fprintf(o.out, "  %s: %+d\n", b.Name, b.Points)
		}
	}
	_, _ = fmt.Fprintf(o.out, "\nTotal: %d\n", s.TotalScore)
}

func (o *Output) printNormalize(n NormalizeResult) {
	o.printBoard(n.Board)
	_, _ = fmt.Fprintf(o.out, "Rewritten: %d\n", n.Rewritten)
}

func (o *Output) printStatus(g GameStatus) {
	o.printBoard(g.Board)
	_, _ = fmt.Fprintf(o.out, "State: %s\n", g.State)
	_, _ = fmt.Fprintf(o.out, "Selected: %s\n", g.Selected)
	_, _ = fmt.Fprintf(o.out, "Builds left: %d\n", g.BuildsLeft)
	if g.FinalScore != nil {
		_, _ = fmt.Fprintf(o.out, "Final score: %d\n", *g.FinalScore)
	}
}

func (o *Output) printEvent(e EventView) {
	_, _ = fmt.Fprintln(o.out, e.Message)
	for _, d := range e.Details {
		_, _ = fmt.Fprintf(o.out, "  %s\n", d)
	}
}

// printBoard draws layout rows with coordinates; a short last row is left open
func (o *Output) printBoard(rows []string) {
	if len(rows) == 0 {
		return
	}

	width := len([]rune(rows[0]))
	border := "   +" + strings.Repeat("---", width) + "+"

	// Print column headers
	var header strings.Builder
	header.WriteString("    ")
	for col := range width {
		fmt.Fprintf(&header, " %d ", col%10)
	}
	_, _ = fmt.Fprintln(o.out, header.String())
	_, _ = fmt.Fprintln(o.out, border)

	for row, line := range rows {
		var b strings.Builder
		fmt.Fprintf(&b, "%2d |", row)
		glyphs := []rune(line)
		for col := range width {
			if col < len(glyphs) {
				fmt.Fprintf(&b, " %c ", glyphs[col])
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString("|")
		_, _ = fmt.Fprintln(o.out, b.String())
	}

	_, _ = fmt.Fprintln(o.out, border)
}
