package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/villagegame/internal/factory"
	"github.com/mcoot/villagegame/internal/model"
	"github.com/mcoot/villagegame/internal/services/game"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("VILLAGE_CONFIG", "")
	t.Setenv("VILLAGE_OUTPUT", "")
	t.Setenv("VILLAGE_LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := run(cmd)
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "village.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// decodeAll reads a stream of JSON documents
func decodeAll(t *testing.T, data string) []map[string]any {
	t.Helper()
	var docs []map[string]any
	dec := json.NewDecoder(strings.NewReader(data))
	for {
		var doc map[string]any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs
		}
		require.NoError(t, err)
		docs = append(docs, doc)
	}
}

// types

func TestTypesText(t *testing.T) {
	out, _, err := runCLI(t, "", "types")
	require.NoError(t, err)

	assert.Contains(t, out, "H  house")
	assert.Contains(t, out, "+2 per adjacent fireside")
	assert.Contains(t, out, "+20 for the board when exactly 2 are built")
	assert.NotContains(t, out, "none")
}

func TestTypesJSON(t *testing.T) {
	out, _, err := runCLI(t, "", "types", "--output", "json")
	require.NoError(t, err)

	var types []CellTypeInfo
	require.NoError(t, json.Unmarshal([]byte(out), &types))
	require.Len(t, types, len(model.AllCellTypes())-1)
	assert.Equal(t, "house", types[0].Name)
	assert.Equal(t, "H", types[0].Glyph)
	assert.NotEmpty(t, types[0].Rules)
}

// score

func TestScoreText(t *testing.T) {
	out, _, err := runCLI(t, "", "score", "HF")
	require.NoError(t, err)

	assert.Contains(t, out, "(0,0) house: +2")
	assert.Contains(t, out, "(0,1) fireside: +0")
	assert.Contains(t, out, "Total: 2")
}

func TestScoreJSON(t *testing.T) {
	out, _, err := runCLI(t, "", "-o", "json", "score", "--", "G.G", "--.")
	require.NoError(t, err)

	var result ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []string{"G.G", "--."}, result.Board)
	assert.Equal(t, []Bonus{{Name: "graveyard pair", Points: 20}}, result.Bonuses)
	assert.Equal(t, 23, result.TotalScore)
}

func TestScoreRejectsBadLayout(t *testing.T) {
	_, _, err := runCLI(t, "", "score", "HX")
	assert.ErrorIs(t, err, model.ErrUnknownCellType)

	_, _, err = runCLI(t, "", "score", "H", "HH")
	assert.ErrorIs(t, err, model.ErrRaggedLayout)
}

// normalize

func TestNormalize(t *testing.T) {
	out, _, err := runCLI(t, "", "-o", "json", "normalize", "--", "---", ".|.")
	require.NoError(t, err)

	var result NormalizeResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []string{"###", ".#."}, result.Board)
	assert.Equal(t, 4, result.Rewritten)
}

func TestNormalizeText(t *testing.T) {
	out, _, err := runCLI(t, "", "normalize", "--", "-.", ".|")
	require.NoError(t, err)

	// Diagonal roads are not connected
	assert.Contains(t, out, " 0 | -  . |")
	assert.Contains(t, out, "Rewritten: 0")
}

// play

func TestPlaySession(t *testing.T) {
	path := writeConfig(t, "rows: 2\ncolumns: 2\nbuild_limit: 10\n")
	input := strings.Join([]string{
		"select fireside",
		"place 0 1",
		"select house",
		"place 0 0",
		"board",
		"end",
		"quit",
	}, "\n")

	out, stderr, err := runCLI(t, input, "--config", path, "play")
	require.NoError(t, err)

	assert.Contains(t, out, "New game on a 2x2 board, 10 builds")
	assert.Contains(t, out, "Selected fireside")
	assert.Contains(t, out, "-5 per adjacent graveyard")
	assert.Contains(t, out, "Built house at (0,0), +2 points, 8 builds left")
	assert.Contains(t, out, "Builds left: 8")
	assert.Contains(t, out, "Game over, final score 2")
	assert.NotContains(t, stderr, "Error:")
}

func TestPlayEndsWhenBuildsRunOut(t *testing.T) {
	path := writeConfig(t, "rows: 2\ncolumns: 2\nbuild_limit: 1\n")

	out, _, err := runCLI(t, "place 1 1\nplace 0 0\n", "--config", path, "play")
	require.NoError(t, err)

	assert.Contains(t, out, "Game over, final score 0")
}

func TestPlayEndTwiceRestarts(t *testing.T) {
	out, _, err := runCLI(t, "place 0 0\nend\nend\nboard\n", "play")
	require.NoError(t, err)

	assert.Contains(t, out, "Board cleared, new game")
	assert.Contains(t, out, "Builds left: 20")
}

func TestPlayReportsErrorsAndContinues(t *testing.T) {
	input := "place 9 9\nfly away\nselect castle\nplace x 1\nplace 0 0\nquit\n"

	out, stderr, err := runCLI(t, input, "play")
	require.NoError(t, err)

	assert.Contains(t, stderr, "invalid board position")
	assert.Contains(t, stderr, `unknown command "fly"`)
	assert.Contains(t, stderr, "unknown cell type")
	assert.Contains(t, stderr, `row "x" is not a number`)
	assert.Contains(t, out, "Built house at (0,0)")
}

func TestPlayEnforcesCaps(t *testing.T) {
	path := writeConfig(t, "limits:\n  house: 0\n")

	_, stderr, err := runCLI(t, "place 0 0\nplace 0 1\nquit\n", "--config", path, "play")
	require.NoError(t, err)

	assert.Contains(t, stderr, "placement limit reached")
}

func TestPlayJSONEvents(t *testing.T) {
	out, _, err := runCLI(t, "select road\nplace 0 0\nplace 0 1\nquit\n", "-o", "json", "play")
	require.NoError(t, err)

	var events []string
	var placed []any
	for _, doc := range decodeAll(t, out) {
		if name, ok := doc["event"].(string); ok {
			events = append(events, name)
			if name == "cell_placed" {
				placed = append(placed, doc["data"].(map[string]any)["type"])
			}
		}
	}
	// Cell types are written by name
	assert.Equal(t, []any{"road-horizontal", "road-horizontal"}, placed)
	assert.Equal(t, []string{
		"game_started",
		"building_chosen",
		"cell_placed",
		"cell_placed",
		"roads_merged",
	}, events)
}

// flags and config

func TestRejectsUnknownOutputFormat(t *testing.T) {
	_, _, err := runCLI(t, "", "-o", "xml", "types")
	assert.Error(t, err)
}

func TestRejectsInvalidConfig(t *testing.T) {
	path := writeConfig(t, "rows: 0\n")

	_, _, err := runCLI(t, "", "--config", path, "types")
	assert.ErrorIs(t, err, model.ErrInvalidConfig)
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, stderr, err := runCLI(t, "place 0 0\nquit\n", "--verbose", "play")
	require.NoError(t, err)

	assert.Contains(t, stderr, `"msg":"cell placed"`)
}

type closeRecorder struct{ closed int }

func (c *closeRecorder) Close() error {
	c.closed++
	return nil
}

func TestRunClosesLogSinkWhenCommandFails(t *testing.T) {
	sink := &closeRecorder{}
	cmd := &cobra.Command{
		Use: "fail",
		PreRun: func(cmd *cobra.Command, args []string) {
			logCloser = sink
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return model.ErrRaggedLayout
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetArgs(nil)

	err := run(cmd)

	assert.ErrorIs(t, err, model.ErrRaggedLayout)
	assert.Equal(t, 1, sink.closed)
	assert.Nil(t, logCloser)
}

func TestFailedCommandReleasesLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "village.log")
	path := writeConfig(t, "log:\n  level: debug\n  file: "+logPath+"\n")

	_, _, err := runCLI(t, "", "--config", path, "score", "HX")

	assert.ErrorIs(t, err, model.ErrUnknownCellType)
	assert.Nil(t, logCloser)
}

func TestSessionRecoversFromPanics(t *testing.T) {
	app := factory.NewTestApp(factory.SmallRules())
	var stdout, stderr bytes.Buffer
	s := newSession(app.App, NewOutput(FormatText, &stdout, &stderr))

	app.GameController.Subscribe(game.ListenerFunc(func(e model.Event) {
		if e.Type == model.EventCellPlaced {
			panic("listener failed")
		}
	}))

	require.NoError(t, s.run(strings.NewReader("place 0 0\nplace 0 1\nquit\n")))

	assert.Contains(t, stderr.String(), `internal error running "place 0 0"`)
	assert.Contains(t, stderr.String(), `internal error running "place 0 1"`)
	// The cell is built before listeners run
	assert.Equal(t, model.CellHouse, app.GameController.Game().Grid.At(0, 1).Type)
}
