package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/villagegame/internal/model"
)

const layoutHelp = `Each argument is one board row, one glyph per cell ("." for empty).
All rows must be the same width except the last, which may be shorter.
Put "--" before the rows when one starts with a road glyph ("-").`

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "score <row>...",
		Short:   "Score a board layout",
		Long:    "Score a board layout and print the per-cell breakdown.\n\n" + layoutHelp,
		Example: `  village score "HF." ".G." "+.+"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := model.ParseLayout(args)
			if err != nil {
				return err
			}

			score := app.BoardService.EvaluateBoard(grid)
			newOutput(cmd).Print(newScoreResult(grid, score))
			return nil
		},
	}
}

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "normalize <row>...",
		Short:   "Merge connected road segments in a board layout",
		Long:    "Rewrite every road touching another road into a crossing.\n\n" + layoutHelp,
		Example: `  village normalize -- "--." ".|." "..."`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := model.ParseLayout(args)
			if err != nil {
				return err
			}

			rewritten := app.BoardService.NormalizeRoads(grid)
			newOutput(cmd).Print(NormalizeResult{
				Board:     model.FormatLayout(grid),
				Rewritten: rewritten,
			})
			return nil
		},
	}
}
