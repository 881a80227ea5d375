package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/villagegame/internal/model"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List buildings with their glyphs and scoring rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var types []CellTypeInfo
			for _, t := range model.AllCellTypes() {
				if t == model.CellNone {
					continue
				}
				types = append(types, CellTypeInfo{
					Name:  t.String(),
					Glyph: string(t.Glyph()),
					Rules: app.ScoringService.Describe(t),
				})
			}

			newOutput(cmd).Print(types)
			return nil
		},
	}
}
