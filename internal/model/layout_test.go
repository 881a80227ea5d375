package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	grid, err := ParseLayout([]string{
		"H.F",
		"-#|",
		"MG",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, grid.Rows())
	assert.Equal(t, 3, grid.Columns())
	assert.Equal(t, 8, grid.Len())
	assert.Equal(t, CellHouse, grid.At(0, 0).Type)
	assert.Equal(t, CellFireside, grid.At(0, 2).Type)
	assert.Equal(t, CellRoadCross, grid.At(1, 1).Type)
	assert.Equal(t, CellGraveyard, grid.At(2, 1).Type)
	assert.Nil(t, grid.At(2, 2))
}

func TestParseLayoutIgnoresWhitespace(t *testing.T) {
	grid, err := ParseLayout([]string{"H . F", " P W I "})
	require.NoError(t, err)

	assert.Equal(t, []string{"H.F", "PWI"}, FormatLayout(grid))
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{name: "no rows", rows: nil, want: ErrEmptyGrid},
		{name: "blank first row", rows: []string{"   "}, want: ErrEmptyGrid},
		{name: "short middle row", rows: []string{"HHH", "HH", "H"}, want: ErrRaggedLayout},
		{name: "long last row", rows: []string{"HH", "HHH"}, want: ErrRaggedLayout},
		{name: "empty last row", rows: []string{"HH", ""}, want: ErrRaggedLayout},
		{name: "unknown glyph", rows: []string{"HXH"}, want: ErrUnknownCellType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayout(tt.rows)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFormatLayoutRoundTrip(t *testing.T) {
	rows := []string{"H+F-", "|#MG", "WPI."}
	grid, err := ParseLayout(rows)
	require.NoError(t, err)

	assert.Equal(t, rows, FormatLayout(grid))
	assert.Equal(t, "H+F-\n|#MG\nWPI.", grid.String())
}
