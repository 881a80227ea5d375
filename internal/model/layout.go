package model

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseLayout builds a grid from glyph rows such as "H.F" or "-#-".
// Whitespace inside a row is ignored. Every row except the last must have
// the width of the first; the last row may be shorter.
func ParseLayout(rows []string) (*Grid, error) {
	var cells []*Cell
	columns := 0

	for r, raw := range rows {
		glyphs := []rune(strings.Map(func(ch rune) rune {
			if unicode.IsSpace(ch) {
				return -1
			}
			return ch
		}, raw))

		if r == 0 {
			columns = len(glyphs)
			if columns == 0 {
				return nil, ErrEmptyGrid
			}
		}

		last := r == len(rows)-1
		switch {
		case !last && len(glyphs) != columns:
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedLayout, r, len(glyphs), columns)
		case last && (len(glyphs) == 0 || len(glyphs) > columns):
			return nil, fmt.Errorf("%w: last row has %d cells, want 1..%d", ErrRaggedLayout, len(glyphs), columns)
		}

		for c, glyph := range glyphs {
			t, err := ParseGlyph(glyph)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			cells = append(cells, &Cell{Type: t})
		}
	}

	if len(cells) == 0 {
		return nil, ErrEmptyGrid
	}
	return NewGrid(cells, columns)
}

// FormatLayout renders each grid row as a glyph string
func FormatLayout(g *Grid) []string {
	lines := make([]string, 0, g.Rows())
	for _, row := range g.Types() {
		var sb strings.Builder
		for _, t := range row {
			sb.WriteRune(t.Glyph())
		}
		lines = append(lines, sb.String())
	}
	return lines
}
