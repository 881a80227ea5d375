package model

import (
	"fmt"
	"strings"
)

// Position identifies a cell on the grid
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Cell is one grid position holding a mutable type.
// Row and Col are assigned by NewGrid and never change afterwards.
type Cell struct {
	Row  int
	Col  int
	Type CellType
}

// Position returns the cell's coordinates
func (c *Cell) Position() Position {
	return Position{Row: c.Row, Col: c.Col}
}

// neighborOffsets lists the 8-neighbourhood in emission order:
// up, down, left, right, up-left, up-right, down-left, down-right.
// The first four are the orthogonal neighbours.
var neighborOffsets = [8]Position{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
	{Row: -1, Col: -1},
	{Row: -1, Col: 1},
	{Row: 1, Col: -1},
	{Row: 1, Col: 1},
}

// Grid is a row-major arrangement of cells. The last row may be shorter
// than the others when the cell count is not a multiple of the column count.
type Grid struct {
	cells   [][]*Cell // cells[row][col]
	columns int
	size    int
}

// NewGrid lays out cells row-major: flat index k lands on
// row k/columns, column k%columns.
func NewGrid(cells []*Cell, columns int) (*Grid, error) {
	if columns <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidColumns, columns)
	}
	if len(cells) == 0 {
		return nil, ErrEmptyGrid
	}

	rows := (len(cells) + columns - 1) / columns
	grid := &Grid{
		cells:   make([][]*Cell, 0, rows),
		columns: columns,
		size:    len(cells),
	}

	for start := 0; start < len(cells); start += columns {
		end := min(start+columns, len(cells))
		row := make([]*Cell, 0, end-start)
		for k := start; k < end; k++ {
			cell := cells[k]
			if cell == nil {
				return nil, fmt.Errorf("%w: index %d", ErrNilCell, k)
			}
			cell.Row = k / columns
			cell.Col = k % columns
			row = append(row, cell)
		}
		grid.cells = append(grid.cells, row)
	}

	return grid, nil
}

// NewEmptyGrid creates a full rows x columns grid of empty cells
func NewEmptyGrid(rows, columns int) (*Grid, error) {
	if rows <= 0 {
		return nil, ErrEmptyGrid
	}
	if columns <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidColumns, columns)
	}
	cells := make([]*Cell, rows*columns)
	for i := range cells {
		cells[i] = &Cell{}
	}
	return NewGrid(cells, columns)
}

// Rows returns the number of rows, counting a partial last row
func (g *Grid) Rows() int {
	return len(g.cells)
}

// Columns returns the configured column count
func (g *Grid) Columns() int {
	return g.columns
}

// Len returns the total number of cells
func (g *Grid) Len() int {
	return g.size
}

// Contains returns true if (row, col) holds a cell
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < len(g.cells) && col >= 0 && col < len(g.cells[row])
}

// At returns the cell at (row, col), or nil when the position is outside the grid.
// Neighbour and peer queries rely on this never failing.
func (g *Grid) At(row, col int) *Cell {
	if !g.Contains(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// AtPos is At for a Position
func (g *Grid) AtPos(pos Position) *Cell {
	return g.At(pos.Row, pos.Col)
}

// Neighbors8 returns the existing orthogonal and diagonal neighbours of cell
func (g *Grid) Neighbors8(cell *Cell) []*Cell {
	return g.neighbors(cell, neighborOffsets[:])
}

// Orthogonal returns the existing up, down, left and right neighbours of cell
func (g *Grid) Orthogonal(cell *Cell) []*Cell {
	return g.neighbors(cell, neighborOffsets[:4])
}

func (g *Grid) neighbors(cell *Cell, offsets []Position) []*Cell {
	result := make([]*Cell, 0, len(offsets))
	for _, off := range offsets {
		if n := g.At(cell.Row+off.Row, cell.Col+off.Col); n != nil {
			result = append(result, n)
		}
	}
	return result
}

// RowPeers returns every other cell in cell's row, in column order
func (g *Grid) RowPeers(cell *Cell) []*Cell {
	if cell.Row < 0 || cell.Row >= len(g.cells) {
		return nil
	}
	row := g.cells[cell.Row]
	result := make([]*Cell, 0, len(row))
	for _, c := range row {
		if c.Col != cell.Col {
			result = append(result, c)
		}
	}
	return result
}

// ColumnPeers returns every other cell in cell's column, in row order.
// A partial last row that does not reach the column contributes nothing.
func (g *Grid) ColumnPeers(cell *Cell) []*Cell {
	result := make([]*Cell, 0, len(g.cells))
	for row := range g.cells {
		if row == cell.Row {
			continue
		}
		if c := g.At(row, cell.Col); c != nil {
			result = append(result, c)
		}
	}
	return result
}

// ForEachCell visits every cell row by row, left to right
func (g *Grid) ForEachCell(fn func(cell *Cell)) {
	for _, row := range g.cells {
		for _, cell := range row {
			fn(cell)
		}
	}
}

// CountOfType returns how many cells currently hold t
func (g *Grid) CountOfType(t CellType) int {
	count := 0
	g.ForEachCell(func(cell *Cell) {
		if cell.Type == t {
			count++
		}
	})
	return count
}

// Reset clears every cell back to CellNone
func (g *Grid) Reset() {
	g.ForEachCell(func(cell *Cell) {
		cell.Type = CellNone
	})
}

// Types returns a copy of the current cell types, row by row
func (g *Grid) Types() [][]CellType {
	result := make([][]CellType, len(g.cells))
	for r, row := range g.cells {
		result[r] = make([]CellType, len(row))
		for c, cell := range row {
			result[r][c] = cell.Type
		}
	}
	return result
}

// String renders the grid in layout notation, one line per row
func (g *Grid) String() string {
	return strings.Join(FormatLayout(g), "\n")
}
