package model

// CellScore is the points a single cell contributed to the board total
type CellScore struct {
	Position Position
	Type     CellType
	Points   int
}

// Bonus is a flat award applied to the whole board
type Bonus struct {
	Name   string
	Points int
}

// BoardScore is the complete scoring result for a board
type BoardScore struct {
	Cells      []CellScore // Row-major, occupied cells only
	Bonuses    []Bonus
	TotalScore int
}

// Placement describes the outcome of assigning a type to one cell
type Placement struct {
	Cell     *Cell
	Previous CellType
	Delta    int // Change in board total caused by the placement
}
