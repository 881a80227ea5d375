package scoring

import (
	"slices"

	"github.com/mcoot/villagegame/internal/model"
)

// Axis selects which line of peers a PeerTerm scans
type Axis int

const (
	AxisRow Axis = iota
	AxisColumn
)

func (a Axis) String() string {
	if a == AxisRow {
		return "row"
	}
	return "column"
}

// NeighborTerm awards Points for an 8-neighbour whose type is in Of
type NeighborTerm struct {
	Of     []model.CellType
	Points int
}

// PeerTerm awards Points for row or column peers whose type is in Of.
// With Once set the scan stops at the first match; otherwise every match counts.
type PeerTerm struct {
	Axis   Axis
	Of     []model.CellType
	Points int
	Once   bool
}

// Rule is the scoring recipe for one cell type.
// Neighbors is an exclusive chain: each neighbour scores for the first term it matches.
// Peers are independent passes added on top.
type Rule struct {
	Neighbors []NeighborTerm
	Peers     []PeerTerm
}

// roads lists the variants, which score interchangeably
var roads = []model.CellType{model.CellRoadHorizontal, model.CellRoadVertical, model.CellRoadCross}

func of(types ...model.CellType) []model.CellType {
	return types
}

// Rules maps each scoring cell type to its rule. Types missing here score 0.
var Rules = map[model.CellType]Rule{
	model.CellHouse: {
		Neighbors: []NeighborTerm{
			{Of: of(model.CellHouse), Points: 1},
			{Of: of(model.CellFireside), Points: 2},
			{Of: roads, Points: 1},
			{Of: of(model.CellInn), Points: -2},
			{Of: of(model.CellMarket), Points: -2},
			{Of: of(model.CellWaterhole), Points: 1},
			{Of: of(model.CellGraveyard), Points: -5},
			{Of: of(model.CellPark), Points: 1},
		},
		Peers: []PeerTerm{
			{Axis: AxisRow, Of: of(model.CellInn), Points: 2, Once: true},
			{Axis: AxisColumn, Of: of(model.CellInn), Points: 2, Once: true},
			{Axis: AxisRow, Of: of(model.CellMarket), Points: 2, Once: true},
			{Axis: AxisColumn, Of: of(model.CellMarket), Points: 2, Once: true},
			{Axis: AxisRow, Of: of(model.CellHospital), Points: 1, Once: true},
			{Axis: AxisColumn, Of: of(model.CellHospital), Points: 1, Once: true},
		},
	},
	model.CellFireside: {
		Neighbors: []NeighborTerm{
			{Of: of(model.CellGraveyard), Points: -5},
		},
	},
	model.CellGraveyard: {
		Neighbors: []NeighborTerm{
			{Of: roads, Points: 1},
			{Of: of(model.CellPark), Points: 2},
			{Of: of(model.CellHospital), Points: -5},
		},
		Peers: []PeerTerm{
			{Axis: AxisRow, Of: of(model.CellHospital), Points: -5, Once: true},
			{Axis: AxisColumn, Of: of(model.CellHospital), Points: -5, Once: true},
		},
	},
	model.CellHospital: {},
	model.CellInn: {
		Neighbors: []NeighborTerm{
			{Of: of(model.CellHouse), Points: -1},
			{Of: roads, Points: 1},
			{Of: of(model.CellInn), Points: -1},
			{Of: of(model.CellMarket), Points: 1},
			{Of: of(model.CellGraveyard), Points: -5},
			{Of: of(model.CellHospital), Points: -2},
		},
	},
	model.CellMarket: {
		Neighbors: []NeighborTerm{
			{Of: roads, Points: 1},
			{Of: of(model.CellInn), Points: -1},
			{Of: of(model.CellGraveyard), Points: -5},
			{Of: of(model.CellHospital), Points: -2},
		},
		Peers: []PeerTerm{
			{Axis: AxisRow, Of: of(model.CellHouse), Points: 1},
			{Axis: AxisColumn, Of: of(model.CellHouse), Points: 1},
		},
	},
	model.CellPark: {
		Neighbors: []NeighborTerm{
			{Of: roads, Points: 1},
			{Of: of(model.CellPark), Points: 1},
			{Of: of(model.CellHospital), Points: 2},
			{Of: of(model.CellWaterhole), Points: 1},
		},
	},
	model.CellWaterhole: {
		Neighbors: []NeighborTerm{
			{Of: roads, Points: 1},
		},
	},
}

// PairBonus awards Points when the board holds exactly Count cells of Type
type PairBonus struct {
	Name   string
	Type   model.CellType
	Count  int
	Points int
}

// Bonuses are the board-wide awards checked after per-cell scoring
var Bonuses = []PairBonus{
	{Name: "graveyard pair", Type: model.CellGraveyard, Count: 2, Points: 20},
	{Name: "hospital pair", Type: model.CellHospital, Count: 2, Points: 20},
}

// Apply evaluates the rule for cell on grid
func (r Rule) Apply(grid *model.Grid, cell *model.Cell) int {
	points := 0

	for _, n := range grid.Neighbors8(cell) {
		for _, term := range r.Neighbors {
			if slices.Contains(term.Of, n.Type) {
				points += term.Points
				break
			}
		}
	}

	for _, term := range r.Peers {
		points += term.apply(grid, cell)
	}

	return points
}

func (p PeerTerm) apply(grid *model.Grid, cell *model.Cell) int {
	var peers []*model.Cell
	if p.Axis == AxisRow {
		peers = grid.RowPeers(cell)
	} else {
		peers = grid.ColumnPeers(cell)
	}

	points := 0
	for _, peer := range peers {
		if !slices.Contains(p.Of, peer.Type) {
			continue
		}
		points += p.Points
		if p.Once {
			break
		}
	}
	return points
}
