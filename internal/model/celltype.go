package model

import (
	"fmt"
	"strings"
)

// CellType is the building or terrain occupying a cell
type CellType int

const (
	CellNone CellType = iota
	CellHouse
	CellHospital
	CellFireside
	CellRoadHorizontal
	CellRoadVertical
	CellRoadCross
	CellMarket
	CellGraveyard
	CellWaterhole
	CellPark
	CellInn
)

// cellTypeInfo holds the display data for a cell type
type cellTypeInfo struct {
	name  string
	glyph rune
}

var cellTypes = [...]cellTypeInfo{
	CellNone:           {"none", '.'},
	CellHouse:          {"house", 'H'},
	CellHospital:       {"hospital", '+'},
	CellFireside:       {"fireside", 'F'},
	CellRoadHorizontal: {"road-horizontal", '-'},
	CellRoadVertical:   {"road-vertical", '|'},
	CellRoadCross:      {"road-cross", '#'},
	CellMarket:         {"market", 'M'},
	CellGraveyard:      {"graveyard", 'G'},
	CellWaterhole:      {"waterhole", 'W'},
	CellPark:           {"park", 'P'},
	CellInn:            {"inn", 'I'},
}

// aliases accepted by ParseCellType in addition to the canonical names
var cellTypeAliases = map[string]CellType{
	"empty":   CellNone,
	"road":    CellRoadHorizontal,
	"roadhor": CellRoadHorizontal,
	"roadver": CellRoadVertical,
	"cross":   CellRoadCross,
}

// AllCellTypes returns the full catalogue in declaration order
func AllCellTypes() []CellType {
	types := make([]CellType, len(cellTypes))
	for i := range cellTypes {
		types[i] = CellType(i)
	}
	return types
}

// Valid reports whether t is part of the catalogue
func (t CellType) Valid() bool {
	return t >= CellNone && int(t) < len(cellTypes)
}

// IsRoad reports whether t is one of the three road variants
func (t CellType) IsRoad() bool {
	return t == CellRoadHorizontal || t == CellRoadVertical || t == CellRoadCross
}

// String returns the canonical lowercase name
func (t CellType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("celltype(%d)", int(t))
	}
	return cellTypes[t].name
}

// Glyph returns the single-rune layout symbol for t
func (t CellType) Glyph() rune {
	if !t.Valid() {
		return '?'
	}
	return cellTypes[t].glyph
}

// MarshalText implements encoding.TextMarshaler
func (t CellType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCellType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *CellType) UnmarshalText(text []byte) error {
	parsed, err := ParseCellType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseCellType resolves a name (case-insensitive, '_' and ' ' treated as '-')
func ParseCellType(name string) (CellType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	for i, info := range cellTypes {
		if info.name == key {
			return CellType(i), nil
		}
	}
	if t, ok := cellTypeAliases[key]; ok {
		return t, nil
	}
	return CellNone, fmt.Errorf("%w: %q", ErrUnknownCellType, name)
}

// ParseGlyph resolves a layout symbol
func ParseGlyph(r rune) (CellType, error) {
	for i, info := range cellTypes {
		if info.glyph == r {
			return CellType(i), nil
		}
	}
	return CellNone, fmt.Errorf("%w: glyph %q", ErrUnknownCellType, r)
}
