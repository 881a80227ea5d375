package scoring

import (
	"fmt"
	"strings"

	"github.com/mcoot/villagegame/internal/model"
)

// Describe renders the rule for t as one line per term, e.g.
// "+2 per adjacent fireside" or "+2 once if any row peer is inn".
func (s *Service) Describe(t model.CellType) []string {
	if t.IsRoad() {
		return []string{"no points of its own; neighbours treat every road variant alike"}
	}

	rule := s.rules[t]

	var lines []string
	for _, term := range rule.Neighbors {
		lines = append(lines, fmt.Sprintf("%+d per adjacent %s", term.Points, typeList(term.Of)))
	}
	for _, term := range rule.Peers {
		if term.Once {
			lines = append(lines, fmt.Sprintf("%+d once if any %s peer is %s", term.Points, term.Axis, typeList(term.Of)))
		} else {
			lines = append(lines, fmt.Sprintf("%+d per %s peer that is %s", term.Points, term.Axis, typeList(term.Of)))
		}
	}
	for _, bonus := range s.bonuses {
		if bonus.Type == t {
			lines = append(lines, fmt.Sprintf("%+d for the board when exactly %d are built", bonus.Points, bonus.Count))
		}
	}
	if len(lines) == 0 {
		return []string{"scores nothing on its own"}
	}
	return lines
}

func typeList(types []model.CellType) string {
	if len(types) == len(roads) && types[0] == roads[0] {
		return "road"
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, "/")
}
