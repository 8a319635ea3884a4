package standings

import (
	"math"
	"slices"
	"sort"
)

// ChangeInput is a current standings row joined to its displayed place.
type ChangeInput struct {
	ID       string
	GroupID  string
	Points   float64
	Position string
}

// Change is the movement of one row against the last completed tournament.
type Change struct {
	ID                     string
	PastPoints             float64
	PastPosition           int
	PastPositionOverall    int
	CurrentPositionOverall int
	// Change is measured within the row's group, ChangeOverall across all rows.
	Change        int
	ChangeOverall int
}

// CalculateChanges derives past places by removing the points each row
// earned in the last completed tournament. Rows missing from lastPeriod
// earned nothing. A row without a parseable current place reports no change.
func CalculateChanges(current []ChangeInput, lastPeriod map[string]float64) []Change {
	past := make([]float64, len(current))
	pastAll := make([]float64, 0, len(current))
	currentAll := make([]float64, 0, len(current))
	pastByGroup := make(map[string][]float64)

	for i, row := range current {
		points := finite(row.Points)
		past[i] = points - finite(lastPeriod[row.ID])
		pastAll = append(pastAll, past[i])
		currentAll = append(currentAll, points)
		pastByGroup[row.GroupID] = append(pastByGroup[row.GroupID], past[i])
	}

	sortDescending(pastAll)
	sortDescending(currentAll)
	for _, values := range pastByGroup {
		sortDescending(values)
	}

	out := make([]Change, len(current))
	for i, row := range current {
		pastPosition := 1 + countGreater(pastByGroup[row.GroupID], past[i])
		pastOverall := 1 + countGreater(pastAll, past[i])
		currentOverall := 1 + countGreater(currentAll, finite(row.Points))

		change := 0
		if parsed := ParsePosition(row.Position); parsed != Unranked {
			change = pastPosition - parsed
		}

		out[i] = Change{
			ID:                     row.ID,
			PastPoints:             past[i],
			PastPosition:           pastPosition,
			PastPositionOverall:    pastOverall,
			CurrentPositionOverall: currentOverall,
			Change:                 change,
			ChangeOverall:          pastOverall - currentOverall,
		}
	}
	return out
}

// PlaceChange compares two displayed places. Either side being unranked
// reports no change.
func PlaceChange(previous, current string) int {
	before, now := ParsePosition(previous), ParsePosition(current)
	if before == Unranked || now == Unranked {
		return 0
	}
	return before - now
}

func sortDescending(values []float64) {
	slices.SortFunc(values, func(a, b float64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})
}

// countGreater counts values strictly greater than v in a descending slice.
func countGreater(desc []float64, v float64) int {
	return sort.Search(len(desc), func(i int) bool {
		return desc[i] <= v
	})
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
