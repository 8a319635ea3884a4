package standings

import "math"

// LookupValue reads a rank-indexed payout or points table. A tied rank gets
// the mean of the slots the tie spans, rounded to one decimal; slots past the
// end of the table count as zero. Ranks outside the table report false.
func LookupValue(rank, ties int, table []float64) (float64, bool) {
	if rank < 1 || rank-1 >= len(table) {
		return 0, false
	}
	if ties <= 1 {
		return table[rank-1], true
	}

	end := min(rank-1+ties, len(table))
	var sum float64
	for _, v := range table[rank-1 : end] {
		sum += v
	}
	return Round1(sum / float64(ties)), true
}

// LookupRank is LookupValue for a computed Rank.
func LookupRank(rank Rank, table []float64) (float64, bool) {
	return LookupValue(rank.Position, rank.Ties, table)
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// StrokeTables hold the playoff starting strokes by rank within a bracket.
type StrokeTables struct {
	Gold   []float64
	Silver []float64
}

var DefaultStrokeTables = StrokeTables{
	Gold:   []float64{-10, -8, -7, -6, -5, -4, -4, -3, -3, -2, -2, -1, -1, 0, 0},
	Silver: []float64{-10, -8, -7, -6, -5, -4, -4, -3, -3, -2, -2, -1, -1, -1, 0, 0, 0, 0, 0, 0},
}

// StartingStrokes looks up the strokes a playoff bracket position starts on.
func (t StrokeTables) StartingStrokes(level int, rank Rank) (float64, bool) {
	switch level {
	case PlayoffGold:
		return LookupRank(rank, t.Gold)
	case PlayoffSilver:
		return LookupRank(rank, t.Silver)
	default:
		return 0, false
	}
}
