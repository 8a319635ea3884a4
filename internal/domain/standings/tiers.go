package standings

type Band string

const (
	BandGold      Band = "gold"
	BandSilver    Band = "silver"
	BandRemainder Band = "remainder"
)

// Cutoffs are the last positions of the gold and silver bands, inclusive.
type Cutoffs struct {
	Gold   int
	Silver int
}

var DefaultCutoffs = Cutoffs{Gold: 15, Silver: 35}

// BandOf places a parsed position into its band.
func (c Cutoffs) BandOf(position int) Band {
	switch {
	case position <= c.Gold:
		return BandGold
	case position <= c.Silver:
		return BandSilver
	default:
		return BandRemainder
	}
}

type Bands[T any] struct {
	Gold      []T
	Silver    []T
	Remainder []T
}

func (b Bands[T]) Len() int {
	return len(b.Gold) + len(b.Silver) + len(b.Remainder)
}

// GroupBands partitions rows by the parsed value of their displayed
// position. Input order is kept within each band.
func GroupBands[T any](rows []T, position func(T) string, cutoffs Cutoffs) Bands[T] {
	out := Bands[T]{
		Gold:      make([]T, 0),
		Silver:    make([]T, 0),
		Remainder: make([]T, 0),
	}
	for _, row := range rows {
		switch cutoffs.BandOf(ParsePosition(position(row))) {
		case BandGold:
			out.Gold = append(out.Gold, row)
		case BandSilver:
			out.Silver = append(out.Silver, row)
		default:
			out.Remainder = append(out.Remainder, row)
		}
	}
	return out
}

// Playoff levels assigned to tour cards once the regular season closes.
const (
	PlayoffGold   = 1
	PlayoffSilver = 2
)

type PlayoffGroups[T any] struct {
	Gold   []T
	Silver []T
	Bumped []T
}

// GroupPlayoff partitions rows by their externally assigned playoff level.
func GroupPlayoff[T any](rows []T, level func(T) int) PlayoffGroups[T] {
	out := PlayoffGroups[T]{
		Gold:   make([]T, 0),
		Silver: make([]T, 0),
		Bumped: make([]T, 0),
	}
	for _, row := range rows {
		switch level(row) {
		case PlayoffGold:
			out.Gold = append(out.Gold, row)
		case PlayoffSilver:
			out.Silver = append(out.Silver, row)
		default:
			out.Bumped = append(out.Bumped, row)
		}
	}
	return out
}
