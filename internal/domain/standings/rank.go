package standings

import (
	"cmp"
	"slices"
	"strconv"
)

// Rank is a competition rank: tied entries share a place and the next
// distinct value skips ahead (1, 1, 3).
type Rank struct {
	Position int
	Ties     int
	Display  string
}

func (r Rank) Tied() bool {
	return r.Ties > 1
}

// AssignRanks ranks n already sorted entries. equal reports whether entries
// i and j share a place; it is only called for neighbours.
func AssignRanks(n int, equal func(i, j int) bool) []Rank {
	out := make([]Rank, n)
	start := 0
	for i := 1; i <= n; i++ {
		if i < n && equal(i-1, i) {
			continue
		}
		rank := Rank{Position: start + 1, Ties: i - start}
		rank.Display = displayRank(rank)
		for j := start; j < i; j++ {
			out[j] = rank
		}
		start = i
	}
	return out
}

func displayRank(r Rank) string {
	if r.Tied() {
		return "T" + strconv.Itoa(r.Position)
	}
	return strconv.Itoa(r.Position)
}

// Entry is a season standings row: a tour card and its points total.
type Entry struct {
	ID      string
	GroupID string
	Points  float64
}

type RankedEntry struct {
	Entry
	Rank Rank
}

// RankByPoints orders entries by points descending and ranks them. Entries
// with equal points keep their input order.
func RankByPoints(entries []Entry) []RankedEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		return cmp.Compare(finite(b.Points), finite(a.Points))
	})
	ranks := AssignRanks(len(sorted), func(i, j int) bool {
		return finite(sorted[i].Points) == finite(sorted[j].Points)
	})

	out := make([]RankedEntry, len(sorted))
	for i := range sorted {
		out[i] = RankedEntry{Entry: sorted[i], Rank: ranks[i]}
	}
	return out
}

type RankedCompetitor struct {
	Competitor
	SortScore int64
	Rank      Rank
}

// RankByScore sorts competitors and ranks them by normalized score.
// Penalised competitors display their status token instead of a place.
func RankByScore(items []Competitor) []RankedCompetitor {
	sorted := SortCompetitors(items)
	scores := make([]int64, len(sorted))
	for i, c := range sorted {
		scores[i] = c.SortScore()
	}
	ranks := AssignRanks(len(sorted), func(i, j int) bool {
		return scores[i] == scores[j]
	})

	out := make([]RankedCompetitor, len(sorted))
	for i, c := range sorted {
		rank := ranks[i]
		if status := c.Status(); !status.Active() {
			rank.Display = status.String()
		}
		out[i] = RankedCompetitor{Competitor: c, SortScore: scores[i], Rank: rank}
	}
	return out
}
