package standings

import (
	"cmp"
	"slices"
	"strings"
)

const HolesPerRound = 18

// Competitor is a team or golfer as read from a tournament snapshot.
type Competitor struct {
	ID      string
	GroupID string
	// Position is the displayed place ("T3", "CUT") and may be empty.
	Position string
	// Previous is the displayed place before the latest update.
	Previous string
	Score    *int
	Today    *int
	Thru     *int
	Round    *int
	// Group is the draft group of a golfer; teams leave it zero.
	Group int
}

func (c Competitor) Status() Status {
	return StatusOf(c.Position)
}

// Progress counts holes completed across rounds.
func (c Competitor) Progress() int {
	thru := 0
	if c.Thru != nil && *c.Thru > 0 {
		thru = *c.Thru
	}
	if c.Round == nil || *c.Round < 1 {
		return thru
	}
	return (*c.Round-1)*HolesPerRound + thru
}

func (c Competitor) SortScore() int64 {
	return NormalizeScore(c.Status(), c.Score)
}

// Compare orders competitors by normalized score. Active ties fall back to
// progress ascending; penalised ties fall back to draft group then the raw
// position token.
func Compare(a, b Competitor) int {
	if c := cmp.Compare(a.SortScore(), b.SortScore()); c != 0 {
		return c
	}
	if a.Status().Active() {
		return cmp.Compare(a.Progress(), b.Progress())
	}
	if c := cmp.Compare(a.Group, b.Group); c != 0 {
		return c
	}
	return strings.Compare(a.Position, b.Position)
}

// SortCompetitors returns a stably sorted copy of items.
func SortCompetitors(items []Competitor) []Competitor {
	out := slices.Clone(items)
	slices.SortStableFunc(out, Compare)
	return out
}
