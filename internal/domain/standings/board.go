package standings

type StandingsInput struct {
	Entries []Entry
	// LastPeriod holds the points each entry earned in the most recently
	// completed tournament, keyed by entry ID.
	LastPeriod map[string]float64
	Cutoffs    Cutoffs
	// GroupCutoffs overrides Cutoffs for individual groups.
	GroupCutoffs map[string]Cutoffs
}

type StandingRow struct {
	Entry
	Rank   Rank
	Change Change
	Band   Band
}

type GroupStandings struct {
	GroupID string
	Rows    []StandingRow
	Bands   Bands[StandingRow]
}

// BuildStandings ranks entries within their group, measures movement since
// the last completed tournament and splits every group into bands. Groups
// are returned in order of first appearance.
func BuildStandings(in StandingsInput) []GroupStandings {
	cutoffs := in.Cutoffs
	if cutoffs == (Cutoffs{}) {
		cutoffs = DefaultCutoffs
	}

	order := make([]string, 0)
	byGroup := make(map[string][]Entry)
	for _, e := range in.Entries {
		if _, seen := byGroup[e.GroupID]; !seen {
			order = append(order, e.GroupID)
		}
		byGroup[e.GroupID] = append(byGroup[e.GroupID], e)
	}

	ranked := make([]RankedEntry, 0, len(in.Entries))
	for _, groupID := range order {
		ranked = append(ranked, RankByPoints(byGroup[groupID])...)
	}

	inputs := make([]ChangeInput, len(ranked))
	for i, r := range ranked {
		inputs[i] = ChangeInput{ID: r.ID, GroupID: r.GroupID, Points: r.Points, Position: r.Rank.Display}
	}
	changes := CalculateChanges(inputs, in.LastPeriod)

	out := make([]GroupStandings, 0, len(order))
	idx := 0
	for _, groupID := range order {
		cutoffs := cutoffs
		if c, ok := in.GroupCutoffs[groupID]; ok && c != (Cutoffs{}) {
			cutoffs = c
		}
		n := len(byGroup[groupID])
		rows := make([]StandingRow, n)
		for i := 0; i < n; i++ {
			r := ranked[idx]
			rows[i] = StandingRow{
				Entry:  r.Entry,
				Rank:   r.Rank,
				Change: changes[idx],
				Band:   cutoffs.BandOf(r.Rank.Position),
			}
			idx++
		}
		out = append(out, GroupStandings{
			GroupID: groupID,
			Rows:    rows,
			Bands: GroupBands(rows, func(row StandingRow) string {
				return row.Rank.Display
			}, cutoffs),
		})
	}
	return out
}

type LeaderboardInput struct {
	Competitors []Competitor
	// Payouts and Points are the tier tables indexed by rank-1.
	Payouts []float64
	Points  []float64
}

type LeaderboardRow struct {
	RankedCompetitor
	// Change compares the previous displayed place with the current rank.
	Change      int
	Earnings    float64
	HasEarnings bool
	Points      float64
	HasPoints   bool
}

// BuildLeaderboard ranks a tournament field and projects earnings and points
// for every active competitor from the tier tables.
func BuildLeaderboard(in LeaderboardInput) []LeaderboardRow {
	ranked := RankByScore(in.Competitors)
	out := make([]LeaderboardRow, len(ranked))
	for i, r := range ranked {
		row := LeaderboardRow{RankedCompetitor: r}
		if r.Status().Active() {
			row.Change = PlaceChange(r.Previous, r.Rank.Display)
			row.Earnings, row.HasEarnings = LookupRank(r.Rank, in.Payouts)
			row.Points, row.HasPoints = LookupRank(r.Rank, in.Points)
		}
		out[i] = row
	}
	return out
}

type PlayoffEntry struct {
	Entry
	Level int
}

type PlayoffRow struct {
	RankedEntry
	Level           int
	StartingStrokes float64
	HasStrokes      bool
}

// BuildPlayoff ranks each playoff bracket by points and attaches the
// starting strokes of every bracket position.
func BuildPlayoff(entries []PlayoffEntry, strokes StrokeTables) PlayoffGroups[PlayoffRow] {
	groups := GroupPlayoff(entries, func(e PlayoffEntry) int { return e.Level })
	return PlayoffGroups[PlayoffRow]{
		Gold:   rankBracket(groups.Gold, PlayoffGold, strokes),
		Silver: rankBracket(groups.Silver, PlayoffSilver, strokes),
		Bumped: rankBracket(groups.Bumped, 0, strokes),
	}
}

func rankBracket(entries []PlayoffEntry, level int, strokes StrokeTables) []PlayoffRow {
	plain := make([]Entry, len(entries))
	levels := make(map[string]int, len(entries))
	for i, e := range entries {
		plain[i] = e.Entry
		levels[e.ID] = e.Level
	}

	ranked := RankByPoints(plain)
	out := make([]PlayoffRow, len(ranked))
	for i, r := range ranked {
		row := PlayoffRow{RankedEntry: r, Level: levels[r.ID]}
		row.StartingStrokes, row.HasStrokes = strokes.StartingStrokes(level, r.Rank)
		out[i] = row
	}
	return out
}
