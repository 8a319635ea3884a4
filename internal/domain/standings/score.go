package standings

import "strings"

// Status is the scoring state carried by a competitor's displayed position.
type Status int

const (
	StatusActive Status = iota
	StatusCut
	StatusWithdrawn
	StatusDisqualified
)

func (s Status) String() string {
	switch s {
	case StatusCut:
		return "CUT"
	case StatusWithdrawn:
		return "WD"
	case StatusDisqualified:
		return "DQ"
	default:
		return "ACTIVE"
	}
}

// Active reports whether the competitor is still scoring.
func (s Status) Active() bool {
	return s == StatusActive
}

// StatusOf reads the status token out of a displayed position.
func StatusOf(position string) Status {
	token := strings.ToUpper(strings.TrimSpace(position))
	switch {
	case token == "":
		return StatusActive
	case strings.Contains(token, "DQ"):
		return StatusDisqualified
	case strings.Contains(token, "WD"):
		return StatusWithdrawn
	case strings.Contains(token, "CUT"):
		return StatusCut
	default:
		return StatusActive
	}
}

const (
	PenaltyDQ  = 999
	PenaltyWD  = 888
	PenaltyCut = 444

	// MissingScore stands in for a competitor that has not posted a score.
	MissingScore = 999

	// BandWidth separates status bands so a penalised competitor never
	// overlaps an active one, whatever the raw scores are.
	BandWidth = 1_000_000

	maxRawScore = BandWidth/2 - 1
)

func (s Status) penalty() int64 {
	switch s {
	case StatusDisqualified:
		return PenaltyDQ
	case StatusWithdrawn:
		return PenaltyWD
	case StatusCut:
		return PenaltyCut
	default:
		return 0
	}
}

// NormalizeScore folds status and raw score into one ascending sort key.
// DQ > WD > CUT > active for any pair of raw scores.
func NormalizeScore(status Status, score *int) int64 {
	raw := int64(MissingScore)
	if score != nil {
		raw = int64(*score)
	}
	if raw > maxRawScore {
		raw = maxRawScore
	}
	if raw < -maxRawScore {
		raw = -maxRawScore
	}
	return status.penalty()*BandWidth + raw
}
