package team

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/fantasy-golf/internal/domain/golfer"
)

var (
	ErrInvalidTeamSize    = errors.New("invalid team size")
	ErrDuplicateGolfer    = errors.New("duplicate golfer in team")
	ErrGolferNotInField   = errors.New("golfer is not in the tournament field")
	ErrUngroupedGolfer    = errors.New("golfer has no draft group")
	ErrGroupQuotaExceeded = errors.New("too many golfers from one group")
	ErrGroupQuotaShort    = errors.New("not enough golfers from one group")
	ErrTeamLocked         = errors.New("team is locked once the tournament starts")
)

// Rules stores roster validation parameters.
type Rules struct {
	Size     int
	PerGroup int
	Groups   int
}

func DefaultRules() Rules {
	return Rules{Size: 10, PerGroup: 2, Groups: golfer.MaxGroup}
}

// ValidateRoster checks golferIDs against the tournament field.
func ValidateRoster(golferIDs []string, field []golfer.Golfer, rules Rules) error {
	if len(golferIDs) != rules.Size {
		return fmt.Errorf("%w: expected %d, got %d", ErrInvalidTeamSize, rules.Size, len(golferIDs))
	}

	byID := make(map[string]golfer.Golfer, len(field))
	for _, g := range field {
		byID[g.ID] = g
	}

	seen := make(map[string]struct{}, len(golferIDs))
	perGroup := make(map[int]int, rules.Groups)
	for _, id := range golferIDs {
		if id == "" {
			return fmt.Errorf("golfer id is required")
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateGolfer, id)
		}
		seen[id] = struct{}{}

		g, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: %s", ErrGolferNotInField, id)
		}
		if g.Group < golfer.MinGroup || g.Group > rules.Groups {
			return fmt.Errorf("%w: %s", ErrUngroupedGolfer, id)
		}
		perGroup[g.Group]++
		if perGroup[g.Group] > rules.PerGroup {
			return fmt.Errorf("%w: group=%d max=%d", ErrGroupQuotaExceeded, g.Group, rules.PerGroup)
		}
	}

	for group := golfer.MinGroup; group <= rules.Groups; group++ {
		if perGroup[group] < rules.PerGroup {
			return fmt.Errorf("%w: group=%d min=%d current=%d", ErrGroupQuotaShort, group, rules.PerGroup, perGroup[group])
		}
	}
	return nil
}
