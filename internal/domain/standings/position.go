// Package standings ranks, tiers and prices competitors for season standings
// and tournament leaderboards. Every function is pure: inputs are passed
// explicitly and never mutated.
package standings

import (
	"math"
	"strconv"
)

// Unranked compares worse than any real finishing place.
const Unranked = math.MaxInt32

// ParsePosition extracts the first digit run of a displayed position such as
// "T5" or "12". Positions without digits ("CUT", "") are Unranked.
func ParsePosition(raw string) int {
	start := -1
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return parseDigits(raw[start:i])
		}
	}
	if start < 0 {
		return Unranked
	}
	return parseDigits(raw[start:])
}

// ParsePositionPtr treats a nil position as Unranked.
func ParsePositionPtr(raw *string) int {
	if raw == nil {
		return Unranked
	}
	return ParsePosition(*raw)
}

// ParsePositionValue accepts the loosely typed position values found in
// imported rows. Numbers return themselves; negative or non-finite numbers
// are Unranked.
func ParsePositionValue(v any) int {
	switch value := v.(type) {
	case nil:
		return Unranked
	case int:
		return clampPosition(int64(value))
	case int32:
		return clampPosition(int64(value))
	case int64:
		return clampPosition(value)
	case float64:
		if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 || value >= Unranked {
			return Unranked
		}
		return int(value)
	case string:
		return ParsePosition(value)
	case *string:
		return ParsePositionPtr(value)
	default:
		return Unranked
	}
}

func parseDigits(digits string) int {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Unranked
	}
	return clampPosition(n)
}

func clampPosition(n int64) int {
	if n < 0 || n >= Unranked {
		return Unranked
	}
	return int(n)
}
