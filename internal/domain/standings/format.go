package standings

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Missing is shown in place of a value the tables do not cover.
const Missing = "-"

// Ordinal renders 1 as "1st", 12 as "12th", 23 as "23rd".
func Ordinal(n int) string {
	if n == Unranked {
		return Missing
	}
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// FormatMoney renders whole amounts without cents: "$1,250", "$12.50".
func FormatMoney(v float64) string {
	p := message.NewPrinter(language.English)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	if v == math.Trunc(v) {
		return p.Sprintf("%s$%.0f", sign, v)
	}
	return p.Sprintf("%s$%.2f", sign, v)
}

// FormatPercent renders a ratio as a percentage with one decimal.
func FormatPercent(ratio float64) string {
	return strconv.FormatFloat(Round1(finite(ratio)*100), 'f', 1, 64) + "%"
}

// FormatPoints renders a points value with at most one decimal.
func FormatPoints(v float64) string {
	return strconv.FormatFloat(Round1(v), 'f', -1, 64)
}

// FormatLookup renders a lookup result, falling back to Missing.
func FormatLookup(v float64, ok bool, format func(float64) string) string {
	if !ok {
		return Missing
	}
	return format(v)
}
