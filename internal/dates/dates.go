// Package dates provides parsing and French formatting for the "YYYY-MM"
// month tokens used throughout the candidate profile.
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var ymPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// monthNamesFR indexes French month names by month number (1-12).
var monthNamesFR = [13]string{"",
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// YearMonth is a parsed "YYYY-MM" token.
type YearMonth struct {
	Year  int
	Month int
}

// ParseYM parses a "YYYY-MM" token. The month must be in 01-12.
func ParseYM(s string) (YearMonth, bool) {
	s = strings.TrimSpace(s)
	if !ymPattern.MatchString(s) {
		return YearMonth{}, false
	}
	var ym YearMonth
	if _, err := fmt.Sscanf(s, "%d-%d", &ym.Year, &ym.Month); err != nil {
		return YearMonth{}, false
	}
	if ym.Month < 1 || ym.Month > 12 {
		return YearMonth{}, false
	}
	return ym, true
}

// MonthDiff returns the number of whole months between two "YYYY-MM" tokens.
// ok is false when either token fails to parse or the range is inverted.
func MonthDiff(startYM, endYM string) (int, bool) {
	start, okS := ParseYM(startYM)
	end, okE := ParseYM(endYM)
	if !okS || !okE {
		return 0, false
	}
	diff := (end.Year*12 + end.Month) - (start.Year*12 + start.Month)
	if diff < 0 {
		return 0, false
	}
	return diff, true
}

// NowYM returns the current month as a "YYYY-MM" token.
func NowYM() string {
	now := time.Now()
	return fmt.Sprintf("%04d-%02d", now.Year(), int(now.Month()))
}

// FormatMonthFR renders a "YYYY-MM" token as a French month label,
// e.g. "2021-03" -> "mars 2021". Returns "" for unparseable input.
func FormatMonthFR(ym string) string {
	parsed, ok := ParseYM(ym)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s %d", monthNamesFR[parsed.Month], parsed.Year)
}

// FormatDurationFR renders a month count as a French duration,
// e.g. 27 -> "2 ans 3 mois". Zero or negative counts render as "".
func FormatDurationFR(months int) string {
	if months <= 0 {
		return ""
	}
	years := months / 12
	rem := months % 12
	var parts []string
	if years == 1 {
		parts = append(parts, "1 an")
	} else if years > 1 {
		parts = append(parts, fmt.Sprintf("%d ans", years))
	}
	if rem > 0 {
		parts = append(parts, fmt.Sprintf("%d mois", rem))
	}
	return strings.Join(parts, " ")
}

// RangeFR renders a start/end pair as a display range with an inclusive
// duration suffix, e.g. "janvier 2020 – mars 2021 (1 an 3 mois)".
// When current is true the end label reads "En cours" and the duration is
// computed against the current month.
func RangeFR(startYM, endYM string, current bool) string {
	start := FormatMonthFR(startYM)
	end := ""
	endForDiff := endYM
	if current {
		end = "En cours"
		endForDiff = NowYM()
	} else {
		end = FormatMonthFR(endYM)
	}

	var labels []string
	if start != "" {
		labels = append(labels, start)
	}
	if end != "" {
		labels = append(labels, end)
	}
	rangeLabel := strings.Join(labels, " – ")

	if startYM != "" && endForDiff != "" {
		if diff, ok := MonthDiff(startYM, endForDiff); ok {
			// The month count is inclusive of both endpoints.
			if dur := FormatDurationFR(diff + 1); dur != "" {
				return rangeLabel + " (" + dur + ")"
			}
		}
	}
	return rangeLabel
}
