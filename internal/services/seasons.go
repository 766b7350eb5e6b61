package services

import (
	"regexp"
	"strconv"
)

// MonthRange is an inclusive month span parsed from free-form "best time"
// text. Start may exceed End, in which case the range wraps the year
// boundary (11-2月 covers November through February).
type MonthRange struct {
	Start int
	End   int
}

var monthNumberPattern = regexp.MustCompile(`\d{1,2}`)

// ParseMonthRanges extracts month ranges from best-time text such as
// "4-10月" or "6-8月, 11-2月". Every 1-2 digit run becomes a candidate
// month; values outside 1..12 are dropped; survivors pair up into ranges,
// with an odd trailing value standing for a single month.
func ParseMonthRanges(text string) []MonthRange {
	if text == "" {
		return nil
	}

	matches := monthNumberPattern.FindAllString(text, -1)
	values := make([]int, 0, len(matches))
	for _, match := range matches {
		month, err := strconv.Atoi(match)
		if err != nil || month < 1 || month > 12 {
			continue
		}
		values = append(values, month)
	}
	if len(values) == 0 {
		return nil
	}

	ranges := make([]MonthRange, 0, (len(values)+1)/2)
	for index := 0; index < len(values); index += 2 {
		start := values[index]
		end := start
		if index+1 < len(values) {
			end = values[index+1]
		}
		ranges = append(ranges, MonthRange{Start: start, End: end})
	}
	return ranges
}

// IsMonthInRange tests month membership, honoring wrap-around ranges.
func IsMonthInRange(month int, monthRange MonthRange) bool {
	if monthRange.Start <= monthRange.End {
		return month >= monthRange.Start && month <= monthRange.End
	}
	return month >= monthRange.Start || month <= monthRange.End
}

// IsGoodSeasonNow reports whether the given month falls in any range parsed
// from the best-time text. Text with no parsable months never matches.
func IsGoodSeasonNow(bestTime string, month int) bool {
	for _, monthRange := range ParseMonthRanges(bestTime) {
		if IsMonthInRange(month, monthRange) {
			return true
		}
	}
	return false
}
