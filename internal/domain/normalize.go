package domain

import (
	"strconv"
	"strings"
)

// YearFromDate extracts the year from a "YYYY-MM-DD" or "YYYY" date string.
// Returns 0 when the date is empty or malformed.
func YearFromDate(date string) int {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil || year <= 0 {
		return 0
	}
	return year
}

// FirstNonEmpty returns the first non-blank string of values.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
