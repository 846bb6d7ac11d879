package util

import (
	"strings"
	"time"
)

// single-digit layouts also accept zero-padded values
const (
	isoDateLayout = "2006-1-2"
	usDateLayout  = "1/2/2006"
)

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// ParseDateWithFallback accepts YYYY-MM-DD, then MM/DD/YYYY. When neither
// layout matches it returns fallback and false; callers treat that as a
// recovered value, not an error.
func ParseDateWithFallback(s string, fallback time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{isoDateLayout, usDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return fallback, false
}
