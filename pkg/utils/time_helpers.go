package utils

import "time"

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate accepts the date spellings the upstream backend emits: full
// RFC3339 timestamps, LocalDateTime without a zone, or a bare date.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateOnly trims a timestamp down to the YYYY-MM-DD form the date inputs use.
func DateOnly(s string) string {
	if t, ok := ParseDate(s); ok {
		return t.Format("2006-01-02")
	}
	return s
}

// MonthKey buckets a date string into YYYY-MM for the cost-by-month rollup.
func MonthKey(s string) string {
	if t, ok := ParseDate(s); ok {
		return t.Format("2006-01")
	}
	return ""
}
