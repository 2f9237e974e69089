package utils

import (
	"strconv"
	"strings"
	"time"
)

// The sheet exports mix date layouts depending on how the cell was typed in.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2006-01-02 15:04:05",
	"02/01/2006 15:04",
}

// ParseDate tries the known layouts in order and returns the zero time when
// none matches.
func ParseDate(dateStr string) time.Time {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ParseFloat handles cells typed with a comma decimal separator. The second
// return is false when the value does not parse.
func ParseFloat(valStr string) (float64, bool) {
	valStr = strings.TrimSpace(valStr)
	if valStr == "" {
		return 0.0, false
	}
	valStr = strings.ReplaceAll(valStr, ",", ".")
	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0.0, false
	}
	return val, true
}
