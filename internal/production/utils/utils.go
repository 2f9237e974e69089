package utils

import (
	"math"
	"time"

	"github.com/go-gota/gota/dataframe"
)

func containsString(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}

// HasColumn reports whether the dataframe carries the named column. Presence
// is resolved once at load time and recorded in the schema capabilities, not
// re-checked per row.
func HasColumn(df *dataframe.DataFrame, col string) bool {
	if df == nil {
		return false
	}
	return containsString(df.Names(), col)
}

func GetStr(col string, rowIdx int, df *dataframe.DataFrame) string {
	if !HasColumn(df, col) {
		return ""
	}
	val := df.Col(col).Elem(rowIdx)
	if val.IsNA() {
		return ""
	}
	return val.String()
}

// GetStrPtr returns nil for a missing column, an NA cell, or an empty cell.
func GetStrPtr(col string, rowIdx int, df *dataframe.DataFrame) *string {
	s := GetStr(col, rowIdx, df)
	if s == "" || s == "NaN" {
		return nil
	}
	return &s
}

// GetFloatPtr returns nil when the column is missing or the cell does not
// parse as a number. Cells typed with a comma decimal separator fall back to
// ParseFloat.
func GetFloatPtr(col string, rowIdx int, df *dataframe.DataFrame) *float64 {
	if !HasColumn(df, col) {
		return nil
	}
	val := df.Col(col).Elem(rowIdx)
	if val.IsNA() {
		return nil
	}
	f := val.Float()
	if math.IsNaN(f) {
		parsed, ok := ParseFloat(val.String())
		if !ok || math.IsNaN(parsed) {
			return nil
		}
		f = parsed
	}
	return &f
}

// GetTimePtr returns nil when the column is missing or the cell holds an
// unparseable date, which the pipeline treats as "unknown".
func GetTimePtr(col string, rowIdx int, df *dataframe.DataFrame) *time.Time {
	s := GetStr(col, rowIdx, df)
	t := ParseDate(s)
	if t.IsZero() {
		return nil
	}
	return &t
}
