// Package names canonicalizes free-text employee names so that filter
// selections and option lists match consistently across feeds.
package names

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var problematicChars = []string{"\n", "\t", "\r", "*", "#", "  "}

var titleCaser = cases.Title(language.Spanish)

// Normalize cleans a raw employee name. The second return is false when the
// input is empty or collapses to nothing. Normalize is idempotent.
func Normalize(raw string) (string, bool) {
	if strings.TrimSpace(raw) == "" {
		return "", false
	}

	clean := strings.TrimSpace(raw)
	clean = strings.Join(strings.Fields(clean), " ")
	for _, ch := range problematicChars {
		clean = strings.ReplaceAll(clean, ch, " ")
	}
	clean = titleCaser.String(clean)
	clean = strings.Join(strings.Fields(clean), " ")

	if clean == "" {
		return "", false
	}
	return clean, true
}

// NormalizePtr is the pointer-friendly form used on optional columns.
func NormalizePtr(raw *string) (string, bool) {
	if raw == nil {
		return "", false
	}
	return Normalize(*raw)
}
