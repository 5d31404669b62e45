// Package arabic holds the text normalization used for search and answer
// grading. Short-vowel marks are optional in written Arabic, so comparisons
// must not depend on them.
package arabic

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// tatweel is the elongation character, decorative only.
const tatweel = 'ـ'

func isDiacritic(r rune) bool {
	return (r >= 'ً' && r <= 'ٟ') || r == 'ٰ' || r == tatweel
}

// StripDiacritics removes the Arabic combining marks (fathatan through the
// low hamza range, the superscript alef) and the tatweel.
func StripDiacritics(s string) string {
	out, _, err := transform.String(runes.Remove(runes.Predicate(isDiacritic)), s)
	if err != nil {
		return s
	}
	return out
}

// Normalize prepares a string for comparison: diacritics stripped, case
// folded, surrounding whitespace trimmed. Idempotent.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimFunc(StripDiacritics(s), unicode.IsSpace))
}
