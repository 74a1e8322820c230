package text

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizer folds compatibility characters (ligatures, non-breaking spaces,
// fullwidth forms) into their plain equivalents and strips invisible format
// characters such as soft hyphens and zero-width spaces.
var normalizer = transform.Chain(
	norm.NFKC,
	runes.Remove(runes.In(unicode.Cf)),
)

// Normalize returns the line with compatibility characters folded and format
// characters removed. If the transform fails (malformed UTF-8), the input is
// returned unchanged; the reflow heuristics degrade gracefully on raw bytes.
func Normalize(s string) string {
	out, _, err := transform.String(normalizer, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeAll normalizes every line in place-order, returning a new slice.
func NormalizeAll(lines []string) []string {
	if lines == nil {
		return nil
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Normalize(l)
	}
	return out
}
