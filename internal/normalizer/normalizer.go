// Package normalizer provides Unicode normalization helpers applied to
// token text. Offsets always refer to the original document, so these
// run on extracted span text only, never on the document itself.
package normalizer

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = runes.Remove(runes.In(unicode.Mn))

// FoldDiacritics decomposes s, removes combining marks, and recomposes,
// so "Wärmedämmung" becomes "Warmedammung". Input that fails to
// transform is returned unchanged.
func FoldDiacritics(s string) string {
	// The chain carries per-call buffers, so it is built per call
	// rather than shared.
	t := transform.Chain(norm.NFD, stripMarks, norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
