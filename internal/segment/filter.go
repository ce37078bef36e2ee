package segment

import (
	"strings"
	"unicode"

	"github.com/dcossyleon/smltar/internal/normalizer"
)

// Filters is the normalization chain applied to candidate spans. Steps
// run in a fixed order: separator drop, edge-punctuation trim, diacritic
// fold, lowercase, non-alphanumeric strip, punctuation strip, numeric
// drop, stopword drop. Spans emptied by any step are dropped silently.
type Filters struct {
	// DropSeparators removes spans that consist entirely of whitespace
	// (the separator spans split mode produces between word tokens).
	DropSeparators bool

	// TrimEdgePunct greedily strips leading and trailing punctuation
	// code points from each span, adjusting its offsets.
	TrimEdgePunct bool

	FoldDiacritics       bool
	Lowercase            bool
	StripNonAlphanumeric bool
	StripPunctuation     bool

	// StripNumeric drops spans whose text is entirely numeric.
	StripNumeric bool

	// Stopwords drops spans whose text matches a set entry exactly,
	// after the normalization steps above.
	Stopwords map[string]struct{}
}

// Apply runs the filter chain over spans, preserving document order.
// The input slice is not modified.
func Apply(spans []Span, f Filters) []Span {
	out := make([]Span, 0, len(spans))
	for _, sp := range spans {
		if f.DropSeparators && isWhitespaceOnly(sp.Text) {
			continue
		}
		if f.TrimEdgePunct {
			sp = trimEdgePunct(sp)
			if sp.Text == "" {
				continue
			}
		}
		if f.FoldDiacritics {
			sp.Text = normalizer.FoldDiacritics(sp.Text)
		}
		if f.Lowercase {
			sp.Text = strings.ToLower(sp.Text)
		}
		if f.StripNonAlphanumeric {
			sp.Text = stripRunes(sp.Text, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsDigit(r)
			})
		} else if f.StripPunctuation {
			sp.Text = stripRunes(sp.Text, unicode.IsPunct)
		}
		if sp.Text == "" {
			continue
		}
		if f.StripNumeric && isNumeric(sp.Text) {
			continue
		}
		if f.Stopwords != nil {
			if _, stop := f.Stopwords[sp.Text]; stop {
				continue
			}
		}
		out = append(out, sp)
	}
	return out
}

// trimEdgePunct strips punctuation from both ends of the span and moves
// its offsets inward to keep them pointing at the surviving characters.
func trimEdgePunct(sp Span) Span {
	runes := []rune(sp.Text)
	lo, hi := 0, len(runes)
	for lo < hi && unicode.IsPunct(runes[lo]) {
		lo++
	}
	for hi > lo && unicode.IsPunct(runes[hi-1]) {
		hi--
	}
	if lo == 0 && hi == len(runes) {
		return sp
	}
	return Span{
		Text:  string(runes[lo:hi]),
		Start: sp.Start + lo,
		End:   sp.Start + hi,
	}
}

func stripRunes(s string, drop func(rune) bool) string {
	return strings.Map(func(r rune) rune {
		if drop(r) {
			return -1
		}
		return r
	}, s)
}

func isWhitespaceOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return s != ""
}

// isNumeric reports whether s is a pure number: at least one digit,
// with only digits and interior decimal/thousands punctuation allowed,
// so "42", "3.2" and "3,456.789" all count.
func isNumeric(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '.' || r == ',':
		default:
			return false
		}
	}
	return digits > 0
}
