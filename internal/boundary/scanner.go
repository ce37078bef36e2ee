// Package boundary produces token boundaries for a code-point sequence
// by applying a fixed-priority rule list over classified runes.
package boundary

import (
	"github.com/dcossyleon/smltar/internal/runeclass"
)

// Rules configures the optional no-break rules. The zero value breaks at
// every category transition except letter-runs, digit-runs, CRLF pairs,
// newline runs, and horizontal whitespace runs.
type Rules struct {
	// JoinAlphanumeric keeps a letter adjacent to a digit unbroken, so
	// "3a" stays a single token.
	JoinAlphanumeric bool

	// NumericSeparators lists runes that never break a digit sequence
	// when they sit between two digits, e.g. ".," for "3.2" and
	// "3,456.789".
	NumericSeparators string
}

// Scanner turns text into a sorted, deduplicated list of rune offsets at
// which tokens may be cut. A Scanner is immutable and safe for
// concurrent use.
type Scanner struct {
	class *runeclass.Classifier
	rules Rules
	seps  map[rune]struct{}
}

// NewScanner builds a Scanner over the given classifier. A nil
// classifier uses the default one.
func NewScanner(class *runeclass.Classifier, rules Rules) *Scanner {
	if class == nil {
		class = runeclass.Default()
	}
	s := &Scanner{class: class, rules: rules}
	if rules.NumericSeparators != "" {
		s.seps = make(map[rune]struct{})
		for _, r := range rules.NumericSeparators {
			s.seps[r] = struct{}{}
		}
	}
	return s
}

// Scan returns the boundary offsets for text, in rune units, sorted
// ascending with no duplicates. Empty text yields no boundaries.
func (s *Scanner) Scan(text string) []int {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	cats := s.classify(runes)

	offsets := make([]int, 0, len(runes)/2+2)
	offsets = append(offsets, 0)
	for i := 1; i < len(runes); i++ {
		if s.breakBetween(runes, cats, i) {
			offsets = append(offsets, i)
		}
	}
	offsets = append(offsets, len(runes))
	return offsets
}

// classify assigns each rune its category, then promotes runes that the
// no-break rules absorb into a neighboring run: a join mark flanked by
// letters acts as a letter, a configured separator flanked by digits
// acts as a digit.
func (s *Scanner) classify(runes []rune) []runeclass.Category {
	cats := make([]runeclass.Category, len(runes))
	for i, r := range runes {
		cats[i] = s.class.Classify(r)
	}
	for i := 1; i < len(runes)-1; i++ {
		switch {
		case cats[i] == runeclass.JoinMark &&
			cats[i-1] == runeclass.Letter && cats[i+1] == runeclass.Letter:
			cats[i] = runeclass.Letter
		case s.isSeparator(runes[i]) &&
			cats[i-1] == runeclass.Digit && cats[i+1] == runeclass.Digit:
			cats[i] = runeclass.Digit
		}
	}
	return cats
}

func (s *Scanner) isSeparator(r rune) bool {
	_, ok := s.seps[r]
	return ok
}

// breakBetween decides whether a boundary falls between runes[i-1] and
// runes[i]. Rules are checked in priority order; the first match wins,
// so the outcome is deterministic for any configuration.
func (s *Scanner) breakBetween(runes []rune, cats []runeclass.Category, i int) bool {
	prev, cur := runes[i-1], runes[i]
	pc, cc := cats[i-1], cats[i]

	// Never split a CRLF pair.
	if prev == '\r' && cur == '\n' {
		return false
	}

	// Newline runs stay whole; everything else breaks against them.
	pn, cn := runeclass.IsNewline(prev), runeclass.IsNewline(cur)
	if pn || cn {
		return pn != cn
	}

	// Letter runs and digit runs stay whole.
	if pc == cc && (pc == runeclass.Letter || pc == runeclass.Digit) {
		return false
	}

	// Optional letter/digit joining keeps "3a" whole.
	if s.rules.JoinAlphanumeric &&
		(pc == runeclass.Letter || pc == runeclass.Digit) &&
		(cc == runeclass.Letter || cc == runeclass.Digit) {
		return false
	}

	// Horizontal whitespace collapses into one span.
	if pc == runeclass.Whitespace && cc == runeclass.Whitespace {
		return false
	}

	// Any other adjacent-category transition breaks.
	return pc != cc
}
