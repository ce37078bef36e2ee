// Package segment turns boundary offsets or pattern matches into raw
// token spans and applies the normalization filter chain.
package segment

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/dcossyleon/smltar/internal/boundary"
)

// Span is one candidate token: its (possibly normalized) text plus the
// [Start, End) rune-offset range of the original characters in the
// source document. Spans reference the document, they never own it.
type Span struct {
	Text  string
	Start int
	End   int
}

// Cut selects which scanner boundaries a Splitter cuts at.
type Cut uint8

const (
	// CutWhitespace cuts only at boundaries adjacent to whitespace, so
	// "fir-tree" stays one span while "fir tree" becomes two.
	CutWhitespace Cut = iota

	// CutAll cuts at every boundary the scanner reports, separating
	// each category transition.
	CutAll
)

// Splitter cuts a document at scanner boundaries. The resulting spans
// cover the document exactly, separators included; callers drop
// separator spans when building word tokens.
type Splitter struct {
	scanner *boundary.Scanner
	cut     Cut
}

// NewSplitter wraps a boundary scanner. A nil scanner gets default
// rules.
func NewSplitter(scanner *boundary.Scanner, cut Cut) *Splitter {
	if scanner == nil {
		scanner = boundary.NewScanner(nil, boundary.Rules{})
	}
	return &Splitter{scanner: scanner, cut: cut}
}

// Split returns every span between consecutive cut offsets, in document
// order. The concatenation of all span texts reproduces the document.
func (s *Splitter) Split(text string) []Span {
	offs := s.scanner.Scan(text)
	if len(offs) < 2 {
		return nil
	}
	runes := []rune(text)
	if s.cut == CutWhitespace {
		offs = whitespaceOffsets(runes, offs)
	}
	spans := make([]Span, 0, len(offs)-1)
	for i := 1; i < len(offs); i++ {
		start, end := offs[i-1], offs[i]
		spans = append(spans, Span{
			Text:  string(runes[start:end]),
			Start: start,
			End:   end,
		})
	}
	return spans
}

// whitespaceOffsets keeps only cut points that touch whitespace on at
// least one side, plus the text edges.
func whitespaceOffsets(runes []rune, offs []int) []int {
	kept := offs[:0:0]
	for _, k := range offs {
		if k == 0 || k == len(runes) ||
			unicode.IsSpace(runes[k-1]) || unicode.IsSpace(runes[k]) {
			kept = append(kept, k)
		}
	}
	return kept
}

// DefaultPattern matches runs of letters with optional interior hyphens
// or apostrophes, so "isn't" and "fir-tree" survive as single tokens
// while surrounding punctuation is discarded.
const DefaultPattern = `\pL+(?:['’-]\pL+)*`

// Extractor scans for spans matching an inclusion pattern and discards
// everything else. Matches resolve leftmost-longest.
type Extractor struct {
	re *regexp.Regexp
}

// NewExtractor compiles pattern; an empty pattern means DefaultPattern.
func NewExtractor(pattern string) (*Extractor, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("segment: compile extract pattern: %w", err)
	}
	re.Longest()
	return &Extractor{re: re}, nil
}

// Extract returns all pattern matches as spans with rune offsets, in
// document order.
func (e *Extractor) Extract(text string) []Span {
	idx := e.re.FindAllStringIndex(text, -1)
	if len(idx) == 0 {
		return nil
	}
	spans := make([]Span, 0, len(idx))
	// Byte offsets from the regexp are converted to rune offsets in a
	// single pass; matches are already sorted by start.
	byteOff, runeOff := 0, 0
	advance := func(target int) int {
		for byteOff < target {
			_, size := utf8.DecodeRuneInString(text[byteOff:])
			byteOff += size
			runeOff++
		}
		return runeOff
	}
	for _, m := range idx {
		start := advance(m[0])
		end := advance(m[1])
		spans = append(spans, Span{Text: text[m[0]:m[1]], Start: start, End: end})
	}
	return spans
}
