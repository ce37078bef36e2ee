// Package ngram slides fixed-width windows over token or character
// streams. For a stream of length L and width w it always emits
// max(0, L-w+1) windows.
package ngram

import (
	"strings"
	"unicode"

	"github.com/dcossyleon/smltar/internal/segment"
)

// Windower emits every window of width NMin through N, stride 1.
// Windows are ordered by start position, then by ascending width at the
// same start. The zero value is unusable; widths must satisfy
// 1 <= NMin <= N, which the facade validates before construction.
type Windower struct {
	N         int
	NMin      int
	Delimiter string
}

// Words expands word spans into n-gram spans. Each window's text joins
// the member texts with the delimiter and its offsets cover the first
// member's start through the last member's end. Fewer than NMin tokens
// yield no windows.
func (w Windower) Words(spans []segment.Span) []segment.Span {
	l := len(spans)
	if l < w.NMin {
		return nil
	}
	out := make([]segment.Span, 0, windowCount(l, w.NMin, w.N))
	parts := make([]string, 0, w.N)
	for start := 0; start < l; start++ {
		for width := w.NMin; width <= w.N && start+width <= l; width++ {
			parts = parts[:0]
			for i := start; i < start+width; i++ {
				parts = append(parts, spans[i].Text)
			}
			out = append(out, segment.Span{
				Text:  strings.Join(parts, w.Delimiter),
				Start: spans[start].Start,
				End:   spans[start+width-1].End,
			})
		}
	}
	return out
}

// Characters expands text into character n-gram spans. By default
// windows stay inside a single whitespace-delimited run; crossWord lets
// them span the whole text, whitespace included.
func (w Windower) Characters(text string, crossWord bool) []segment.Span {
	if crossWord {
		return w.charWindows([]rune(text), 0)
	}
	var out []segment.Span
	for _, run := range runs(text) {
		out = append(out, w.charWindows(run.runes, run.start)...)
	}
	return out
}

// charWindows windows one rune sequence, offsetting spans by base.
func (w Windower) charWindows(rs []rune, base int) []segment.Span {
	l := len(rs)
	if l < w.NMin {
		return nil
	}
	out := make([]segment.Span, 0, windowCount(l, w.NMin, w.N))
	for start := 0; start < l; start++ {
		for width := w.NMin; width <= w.N && start+width <= l; width++ {
			out = append(out, segment.Span{
				Text:  string(rs[start : start+width]),
				Start: base + start,
				End:   base + start + width,
			})
		}
	}
	return out
}

type run struct {
	runes []rune
	start int
}

// runs splits text into maximal non-whitespace rune sequences with
// their rune offsets.
func runs(text string) []run {
	var out []run
	var cur []rune
	curStart := 0
	off := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			if len(cur) > 0 {
				out = append(out, run{runes: cur, start: curStart})
				cur = nil
			}
		} else {
			if len(cur) == 0 {
				curStart = off
			}
			cur = append(cur, r)
		}
		off++
	}
	if len(cur) > 0 {
		out = append(out, run{runes: cur, start: curStart})
	}
	return out
}

func windowCount(l, nMin, n int) int {
	total := 0
	for w := nMin; w <= n; w++ {
		if l >= w {
			total += l - w + 1
		}
	}
	return total
}
