package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcossyleon/smltar/internal/boundary"
)

func texts(spans []Span) []string {
	out := make([]string, len(spans))
	for i, sp := range spans {
		out[i] = sp.Text
	}
	return out
}

func TestSplit_CoversDocumentExactly(t *testing.T) {
	docs := []string{
		"fir-tree and sons",
		"  leading and trailing  ",
		"line one\r\nline two\n\nline four",
		"price: 3,456.789 (approx.)",
		"héllo wörld",
	}
	for _, cut := range []Cut{CutWhitespace, CutAll} {
		s := NewSplitter(nil, cut)
		for _, doc := range docs {
			spans := s.Split(doc)
			var b strings.Builder
			prevEnd := 0
			for _, sp := range spans {
				assert.Equal(t, prevEnd, sp.Start, "spans must be contiguous in %q", doc)
				prevEnd = sp.End
				b.WriteString(sp.Text)
			}
			assert.Equal(t, doc, b.String(), "concatenated spans must rebuild the document")
		}
	}
}

func TestSplit_Empty(t *testing.T) {
	assert.Nil(t, NewSplitter(nil, CutWhitespace).Split(""))
}

func TestSplit_WhitespaceKeepsHyphenatedWords(t *testing.T) {
	s := NewSplitter(nil, CutWhitespace)
	spans := Apply(s.Split("fir-tree and sons"), Filters{DropSeparators: true, TrimEdgePunct: true})
	assert.Equal(t, []string{"fir-tree", "and", "sons"}, texts(spans))
}

func TestSplit_AllTransitions(t *testing.T) {
	s := NewSplitter(nil, CutAll)
	spans := Apply(s.Split("fir-tree and sons"), Filters{DropSeparators: true})
	assert.Equal(t, []string{"fir", "-", "tree", "and", "sons"}, texts(spans))
}

func TestExtract_DefaultPattern(t *testing.T) {
	e, err := NewExtractor("")
	require.NoError(t, err)

	spans := e.Extract("This isn't a sentence with hyphenated-words.")
	assert.Equal(t,
		[]string{"This", "isn't", "a", "sentence", "with", "hyphenated-words"},
		texts(spans))
}

func TestExtract_LeftmostLongest(t *testing.T) {
	// Alternation order must not shorten a match: leftmost-longest wins.
	e, err := NewExtractor(`a|ab|abc`)
	require.NoError(t, err)
	spans := e.Extract("abc ab a")
	assert.Equal(t, []string{"abc", "ab", "a"}, texts(spans))
}

func TestExtract_RuneOffsets(t *testing.T) {
	e, err := NewExtractor("")
	require.NoError(t, err)
	spans := e.Extract("héllo wörld")
	require.Len(t, spans, 2)
	assert.Equal(t, Span{Text: "héllo", Start: 0, End: 5}, spans[0])
	assert.Equal(t, Span{Text: "wörld", Start: 6, End: 11}, spans[1])
}

func TestExtract_BadPattern(t *testing.T) {
	_, err := NewExtractor(`[unclosed`)
	assert.Error(t, err)
}

func TestApply_FilterOrder(t *testing.T) {
	spans := []Span{
		{Text: "The", Start: 0, End: 3},
		{Text: "  ", Start: 3, End: 5},
		{Text: "Fir-Tree!", Start: 5, End: 14},
		{Text: "42", Start: 15, End: 17},
		{Text: "3.2", Start: 18, End: 21},
		{Text: "...", Start: 21, End: 24},
	}
	got := Apply(spans, Filters{
		DropSeparators: true,
		TrimEdgePunct:  true,
		Lowercase:      true,
		StripNumeric:   true,
		Stopwords:      map[string]struct{}{"the": {}},
	})
	assert.Equal(t, []string{"fir-tree"}, texts(got))
}

func TestApply_TrimEdgePunctOffsets(t *testing.T) {
	got := Apply([]Span{{Text: `"quote",`, Start: 10, End: 18}}, Filters{TrimEdgePunct: true})
	assert.Equal(t, []Span{{Text: "quote", Start: 11, End: 16}}, got)
}

func TestApply_PunctuationOnlySpanDropped(t *testing.T) {
	got := Apply([]Span{{Text: "---", Start: 0, End: 3}}, Filters{TrimEdgePunct: true})
	assert.Empty(t, got)
}

func TestApply_StripNonAlphanumeric(t *testing.T) {
	got := Apply([]Span{{Text: "o'clock", Start: 0, End: 7}}, Filters{StripNonAlphanumeric: true})
	assert.Equal(t, []string{"oclock"}, texts(got))
}

func TestApply_StripPunctuationKeepsSymbols(t *testing.T) {
	got := Apply([]Span{{Text: "a+b.", Start: 0, End: 4}}, Filters{StripPunctuation: true})
	assert.Equal(t, []string{"a+b"}, texts(got))
}

func TestApply_StopwordsMatchNormalizedForm(t *testing.T) {
	stop := map[string]struct{}{"the": {}}
	// Stopword matching runs after lowercasing, so "The" is caught.
	got := Apply([]Span{{Text: "The", Start: 0, End: 3}}, Filters{Lowercase: true, Stopwords: stop})
	assert.Empty(t, got)
	// Without lowercasing the match is exact and "The" survives.
	got = Apply([]Span{{Text: "The", Start: 0, End: 3}}, Filters{Stopwords: stop})
	assert.Equal(t, []string{"The"}, texts(got))
}

func TestApply_Idempotent(t *testing.T) {
	f := Filters{
		DropSeparators: true,
		TrimEdgePunct:  true,
		Lowercase:      true,
		StripNumeric:   true,
		Stopwords:      map[string]struct{}{"and": {}},
	}
	spans := NewSplitter(boundary.NewScanner(nil, boundary.Rules{NumericSeparators: ".,"}), CutWhitespace).
		Split("The fir-tree, and 3,456.789 sons!")
	once := Apply(spans, f)
	twice := Apply(once, f)
	assert.Equal(t, once, twice)
}

func TestApply_FoldDiacritics(t *testing.T) {
	got := Apply([]Span{{Text: "Wärmedämmung", Start: 0, End: 12}}, Filters{FoldDiacritics: true, Lowercase: true})
	assert.Equal(t, []string{"warmedammung"}, texts(got))
}
