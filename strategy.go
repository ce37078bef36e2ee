package smltar

import (
	"fmt"

	"github.com/dcossyleon/smltar/internal/boundary"
	"github.com/dcossyleon/smltar/internal/ngram"
	"github.com/dcossyleon/smltar/internal/runeclass"
	"github.com/dcossyleon/smltar/internal/segment"
	"github.com/dcossyleon/smltar/internal/stopwords"
)

// Strategy turns one valid document into its token sequence. Position
// fields are assigned by the Tokenizer; implementations fill Term,
// Start, and End. Implementations must be pure and safe for concurrent
// use.
type Strategy interface {
	Tokenize(doc string) []Token
}

// StrategyFactory builds a strategy from a validated config. Factories
// run once per Tokenizer; the returned strategy is reused across every
// document (build-once, read-many).
type StrategyFactory func(cfg Config) (Strategy, error)

// filtersFor translates config options into the segment filter chain.
// trimEdges is set for split mode only, where raw spans still carry
// surrounding punctuation.
func filtersFor(cfg Config, trimEdges bool) (segment.Filters, error) {
	stop := stopwords.Set(cfg.Stopwords)
	if cfg.StopwordSource != "" {
		named, err := stopwords.Load(cfg.StopwordSource)
		if err != nil {
			return segment.Filters{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		stop = stopwords.Merge(stop, named)
	}
	return segment.Filters{
		DropSeparators:       true,
		TrimEdgePunct:        trimEdges,
		FoldDiacritics:       cfg.FoldDiacritics,
		Lowercase:            cfg.Lowercase,
		StripNonAlphanumeric: cfg.StripNonAlphanumeric,
		StripPunctuation:     cfg.StripPunctuation,
		StripNumeric:         cfg.StripNumeric,
		Stopwords:            stop,
	}, nil
}

// scannerFor builds the boundary scanner, including the classifier's
// join-mark set, from config. Tables are built once here and treated as
// immutable afterwards.
func scannerFor(cfg Config) *boundary.Scanner {
	var class *runeclass.Classifier
	if cfg.ContractionMarks != "" {
		class = runeclass.New([]rune(cfg.ContractionMarks)...)
	}
	return boundary.NewScanner(class, boundary.Rules{
		JoinAlphanumeric:  cfg.JoinAlphanumeric,
		NumericSeparators: cfg.NumericSeparators,
	})
}

// wordSegmenter yields the filtered word spans shared by the word and
// word-n-gram strategies.
type wordSegmenter struct {
	split   *segment.Splitter
	extract *segment.Extractor
	filters segment.Filters
}

func newWordSegmenter(cfg Config) (*wordSegmenter, error) {
	// Pattern matches are exact; only boundary splits carry edge
	// punctuation worth trimming.
	trimEdges := !cfg.Extract && cfg.Mode != ModeRegex
	filters, err := filtersFor(cfg, trimEdges)
	if err != nil {
		return nil, err
	}
	ws := &wordSegmenter{filters: filters}
	if cfg.Extract || cfg.Mode == ModeRegex {
		ws.extract, err = segment.NewExtractor(cfg.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		return ws, nil
	}
	cut := segment.CutWhitespace
	if cfg.SplitTransitions {
		cut = segment.CutAll
	}
	ws.split = segment.NewSplitter(scannerFor(cfg), cut)
	return ws, nil
}

func (ws *wordSegmenter) segments(doc string) []segment.Span {
	var spans []segment.Span
	if ws.extract != nil {
		spans = ws.extract.Extract(doc)
	} else {
		spans = ws.split.Split(doc)
	}
	return segment.Apply(spans, ws.filters)
}

// wordStrategy emits the filtered word spans directly.
type wordStrategy struct {
	seg *wordSegmenter
}

func newWordStrategy(cfg Config) (Strategy, error) {
	seg, err := newWordSegmenter(cfg)
	if err != nil {
		return nil, err
	}
	return &wordStrategy{seg: seg}, nil
}

func (s *wordStrategy) Tokenize(doc string) []Token {
	return toTokens(s.seg.segments(doc))
}

// wordNgramStrategy windows the filtered word stream.
type wordNgramStrategy struct {
	seg *wordSegmenter
	win ngram.Windower
}

func newWordNgramStrategy(cfg Config) (Strategy, error) {
	seg, err := newWordSegmenter(cfg)
	if err != nil {
		return nil, err
	}
	return &wordNgramStrategy{
		seg: seg,
		win: ngram.Windower{N: cfg.N, NMin: cfg.NMin, Delimiter: cfg.Delimiter},
	}, nil
}

func (s *wordNgramStrategy) Tokenize(doc string) []Token {
	return toTokens(s.win.Words(s.seg.segments(doc)))
}

// charStrategy emits one token per character; charNgramStrategy emits
// sliding character windows. Both apply the term filters to the window
// text, never to the document, so offsets stay valid.
type charStrategy struct {
	win       ngram.Windower
	crossWord bool
	filters   segment.Filters
}

func newCharStrategy(cfg Config, width int) (Strategy, error) {
	filters, err := filtersFor(cfg, false)
	if err != nil {
		return nil, err
	}
	win := ngram.Windower{N: cfg.N, NMin: cfg.NMin}
	if width > 0 {
		win = ngram.Windower{N: width, NMin: width}
	}
	return &charStrategy{win: win, crossWord: cfg.CrossWordWindows, filters: filters}, nil
}

func (s *charStrategy) Tokenize(doc string) []Token {
	spans := s.win.Characters(doc, s.crossWord)
	return toTokens(segment.Apply(spans, s.filters))
}

func toTokens(spans []segment.Span) []Token {
	tokens := make([]Token, len(spans))
	for i, sp := range spans {
		tokens[i] = Token{Term: sp.Text, Start: sp.Start, End: sp.End}
	}
	return tokens
}
