package smltar

import (
	"runtime"
	"sync"
	"unicode/utf8"
)

// Tokenizer applies one immutable configuration to any number of
// documents. All rule tables are compiled in New and never change, so a
// Tokenizer is safe for concurrent use and identical (documents,
// config) input always yields identical output.
type Tokenizer struct {
	cfg      Config
	strategy Strategy
}

// New builds a Tokenizer, failing fast on an invalid configuration
// before any document can be processed.
func New(cfg Config) (*Tokenizer, error) {
	return NewWithRegistry(cfg, defaultRegistry)
}

// NewWithRegistry is New with a caller-supplied strategy registry.
func NewWithRegistry(cfg Config, reg *Registry) (*Tokenizer, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	factory, err := reg.Get(cfg.Mode)
	if err != nil {
		return nil, err
	}
	strategy, err := factory(cfg)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{cfg: cfg, strategy: strategy}, nil
}

// Config returns the defaulted configuration in effect.
func (t *Tokenizer) Config() Config { return t.cfg }

// Tokenize tokenizes a single document. An empty document yields an
// empty sequence; a document that is not valid UTF-8 yields an
// InputError identifying the offending byte offset.
func (t *Tokenizer) Tokenize(doc string) (TokenSequence, error) {
	return t.tokenizeAt(0, doc)
}

func (t *Tokenizer) tokenizeAt(index int, doc string) (TokenSequence, error) {
	if doc == "" {
		return TokenSequence{}, nil
	}
	if off := invalidOffset(doc); off >= 0 {
		return nil, &InputError{Doc: index, Offset: off}
	}
	tokens := t.strategy.Tokenize(doc)
	seq := make(TokenSequence, len(tokens))
	for i, tok := range tokens {
		tok.Position = i
		seq[i] = tok
	}
	return seq, nil
}

// TokenizeBatch tokenizes documents in parallel, one Result per input
// document in input order. Documents share only the immutable config
// and rule tables, so no coordination beyond splitting the batch is
// needed; a malformed document is reported in its own Result and never
// blocks the others.
func (t *Tokenizer) TokenizeBatch(docs []string) []Result {
	results := make([]Result, len(docs))

	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	for i, doc := range docs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, doc string) {
			defer wg.Done()
			defer func() { <-sem }()
			tokens, err := t.tokenizeAt(i, doc)
			results[i] = Result{Index: i, Tokens: tokens, Err: err}
		}(i, doc)
	}
	wg.Wait()

	return results
}

// Tokenize is the one-shot convenience entry point: build a Tokenizer
// for cfg and run the whole batch.
func Tokenize(docs []string, cfg Config) ([]Result, error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return t.TokenizeBatch(docs), nil
}

// invalidOffset returns the byte offset of the first invalid UTF-8
// sequence in s, or -1 if s is valid.
func invalidOffset(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
