// Package smltar is a general text-tokenization and n-gram extraction
// engine: boundary-based word tokenization, character tokenization,
// word and character n-gram windowing, and pattern extraction, with
// configurable normalization and stopword filtering.
//
// The engine is stateless and side-effect-free per call. A Tokenizer
// compiles its rule tables once from an immutable Config and may then
// be shared freely across goroutines:
//
//	t, err := smltar.New(smltar.Config{Mode: smltar.ModeWords, Lowercase: true})
//	if err != nil {
//		// invalid configuration, nothing was processed
//	}
//	tokens, err := t.Tokenize("The fir-tree and sons.")
//
// Each token carries the [start, end) rune-offset range of its original
// characters, so callers can always map tokens back into the document.
package smltar
