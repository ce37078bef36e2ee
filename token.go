package smltar

// Token is a single unit produced by tokenization: its term text (after
// normalization) plus the [Start, End) rune-offset range of the original
// characters in the source document. Tokens reference the document, they
// never own it; for n-gram tokens the range covers the first through the
// last member.
type Token struct {
	Term     string `json:"term"`
	Position int    `json:"position"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

// TokenSequence is the ordered token list for one document. An empty
// document yields an empty sequence, never an error.
type TokenSequence []Token

// Terms returns just the term texts, in order.
func (ts TokenSequence) Terms() []string {
	terms := make([]string, len(ts))
	for i, t := range ts {
		terms[i] = t.Term
	}
	return terms
}

// Result is the per-document outcome of a batch call. Either Tokens or
// Err is set; a failed document never aborts the rest of the batch.
type Result struct {
	Index  int           `json:"index"`
	Tokens TokenSequence `json:"tokens,omitempty"`
	Err    error         `json:"-"`
}
