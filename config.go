package smltar

import "fmt"

// Mode selects the tokenization strategy.
type Mode string

const (
	// ModeWords splits at whitespace boundaries (or extracts by
	// pattern, see Config.Extract) and emits word tokens.
	ModeWords Mode = "words"

	// ModeCharacters emits one token per non-whitespace character.
	ModeCharacters Mode = "characters"

	// ModeNgrams emits word tokens joined into sliding windows.
	ModeNgrams Mode = "ngrams"

	// ModeCharacterNgrams emits sliding windows of characters, by
	// default confined to a single whitespace-delimited run.
	ModeCharacterNgrams Mode = "character_ngrams"

	// ModeRegex extracts every leftmost-longest match of a caller
	// pattern.
	ModeRegex Mode = "regex"
)

// Config is the immutable tokenization configuration, shared read-only
// across all documents of a batch.
type Config struct {
	// Mode selects the strategy; empty means ModeWords.
	Mode Mode `json:"mode" yaml:"mode"`

	// Lowercase lowercases token text.
	Lowercase bool `json:"lowercase" yaml:"lowercase"`

	// FoldDiacritics removes combining marks from token text before
	// lowercasing ("Wärme" matches "warme").
	FoldDiacritics bool `json:"fold_diacritics" yaml:"fold_diacritics"`

	// StripNonAlphanumeric removes every non-letter, non-digit code
	// point from token text.
	StripNonAlphanumeric bool `json:"strip_non_alphanumeric" yaml:"strip_non_alphanumeric"`

	// StripPunctuation removes punctuation code points from token
	// text. Subsumed by StripNonAlphanumeric when both are set.
	StripPunctuation bool `json:"strip_punctuation" yaml:"strip_punctuation"`

	// StripNumeric drops tokens that are purely numeric.
	StripNumeric bool `json:"strip_numeric" yaml:"strip_numeric"`

	// N and NMin bound the n-gram window widths, inclusive. Every
	// width from NMin through N is emitted. Both default to 3 when
	// unset; 1 <= NMin <= N must hold.
	N    int `json:"n" yaml:"n"`
	NMin int `json:"n_min" yaml:"n_min"`

	// Delimiter joins the members of a word n-gram; empty means a
	// single space. Character n-grams always concatenate.
	Delimiter string `json:"delimiter" yaml:"delimiter"`

	// Stopwords is an explicit stopword list, matched exactly against
	// the normalized token text.
	Stopwords []string `json:"stopwords" yaml:"stopwords"`

	// StopwordSource names an embedded lexicon ("snowball", "smart").
	// Merged with Stopwords; an unknown name is a config error.
	StopwordSource string `json:"stopword_source" yaml:"stopword_source"`

	// Extract switches ModeWords from boundary splitting to pattern
	// extraction (letters with optional interior hyphen/apostrophe, or
	// Pattern when set).
	Extract bool `json:"extract" yaml:"extract"`

	// Pattern overrides the extraction pattern. Required for
	// ModeRegex.
	Pattern string `json:"pattern" yaml:"pattern"`

	// SplitTransitions makes split mode cut at every category
	// transition instead of only at whitespace, so "fir-tree" becomes
	// three spans.
	SplitTransitions bool `json:"split_transitions" yaml:"split_transitions"`

	// JoinAlphanumeric keeps letters adjacent to digits unbroken in
	// the boundary rules ("3a" stays whole).
	JoinAlphanumeric bool `json:"join_alphanumeric" yaml:"join_alphanumeric"`

	// NumericSeparators lists runes that never break a digit sequence
	// when between digits, e.g. ".," for "3,456.789".
	NumericSeparators string `json:"numeric_separators" yaml:"numeric_separators"`

	// ContractionMarks lists join-mark runes (apostrophe variants)
	// that never break a letter run, e.g. "'’" keeps "isn't" whole
	// under SplitTransitions.
	ContractionMarks string `json:"contraction_marks" yaml:"contraction_marks"`

	// CrossWordWindows lets character windows span whitespace instead
	// of staying inside a single run.
	CrossWordWindows bool `json:"cross_word_windows" yaml:"cross_word_windows"`
}

// DefaultConfig returns a Config with sensible defaults: word tokens,
// lowercased, trigram widths for the n-gram modes.
func DefaultConfig() Config {
	return Config{
		Mode:      ModeWords,
		Lowercase: true,
		N:         3,
		NMin:      3,
		Delimiter: " ",
	}
}

// withDefaults fills unset fields without touching the caller's copy.
func (c Config) withDefaults() Config {
	if c.Mode == "" {
		c.Mode = ModeWords
	}
	if c.N == 0 && c.NMin == 0 {
		c.N, c.NMin = 3, 3
	} else if c.NMin == 0 {
		c.NMin = c.N
	}
	if c.Delimiter == "" {
		c.Delimiter = " "
	}
	return c
}

// Validate checks the option invariants. It runs on the defaulted
// config before any document is processed; a failure never yields a
// partial result. Mode names are resolved against the strategy
// registry, which has its own unknown-mode error.
func (c Config) Validate() error {
	if c.N < 1 || c.NMin < 1 {
		return fmt.Errorf("%w: window widths must be positive, got n=%d n_min=%d", ErrInvalidConfig, c.N, c.NMin)
	}
	if c.NMin > c.N {
		return fmt.Errorf("%w: n_min %d exceeds n %d", ErrInvalidConfig, c.NMin, c.N)
	}
	if c.Mode == ModeRegex && c.Pattern == "" {
		return fmt.Errorf("%w: mode %q requires a pattern", ErrInvalidConfig, ModeRegex)
	}
	return nil
}
