// Package runeclass classifies code points into the categories the
// boundary rules operate on.
package runeclass

import "unicode"

// Category is the class assigned to a single code point.
type Category uint8

const (
	// Other covers every code point no more specific category claims.
	Other Category = iota
	Letter
	Digit
	Whitespace
	Punct
	Mark
	// JoinMark is reported only by classifiers carrying an explicit
	// join-mark set (word-with-contractions mode).
	JoinMark
)

// String returns the category name for diagnostics.
func (c Category) String() string {
	switch c {
	case Letter:
		return "letter"
	case Digit:
		return "digit"
	case Whitespace:
		return "whitespace"
	case Punct:
		return "punct"
	case Mark:
		return "mark"
	case JoinMark:
		return "joinmark"
	default:
		return "other"
	}
}

// Classifier maps code points to categories. The ASCII range is served
// from a table built once at construction; everything else falls back to
// the unicode package. A Classifier is immutable after New and safe for
// concurrent use.
type Classifier struct {
	ascii     [128]Category
	joinMarks map[rune]struct{}
}

// New builds a Classifier. Any joinMarks runes (typically apostrophe
// variants) classify as JoinMark instead of their base category, letting
// the boundary scanner keep contractions whole.
func New(joinMarks ...rune) *Classifier {
	c := &Classifier{}
	if len(joinMarks) > 0 {
		c.joinMarks = make(map[rune]struct{}, len(joinMarks))
		for _, r := range joinMarks {
			c.joinMarks[r] = struct{}{}
		}
	}
	for r := rune(0); r < 128; r++ {
		c.ascii[r] = c.classifySlow(r)
	}
	return c
}

var defaultClassifier = New()

// Default returns the shared classifier with no join marks.
func Default() *Classifier { return defaultClassifier }

// Classify returns the category of r. Total over all valid code points;
// anything unrecognized is Other.
func (c *Classifier) Classify(r rune) Category {
	if r >= 0 && r < 128 {
		return c.ascii[r]
	}
	return c.classifySlow(r)
}

func (c *Classifier) classifySlow(r rune) Category {
	if _, ok := c.joinMarks[r]; ok {
		return JoinMark
	}
	switch {
	case unicode.IsLetter(r):
		return Letter
	case unicode.IsDigit(r):
		return Digit
	case unicode.IsSpace(r):
		return Whitespace
	case unicode.IsPunct(r):
		return Punct
	case unicode.IsMark(r):
		return Mark
	default:
		return Other
	}
}

// IsNewline reports whether r terminates a line. CR and LF are the
// common cases; NEL and the Unicode separator pair are included so that
// newline runs match what the boundary rules expect.
func IsNewline(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '', ' ', ' ':
		return true
	}
	return false
}
