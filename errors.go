package smltar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig marks configuration rejected before any document
	// is processed.
	ErrInvalidConfig = errors.New("smltar: invalid config")

	// ErrMalformedInput marks a document that is not a valid code-point
	// sequence.
	ErrMalformedInput = errors.New("smltar: malformed input")
)

// InputError reports a malformed document with enough context to find
// it: the document's batch index and the byte offset of the first
// invalid sequence.
type InputError struct {
	Doc    int
	Offset int
}

func (e *InputError) Error() string {
	return fmt.Sprintf("smltar: malformed input in document %d at byte %d", e.Doc, e.Offset)
}

func (e *InputError) Unwrap() error { return ErrMalformedInput }
