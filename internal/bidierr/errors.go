// Package bidierr defines the error taxonomy shared by the bidi algorithm,
// its conformance-test runner, and the cmd/bidi CLI. It follows the same
// closed-Kind-plus-struct shape the rest of this codebase uses for
// application errors, so every layer reports failures the same way.
package bidierr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies why a BidiError was raised.
type Kind string

const (
	// KindMismatch covers Run.append rejecting an extension because the two
	// runs disagree on type, level, or children -- always caught at a
	// compaction site and turned into "start a new run", never surfaced to
	// a caller.
	KindMismatch Kind = "Mismatch"
	// KindUnknownType covers an input token that is not one of the closed
	// set of bidirectional type codes.
	KindUnknownType Kind = "UnknownType"
	// KindInternal covers an invariant violation: a bug in this package,
	// not a malformed caller input.
	KindInternal Kind = "Internal"
	// KindConformance covers a conformance run with failing cases, a
	// malformed corpus line, and the cmd/bidi usage errors (missing
	// arguments, conflicting flags, an unknown report format).
	KindConformance Kind = "Conformance"
)

// MismatchAttr names which Run attribute disagreed, for KindMismatch errors.
type MismatchAttr string

const (
	AttrType     MismatchAttr = "type"
	AttrLevel    MismatchAttr = "level"
	AttrChildren MismatchAttr = "children"
)

// BidiError is the error type returned across package boundaries in this
// module. Position is -1 when not applicable.
type BidiError struct {
	Kind     Kind
	Message  string
	Position int
	Attr     MismatchAttr
}

func (e *BidiError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s: %s (at position %d)", e.Kind, e.Message, e.Position)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewMismatch builds a KindMismatch error for the given disagreeing attribute.
func NewMismatch(attr MismatchAttr) *BidiError {
	return &BidiError{
		Kind:     KindMismatch,
		Message:  fmt.Sprintf("runs disagree on %s", attr),
		Position: -1,
		Attr:     attr,
	}
}

// NewUnknownType builds a KindUnknownType error, wrapped with a stack trace
// via github.com/pkg/errors (printable with the %+v verb). The cmd/bidi CLI
// prints only the error message, not the stack trace.
func NewUnknownType(token string, position int) error {
	return errors.WithStack(&BidiError{
		Kind:     KindUnknownType,
		Message:  fmt.Sprintf("unknown bidirectional type code %q", token),
		Position: position,
	})
}

// NewInternal builds a KindInternal error describing a broken invariant.
func NewInternal(message string) error {
	return errors.WithStack(&BidiError{
		Kind:     KindInternal,
		Message:  message,
		Position: -1,
	})
}

// NewConformance builds a KindConformance error describing a failed test case.
func NewConformance(message string) *BidiError {
	return &BidiError{
		Kind:     KindConformance,
		Message:  message,
		Position: -1,
	}
}

// NewConformanceAt builds a KindConformance error naming the corpus file and
// line a parse or assertion failure occurred at.
func NewConformanceAt(file string, line int, message string) *BidiError {
	return &BidiError{
		Kind:     KindConformance,
		Message:  fmt.Sprintf("%s:%d: %s", file, line, message),
		Position: -1,
	}
}

// IsMismatch reports whether err is (or wraps) a KindMismatch BidiError.
func IsMismatch(err error) bool {
	var be *BidiError
	if errors.As(err, &be) {
		return be.Kind == KindMismatch
	}
	return false
}
