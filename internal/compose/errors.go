package compose

import (
	"errors"
	"fmt"
)

// Kind classifies a failure of a reorder run
type Kind int

const (
	// KindComposition is an unexpected failure while mapping or drawing
	KindComposition Kind = iota
	// KindPdfRead means the source is missing, corrupt or unreadable
	KindPdfRead
	// KindPdfWrite means the output could not be created or written
	KindPdfWrite
)

func (k Kind) String() string {
	switch k {
	case KindPdfRead:
		return "pdf read failure"
	case KindPdfWrite:
		return "pdf write failure"
	default:
		return "composition failure"
	}
}

// Sentinels for errors.Is matching against any *Error of the same kind
var (
	ErrPdfRead     = &Error{Kind: KindPdfRead}
	ErrPdfWrite    = &Error{Kind: KindPdfWrite}
	ErrComposition = &Error{Kind: KindComposition}
)

// Error is the failure type returned by every stage of a run
type Error struct {
	Kind Kind
	// Op names the operation that failed, e.g. "open" or "draw"
	Op string
	// Path is the file involved, if any
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a sentinel of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Path == "" && t.Err == nil && t.Kind == e.Kind
}

// ReadFailure wraps err as a KindPdfRead error
func ReadFailure(op, path string, err error) error {
	return &Error{Kind: KindPdfRead, Op: op, Path: path, Err: err}
}

// WriteFailure wraps err as a KindPdfWrite error
func WriteFailure(op, path string, err error) error {
	return &Error{Kind: KindPdfWrite, Op: op, Path: path, Err: err}
}

// CompositionFailure wraps err as a KindComposition error
func CompositionFailure(op string, err error) error {
	return &Error{Kind: KindComposition, Op: op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
// Errors outside the taxonomy count as composition failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindComposition
}

// classify keeps taxonomy errors from the backend as they are and wraps
// everything else as a composition failure.
func classify(op string, page, slot int, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return CompositionFailure(op, fmt.Errorf("page %d slot %d: %w", page, slot, err))
}
