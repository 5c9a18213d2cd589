// Package errors provides structured error handling for tree pickers.
//
// The selection core never fails on its hot paths: an unresolvable selection
// degrades to "not found". Pickers built with Debug enabled report those
// anomalies here so they can be spotted during development. Construction
// problems (an unsupported policy, a nil binding) are returned as *PickerError.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindUnresolved indicates a selection value that matches no node.
	KindUnresolved
	// KindDepth indicates a traversal cut short by the depth bound.
	KindDepth
	// KindConfig indicates an invalid picker configuration.
	KindConfig
	// KindParsing indicates a tree document or config parsing failure.
	KindParsing
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnresolved:
		return "unresolved"
	case KindDepth:
		return "depth"
	case KindConfig:
		return "config"
	case KindParsing:
		return "parsing"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

var (
	// ErrUnresolved is reported when a selection value matches no node.
	ErrUnresolved = errors.New("selection does not match any node")
	// ErrDepthExceeded is reported when a walk stops at the depth bound.
	ErrDepthExceeded = errors.New("tree exceeds maximum depth")
	// ErrCascadeUnsupported is returned when a single-value picker is given
	// the cascading policy.
	ErrCascadeUnsupported = errors.New("cascading policy requires a multi-selection picker")
	// ErrInvalidPolicy is returned for a policy value outside the enum.
	ErrInvalidPolicy = errors.New("invalid selection policy")
	// ErrNilBinding is returned when a picker is built without a binding.
	ErrNilBinding = errors.New("selection binding is nil")
)

// PickerError represents a structured error raised by a picker.
type PickerError struct {
	// Op is the operation that failed (e.g., "picker.NewSingle").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Value is the offending selection value, if applicable.
	Value any
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *PickerError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s [%s] value=%v: %v", e.Op, e.Kind, e.Value, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *PickerError) Unwrap() error {
	return e.Err
}

// New returns a PickerError for op wrapping err.
func New(op string, kind ErrorKind, err error) *PickerError {
	return &PickerError{Op: op, Kind: kind, Err: err}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "picker.Toggle").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a failure to parse a tree document.
type ParseError struct {
	// Source is the file or stream being parsed.
	Source string
	// Line is the 1-based line of the offending node, or 0 if unknown.
	Line int
	// Msg describes the problem.
	Msg string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Msg)
}

// ErrorHandler receives errors reported by pickers.
type ErrorHandler interface {
	// HandleError is called when an anomaly is reported.
	HandleError(err *PickerError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
