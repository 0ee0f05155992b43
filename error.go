package slidedoc

import (
	"errors"
	"fmt"
	"strings"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"

	// ESOURCENOTFOUND means a configured source file does not exist.
	ESOURCENOTFOUND = "source_not_found"

	// ECONVERTER means a document converter returned non-success or
	// produced no output.
	ECONVERTER = "converter_failed"

	// ENOTITLESLIDE means no slide container carries the title-slide class.
	ENOTITLESLIDE = "title_slide_not_found"

	// EFENCE means a document ended inside an open code fence.
	// It is reported as a warning; the document is still produced.
	EFENCE = "malformed_fence_sequence"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("slidedoc error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}

// Failure records a single document that could not be produced.
type Failure struct {
	Spec *DocumentSpec
	Err  error
}

// BatchError aggregates the failures of a batch run. The batch keeps going
// past a failing document, so every failure is reported together.
type BatchError struct {
	Failures []*Failure
}

// Error implements the error interface.
func (e *BatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d document(s) failed", len(e.Failures))
	for _, f := range e.Failures {
		b.WriteString("\n  ")
		b.WriteString(f.Spec.Source)
		b.WriteString(": ")
		b.WriteString(f.Err.Error())
	}
	return b.String()
}

// Unwrap returns the individual failure errors so errors.Is and errors.As
// see through the batch.
func (e *BatchError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}
	return errs
}
