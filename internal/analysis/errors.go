package analysis

import (
	"errors"
	"fmt"
)

// Common analysis errors
var (
	// ErrNotConfigured is returned when no generative model backend was
	// configured at startup.
	ErrNotConfigured = errors.New("generative model is not configured")

	// ErrDocumentTooShort is returned for input below the minimum length.
	ErrDocumentTooShort = errors.New("document text is too short for analysis")

	// ErrInvalidResponse is returned when the model output is not the
	// expected JSON shape.
	ErrInvalidResponse = errors.New("invalid response from generative model")

	// ErrAnalysis is returned for upstream model failures.
	ErrAnalysis = errors.New("analysis failed")
)

// Error wraps analysis failures with the failing operation and detail.
// Details carries a message already localized to the requesting session's
// language where one applies.
type Error struct {
	Op      string
	Err     error
	Details string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("analysis: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("analysis: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

func wrapError(op string, err error, details string) error {
	if err == nil {
		return nil
	}
	var aErr *Error
	if errors.As(err, &aErr) {
		return err
	}
	return &Error{Op: op, Err: err, Details: details}
}
