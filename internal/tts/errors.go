package tts

import (
	"errors"
	"fmt"
)

// Common synthesis errors
var (
	// ErrNotConfigured is returned when no Google Cloud credentials were
	// provided and the Text-to-Speech client could not be created.
	ErrNotConfigured = errors.New("text-to-speech service is not configured")

	// ErrEmptyText is returned when there is nothing to synthesize.
	ErrEmptyText = errors.New("no text provided")

	// ErrSynthesis is returned when the Text-to-Speech API call fails.
	ErrSynthesis = errors.New("speech synthesis failed")
)

// Error wraps synthesis failures with the failing operation and detail.
type Error struct {
	Op      string
	Err     error
	Details string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("tts: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("tts: %s failed: %v", e.Op, e.Err)
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
	var tErr *Error
	if errors.As(err, &tErr) {
		return err
	}
	return &Error{Op: op, Err: err, Details: details}
}
