package ocr

import (
	"errors"
	"fmt"
)

// Common extraction errors
var (
	// ErrNotConfigured is returned when no Google Cloud credentials were
	// provided and the Vision client could not be created.
	ErrNotConfigured = errors.New("text extraction service is not configured")

	// ErrNoTextFound is returned when the image contains no readable text.
	ErrNoTextFound = errors.New("no text found in image")

	// ErrExtraction is returned when the Vision API call itself fails.
	ErrExtraction = errors.New("text extraction failed")
)

// Error wraps extraction failures with the failing operation and detail.
type Error struct {
	Op      string
	Err     error
	Details string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("ocr: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("ocr: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// wrapError wraps an error as an *Error unless it already is one.
func wrapError(op string, err error, details string) error {
	if err == nil {
		return nil
	}
	var ocrErr *Error
	if errors.As(err, &ocrErr) {
		return err
	}
	return &Error{Op: op, Err: err, Details: details}
}
