// Package ocr wraps Google Cloud Vision text detection behind a small
// extraction interface. Only still images are accepted; callers validate
// the file extension with AllowedFile before reading any bytes.
package ocr

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

// Service defines the text extraction contract.
type Service interface {
	// ExtractImage returns the plain text detected in the image.
	// An image with no detectable text is an error (ErrNoTextFound),
	// never an empty success.
	ExtractImage(ctx context.Context, image io.Reader) (string, error)
}

// allowedExtensions are the accepted upload extensions, lower case.
var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
}

// AllowedFile reports whether filename has an accepted image extension.
func AllowedFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := allowedExtensions[ext]
	return ok
}

// Unavailable is the Service used when no credentials are configured.
// Every call fails with ErrNotConfigured.
type Unavailable struct{}

// ExtractImage implements Service.
func (Unavailable) ExtractImage(ctx context.Context, image io.Reader) (string, error) {
	return "", wrapError("ExtractImage", ErrNotConfigured, "")
}
