package ocr

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedFile(t *testing.T) {
	cases := []struct {
		filename string
		want     bool
	}{
		{"contract.png", true},
		{"contract.jpg", true},
		{"contract.jpeg", true},
		{"CONTRACT.PNG", true},
		{"scan.JPeG", true},
		{"contract.gif", false},
		{"contract.pdf", false},
		{"contract.png.exe", false},
		{"contract", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, AllowedFile(tc.filename), "filename %q", tc.filename)
	}
}

func TestUnavailable(t *testing.T) {
	_, err := Unavailable{}.ExtractImage(context.Background(), strings.NewReader("fake image"))
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestErrorWrapping(t *testing.T) {
	err := wrapError("ExtractImage", ErrNoTextFound, "annotation list was empty")

	assert.ErrorIs(t, err, ErrNoTextFound)
	assert.Contains(t, err.Error(), "ExtractImage")
	assert.Contains(t, err.Error(), "annotation list was empty")
}
