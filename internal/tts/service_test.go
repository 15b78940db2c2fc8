package tts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnavailable(t *testing.T) {
	_, err := Unavailable{}.Synthesize(context.Background(), "read this aloud", "en")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSynthesize_EmptyText(t *testing.T) {
	// The empty-text check runs before the client is touched.
	svc := &GoogleService{}

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.Synthesize(context.Background(), text, "en")
		assert.ErrorIs(t, err, ErrEmptyText, "text %q", text)
	}
}

func TestVoiceFor(t *testing.T) {
	cases := []struct {
		lang      string
		wantCode  string
		wantVoice string
	}{
		{"en", "en-US", "en-US-Neural2-C"},
		{"hi", "hi-IN", "hi-IN-Neural2-A"},
		{"fr", "en-US", "en-US-Neural2-C"},
		{"", "en-US", "en-US-Neural2-C"},
	}
	for _, tc := range cases {
		code, voice := voiceFor(tc.lang)
		assert.Equal(t, tc.wantCode, code, "lang %q", tc.lang)
		assert.Equal(t, tc.wantVoice, voice, "lang %q", tc.lang)
	}
}
