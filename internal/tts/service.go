// Package tts wraps Google Cloud Text-to-Speech behind a synthesis
// interface. The voice is fixed per language and speech is slightly slowed
// for comprehension.
package tts

import (
	"context"

	"legalclarity/internal/i18n"
)

// SpeakingRate is slightly below normal speed for better comprehension.
const SpeakingRate = 0.9

// Service defines the speech synthesis contract.
type Service interface {
	// Synthesize returns MP3 audio of text spoken in the voice mapped
	// from lang.
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}

// voiceFor resolves the synthesis language code and voice name for a
// session language, falling back to English.
func voiceFor(lang string) (languageCode, voiceName string) {
	l, ok := i18n.Languages[lang]
	if !ok {
		l = i18n.Languages[i18n.Default]
	}
	return l.TTSCode, l.TTSVoice
}

// Unavailable is the Service used when no credentials are configured.
type Unavailable struct{}

// Synthesize implements Service.
func (Unavailable) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	return nil, wrapError("Synthesize", ErrNotConfigured, "")
}
