package tts

import (
	"context"
	"fmt"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"legalclarity/internal/logger"
)

// GoogleService implements Service using the Cloud Text-to-Speech API.
type GoogleService struct {
	client *texttospeech.Client
	log    zerolog.Logger
}

// NewGoogleService creates the Text-to-Speech-backed synthesis service.
func NewGoogleService(ctx context.Context, opts ...option.ClientOption) (*GoogleService, error) {
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, wrapError("NewGoogleService", ErrNotConfigured,
			fmt.Sprintf("failed to create Text-to-Speech client: %v", err))
	}
	return &GoogleService{
		client: client,
		log:    logger.WithComponent("tts"),
	}, nil
}

// Synthesize returns MP3 audio for text in the voice mapped from lang.
func (s *GoogleService) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	const op = "Synthesize"

	if strings.TrimSpace(text) == "" {
		return nil, wrapError(op, ErrEmptyText, "")
	}

	languageCode, voiceName := voiceFor(lang)

	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: languageCode,
			Name:         voiceName,
			SsmlGender:   texttospeechpb.SsmlVoiceGender_NEUTRAL,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			SpeakingRate:  SpeakingRate,
		},
	}

	resp, err := s.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, wrapError(op, ErrSynthesis,
			fmt.Sprintf("Text-to-Speech API call failed: %v", err))
	}

	s.log.Debug().
		Str("voice", voiceName).
		Int("audio_bytes", len(resp.AudioContent)).
		Msg("synthesized speech")

	return resp.AudioContent, nil
}

// Close closes the underlying Text-to-Speech client.
func (s *GoogleService) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
