package ocr

import (
	"context"
	"fmt"
	"io"
	"strings"

	vision "cloud.google.com/go/vision/apiv1"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"legalclarity/internal/logger"
)

// GoogleVisionService implements Service using the Cloud Vision API.
type GoogleVisionService struct {
	client *vision.ImageAnnotatorClient
	log    zerolog.Logger
}

// NewGoogleVisionService creates the Vision-backed extraction service.
func NewGoogleVisionService(ctx context.Context, opts ...option.ClientOption) (*GoogleVisionService, error) {
	client, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, wrapError("NewGoogleVisionService", ErrNotConfigured,
			fmt.Sprintf("failed to create Vision client: %v", err))
	}
	return &GoogleVisionService{
		client: client,
		log:    logger.WithComponent("ocr"),
	}, nil
}

// ExtractImage runs text detection over the image bytes and returns the
// full detected text.
func (s *GoogleVisionService) ExtractImage(ctx context.Context, image io.Reader) (string, error) {
	const op = "ExtractImage"

	img, err := vision.NewImageFromReader(image)
	if err != nil {
		return "", wrapError(op, ErrExtraction, fmt.Sprintf("failed to read image: %v", err))
	}

	annotations, err := s.client.DetectTexts(ctx, img, nil, 10)
	if err != nil {
		return "", wrapError(op, ErrExtraction, fmt.Sprintf("Vision API call failed: %v", err))
	}
	if len(annotations) == 0 {
		return "", wrapError(op, ErrNoTextFound, "")
	}

	// The first annotation is the full text of the image.
	text := annotations[0].GetDescription()
	if strings.TrimSpace(text) == "" {
		return "", wrapError(op, ErrNoTextFound, "")
	}

	s.log.Debug().
		Int("text_length", len(text)).
		Msg("extracted text from image")

	return text, nil
}

// Close closes the underlying Vision client.
func (s *GoogleVisionService) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
