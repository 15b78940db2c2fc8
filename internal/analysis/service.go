// Package analysis wraps the generative model call that turns raw document
// text into a structured plain-language analysis. One attempt per request,
// no retries.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"legalclarity/internal/i18n"
	"legalclarity/internal/logger"
	"legalclarity/internal/models"
)

// MinDocumentLength is the minimum number of significant characters a
// document must have to be analyzed.
const MinDocumentLength = 10

// Annotation is one highlighted clause with its explanation.
type Annotation struct {
	TextToHighlight string `json:"text_to_highlight"`
	Explanation     string `json:"explanation"`
}

// Result is the structured analysis stored verbatim with the document.
type Result struct {
	Title        string       `json:"title"`
	Summary      string       `json:"summary"`
	OriginalText string       `json:"original_text"`
	Annotations  []Annotation `json:"annotations"`
}

// Service defines the analysis contract.
type Service interface {
	// Analyze produces a structured analysis of text, with the title,
	// summary and explanations written in lang.
	Analyze(ctx context.Context, text, lang string) (*Result, error)
}

// Generator abstracts the single prompt-in, text-out model call so the
// parsing pipeline can be exercised without network access.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ModelService implements Service on top of a Generator.
type ModelService struct {
	gen Generator
	log zerolog.Logger
}

// NewServiceWithGenerator wires an explicit Generator.
func NewServiceWithGenerator(gen Generator) *ModelService {
	return &ModelService{
		gen: gen,
		log: logger.WithComponent("analysis"),
	}
}

// Analyze implements Service.
func (s *ModelService) Analyze(ctx context.Context, text, lang string) (*Result, error) {
	const op = "Analyze"

	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < MinDocumentLength {
		return nil, wrapError(op, ErrDocumentTooShort, "")
	}
	if !i18n.Supported(lang) {
		lang = i18n.Default
	}

	s.log.Info().
		Str("lang", lang).
		Int("text_length", len(trimmed)).
		Msg("analyzing document")

	raw, err := s.gen.GenerateText(ctx, buildPrompt(lang, trimmed))
	if err != nil {
		return nil, wrapError(op, ErrAnalysis,
			fmt.Sprintf("%s: %v", i18n.T(lang, "error_analysis_failed"), err))
	}

	result, err := parseResult(raw)
	if err != nil {
		s.log.Warn().
			Err(err).
			Str("response", truncate(raw, 500)).
			Msg("model returned unusable response")
		return nil, wrapError(op, ErrInvalidResponse, err.Error())
	}

	// The stored original text is always the submitted text, whatever the
	// model echoed back.
	result.OriginalText = trimmed
	if strings.TrimSpace(result.Title) == "" {
		result.Title = models.DefaultDocumentTitle
	}

	s.log.Info().
		Str("title", result.Title).
		Int("annotations", len(result.Annotations)).
		Msg("analysis complete")

	return result, nil
}

// parseResult strips optional code fences, parses the JSON and validates
// the expected shape: a non-empty summary and an annotations array. A
// missing title is tolerated (it has a defined default).
func parseResult(raw string) (*Result, error) {
	cleaned := stripCodeFence(raw)

	var shape map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &shape); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	var result Result
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("response does not match the expected shape: %w", err)
	}

	if strings.TrimSpace(result.Summary) == "" {
		return nil, fmt.Errorf("response is missing a summary")
	}
	if _, ok := shape["annotations"]; !ok {
		return nil, fmt.Errorf("response is missing the annotations array")
	}
	if result.Annotations == nil {
		result.Annotations = []Annotation{}
	}

	return &result, nil
}

// stripCodeFence removes a leading ```json / ``` fence pair if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// Unavailable is the Service used when no model backend is configured.
type Unavailable struct{}

// Analyze implements Service.
func (Unavailable) Analyze(ctx context.Context, text, lang string) (*Result, error) {
	return nil, wrapError("Analyze", ErrNotConfigured, "")
}
