package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalclarity/internal/models"
)

// stubGenerator returns a canned response or error.
type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (g *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

const longText = "This agreement is binding between the parties named herein."

func TestAnalyze(t *testing.T) {
	gen := &stubGenerator{response: `{
		"title": "Service Agreement",
		"summary": "A simple summary.",
		"annotations": [
			{"text_to_highlight": "binding", "explanation": "You cannot back out easily."}
		]
	}`}
	svc := NewServiceWithGenerator(gen)

	result, err := svc.Analyze(context.Background(), longText, "en")
	require.NoError(t, err)

	assert.Equal(t, "Service Agreement", result.Title)
	assert.Equal(t, "A simple summary.", result.Summary)
	assert.Equal(t, longText, result.OriginalText, "original text comes from the submission, not the model")
	require.Len(t, result.Annotations, 1)
	assert.Equal(t, "binding", result.Annotations[0].TextToHighlight)
}

func TestAnalyze_StripsCodeFence(t *testing.T) {
	gen := &stubGenerator{response: "```json\n{\"title\":\"T\",\"summary\":\"S\",\"annotations\":[]}\n```"}
	svc := NewServiceWithGenerator(gen)

	result, err := svc.Analyze(context.Background(), longText, "en")
	require.NoError(t, err)
	assert.Equal(t, "S", result.Summary)
}

func TestAnalyze_DefaultTitle(t *testing.T) {
	gen := &stubGenerator{response: `{"summary":"S","annotations":[]}`}
	svc := NewServiceWithGenerator(gen)

	result, err := svc.Analyze(context.Background(), longText, "en")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultDocumentTitle, result.Title)
}

func TestAnalyze_TooShort(t *testing.T) {
	svc := NewServiceWithGenerator(&stubGenerator{})

	for _, text := range []string{"", "   ", "short"} {
		_, err := svc.Analyze(context.Background(), text, "en")
		assert.ErrorIs(t, err, ErrDocumentTooShort, "text %q", text)
	}
}

func TestAnalyze_TooShortSkipsModelCall(t *testing.T) {
	gen := &stubGenerator{}
	svc := NewServiceWithGenerator(gen)

	_, err := svc.Analyze(context.Background(), "short", "en")
	require.ErrorIs(t, err, ErrDocumentTooShort)
	assert.Empty(t, gen.prompts, "the model must not be called for short documents")
}

func TestAnalyze_InvalidJSON(t *testing.T) {
	gen := &stubGenerator{response: "I am sorry, I cannot analyze that document."}
	svc := NewServiceWithGenerator(gen)

	_, err := svc.Analyze(context.Background(), longText, "en")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestAnalyze_MissingSummary(t *testing.T) {
	gen := &stubGenerator{response: `{"title":"T","annotations":[]}`}
	svc := NewServiceWithGenerator(gen)

	_, err := svc.Analyze(context.Background(), longText, "en")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestAnalyze_MissingAnnotations(t *testing.T) {
	gen := &stubGenerator{response: `{"title":"T","summary":"S"}`}
	svc := NewServiceWithGenerator(gen)

	_, err := svc.Analyze(context.Background(), longText, "en")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestAnalyze_NullAnnotationsBecomesEmptySlice(t *testing.T) {
	gen := &stubGenerator{response: `{"title":"T","summary":"S","annotations":null}`}
	svc := NewServiceWithGenerator(gen)

	result, err := svc.Analyze(context.Background(), longText, "en")
	require.NoError(t, err)
	assert.NotNil(t, result.Annotations)
	assert.Empty(t, result.Annotations)
}

func TestAnalyze_GeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exhausted")}
	svc := NewServiceWithGenerator(gen)

	_, err := svc.Analyze(context.Background(), longText, "en")
	assert.ErrorIs(t, err, ErrAnalysis)
}

func TestAnalyze_UnsupportedLanguageFallsBack(t *testing.T) {
	gen := &stubGenerator{response: `{"title":"T","summary":"S","annotations":[]}`}
	svc := NewServiceWithGenerator(gen)

	_, err := svc.Analyze(context.Background(), longText, "fr")
	require.NoError(t, err)
	require.Len(t, gen.prompts, 1)
	assert.Equal(t, buildPrompt("en", longText), gen.prompts[0])
}

func TestAnalyze_HindiPrompt(t *testing.T) {
	gen := &stubGenerator{response: `{"title":"T","summary":"S","annotations":[]}`}
	svc := NewServiceWithGenerator(gen)

	_, err := svc.Analyze(context.Background(), longText, "hi")
	require.NoError(t, err)
	require.Len(t, gen.prompts, 1)
	assert.Equal(t, buildPrompt("hi", longText), gen.prompts[0])
	assert.NotEqual(t, buildPrompt("en", longText), gen.prompts[0])
}

func TestUnavailable(t *testing.T) {
	_, err := Unavailable{}.Analyze(context.Background(), longText, "en")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, stripCodeFence(tc.in), "input %q", tc.in)
	}
}
