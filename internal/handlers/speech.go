package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"legalclarity/internal/i18n"
	"legalclarity/internal/logger"
	"legalclarity/internal/middleware"
	"legalclarity/internal/tts"
	"legalclarity/internal/utils"
)

// SpeechHandler serves POST /text-to-speech.
type SpeechHandler struct {
	Sessions    *session.Store
	Synthesizer tts.Service
}

type speechRequest struct {
	Text string `json:"text"`
}

// TextToSpeech synthesizes the submitted text in the session language and
// streams the MP3 back.
func (h *SpeechHandler) TextToSpeech(c *fiber.Ctx) error {
	sess, err := h.Sessions.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}
	lang := middleware.SessionLanguage(sess)

	var req speechRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, i18n.T(lang, "error_no_text"))
	}

	audio, err := h.Synthesizer.Synthesize(c.UserContext(), req.Text, lang)
	if err != nil {
		switch {
		case errors.Is(err, tts.ErrNotConfigured):
			return utils.JSONError(c, fiber.StatusServiceUnavailable, i18n.T(lang, "error_tts_unavailable"))
		case errors.Is(err, tts.ErrEmptyText):
			return utils.JSONError(c, fiber.StatusBadRequest, i18n.T(lang, "error_no_text"))
		default:
			log := logger.WithComponent("handlers")
			log.Error().Err(err).Msg("speech synthesis failed")
			return utils.JSONError(c, fiber.StatusInternalServerError, i18n.T(lang, "error_tts_failed"))
		}
	}

	c.Set(fiber.HeaderContentType, "audio/mpeg")
	return c.Send(audio)
}
