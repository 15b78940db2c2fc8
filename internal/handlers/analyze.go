package handlers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"legalclarity/internal/analysis"
	"legalclarity/internal/i18n"
	"legalclarity/internal/logger"
	"legalclarity/internal/middleware"
	"legalclarity/internal/ocr"
	"legalclarity/internal/services"
	"legalclarity/internal/utils"
)

// AnalyzeHandler serves the two document-analysis endpoints.
type AnalyzeHandler struct {
	DB        *gorm.DB
	Sessions  *session.Store
	Analyzer  analysis.Service
	Extractor ocr.Service
	UploadDir string
}

type analyzeRequest struct {
	Text string `json:"text"`
}

// Analyze handles POST /analyze: pasted text as JSON.
func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	sess, err := h.Sessions.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}
	lang := middleware.SessionLanguage(sess)

	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		return utils.JSONError(c, fiber.StatusBadRequest, i18n.T(lang, "error_no_text"))
	}

	return h.analyzeAndStore(c, lang, req.Text)
}

// AnalyzeDocument handles POST /analyze-document: a multipart image upload
// or a plain text form field.
func (h *AnalyzeHandler) AnalyzeDocument(c *fiber.Ctx) error {
	sess, err := h.Sessions.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}
	lang := middleware.SessionLanguage(sess)

	var text string

	file, ferr := c.FormFile("document")
	switch {
	case ferr == nil && file != nil && file.Filename != "":
		// Extension gate runs before any bytes are read or sent upstream.
		if !ocr.AllowedFile(file.Filename) {
			return utils.JSONError(c, fiber.StatusBadRequest, i18n.T(lang, "error_unsupported_file"))
		}

		text, err = h.extractFromUpload(c, file)
		if err != nil {
			log := logger.WithComponent("handlers")
			switch {
			case errors.Is(err, ocr.ErrNotConfigured):
				return utils.JSONError(c, fiber.StatusServiceUnavailable, i18n.T(lang, "error_ocr_unavailable"))
			case errors.Is(err, ocr.ErrNoTextFound):
				return utils.JSONError(c, fiber.StatusBadRequest, i18n.T(lang, "error_no_text_found"))
			default:
				log.Error().Err(err).Msg("image extraction failed")
				return utils.JSONError(c, fiber.StatusInternalServerError, i18n.T(lang, "error_extraction_failed"))
			}
		}

	case strings.TrimSpace(c.FormValue("text")) != "":
		text = strings.TrimSpace(c.FormValue("text"))

	default:
		return utils.JSONError(c, fiber.StatusBadRequest, i18n.T(lang, "error_no_input"))
	}

	return h.analyzeAndStore(c, lang, text)
}

// analyzeAndStore runs the analysis adapter and persists the result. A
// failed analysis persists nothing; a failed save after a successful
// analysis reports a save error without retry.
func (h *AnalyzeHandler) analyzeAndStore(c *fiber.Ctx, lang, text string) error {
	user := middleware.CurrentUser(c)
	log := logger.WithUserID(user.ID)

	result, err := h.Analyzer.Analyze(c.UserContext(), text, lang)
	if err != nil {
		if errors.Is(err, analysis.ErrDocumentTooShort) {
			return utils.JSONError(c, fiber.StatusBadRequest, i18n.T(lang, "error_too_short"))
		}
		log.Error().Err(err).Msg("analysis failed")
		return utils.JSONError(c, fiber.StatusInternalServerError, i18n.T(lang, "error_analysis_failed"))
	}

	payload, err := json.Marshal(result)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode analysis payload")
		return utils.JSONError(c, fiber.StatusInternalServerError, i18n.T(lang, "error_save_failed"))
	}

	doc, err := services.CreateDocument(h.DB, user.ID, result.Title, result.OriginalText, payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to save document")
		return utils.JSONError(c, fiber.StatusInternalServerError, i18n.T(lang, "error_save_failed"))
	}

	log.Info().
		Uint64("document_id", doc.ID).
		Msg("document analyzed and saved")

	return utils.DocumentCreated(c, doc.ID)
}

// extractFromUpload stages the upload under the configured scratch
// directory, runs OCR over it and removes the staged file on all paths.
func (h *AnalyzeHandler) extractFromUpload(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	staged := filepath.Join(h.UploadDir, uuid.NewString()+strings.ToLower(filepath.Ext(file.Filename)))
	if err := c.SaveFile(file, staged); err != nil {
		return "", err
	}
	defer os.Remove(staged)

	f, err := os.Open(staged)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return h.Extractor.ExtractImage(c.UserContext(), f)
}
