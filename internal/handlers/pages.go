package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"legalclarity/internal/analysis"
	"legalclarity/internal/logger"
	"legalclarity/internal/middleware"
	"legalclarity/internal/services"
)

// PageHandler serves the landing page, dashboard and analysis view.
type PageHandler struct {
	DB       *gorm.DB
	Sessions *session.Store
}

// Landing renders the public home page.
func (h *PageHandler) Landing(c *fiber.Ctx) error {
	sess, err := h.Sessions.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}
	return renderPage(c, sess, "index", nil)
}

// Dashboard lists the authenticated user's documents, newest first.
func (h *PageHandler) Dashboard(c *fiber.Ctx) error {
	sess, err := h.Sessions.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}

	user := middleware.CurrentUser(c)
	docs, err := services.ListDocumentsByUser(h.DB, user.ID)
	if err != nil {
		log := logger.WithComponent("handlers")
		log.Error().Err(err).Msg("failed to list documents")
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load documents")
	}

	return renderPage(c, sess, "dashboard", fiber.Map{
		"Documents": docs,
	})
}

// ViewAnalysis renders a stored analysis. A document that does not exist
// or belongs to another user sends the caller back to the dashboard with
// the same flash either way.
func (h *PageHandler) ViewAnalysis(c *fiber.Ctx) error {
	sess, err := h.Sessions.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}

	docID, err := c.ParamsInt("id")
	if err != nil || docID < 1 {
		return flashAndRedirect(c, sess, "flash_document_missing", "/dashboard")
	}

	user := middleware.CurrentUser(c)
	doc, err := services.GetDocumentForUser(h.DB, uint64(docID), user.ID)
	if err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			return flashAndRedirect(c, sess, "flash_document_missing", "/dashboard")
		}
		log := logger.WithComponent("handlers")
		log.Error().Err(err).Msg("failed to load document")
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load document")
	}

	var result analysis.Result
	if err := json.Unmarshal(doc.AnalysisJSON, &result); err != nil {
		log := logger.WithComponent("handlers")
		log.Error().
			Err(err).
			Uint64("document_id", doc.ID).
			Msg("stored analysis is unreadable")
		return flashAndRedirect(c, sess, "flash_document_missing", "/dashboard")
	}

	return renderPage(c, sess, "results", fiber.Map{
		"Document": doc,
		"Analysis": result,
	})
}
