package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"legalclarity/internal/i18n"
	"legalclarity/internal/logger"
	"legalclarity/internal/middleware"
	"legalclarity/internal/services"
)

// AuthHandler serves registration, login, logout and the language switcher.
type AuthHandler struct {
	DB       *gorm.DB
	Sessions *session.Store
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(c *fiber.Ctx) error {
	sess, err := h.Sessions.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}
	return renderPage(c, sess, "register", nil)
}

// Register creates an account from the submitted form.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	sess, err := h.Sessions.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}

	username := c.FormValue("username")
	password := c.FormValue("password")

	_, err = services.RegisterUser(h.DB, username, password)
	switch {
	case err == nil:
		return flashAndRedirect(c, sess, "flash_registered", "/login")
	case errors.Is(err, services.ErrDuplicateUsername):
		return flashAndRedirect(c, sess, "flash_duplicate_user", "/register")
	case errors.Is(err, services.ErrMissingCredentials):
		return flashAndRedirect(c, sess, "flash_missing_fields", "/register")
	default:
		log := logger.WithComponent("handlers")
		log.Error().Err(err).Msg("registration failed")
		return fiber.NewError(fiber.StatusInternalServerError, "registration failed")
	}
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	sess, err := h.Sessions.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}
	return renderPage(c, sess, "login", nil)
}

// Login authenticates the submitted credentials and starts a session.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sess, err := h.Sessions.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}

	user, err := services.VerifyUser(h.DB, c.FormValue("username"), c.FormValue("password"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return flashAndRedirect(c, sess, "flash_invalid_login", "/login")
		}
		log := logger.WithComponent("handlers")
		log.Error().Err(err).Msg("login failed")
		return fiber.NewError(fiber.StatusInternalServerError, "login failed")
	}

	sess.Set(middleware.SessionUserKey, user.ID)
	if err := sess.Save(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}

	return c.Redirect("/dashboard", fiber.StatusFound)
}

// Logout clears the session, keeping only the language preference.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.Sessions.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}

	lang := middleware.SessionLanguage(sess)
	if err := sess.Destroy(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}

	fresh, err := h.Sessions.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}
	fresh.Set(middleware.SessionLanguageKey, lang)
	middleware.AddFlash(fresh, i18n.T(lang, "flash_logged_out"))
	if err := fresh.Save(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}

	c.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	c.Set("Pragma", "no-cache")
	c.Set("Expires", "0")

	return c.Redirect("/", fiber.StatusFound)
}

// SetLanguage stores the language preference in the session, independent
// of authentication state.
func (h *AuthHandler) SetLanguage(c *fiber.Ctx) error {
	sess, err := h.Sessions.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}

	lang := c.Params("lang")
	if i18n.Supported(lang) {
		sess.Set(middleware.SessionLanguageKey, lang)
		if err := sess.Save(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
		}
	}

	if ref := c.Get(fiber.HeaderReferer); ref != "" {
		return c.Redirect(ref, fiber.StatusFound)
	}
	if _, ok := sess.Get(middleware.SessionUserKey).(uint64); ok {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}
	return c.Redirect("/", fiber.StatusFound)
}
