package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"legalclarity/internal/i18n"
	"legalclarity/internal/middleware"
)

// renderPage renders a template with the localized string table, language
// data, pending flash messages and the current user injected. Consuming
// flashes mutates the session, so it is saved here.
func renderPage(c *fiber.Ctx, sess *session.Session, name string, bind fiber.Map) error {
	lang := middleware.SessionLanguage(sess)

	if bind == nil {
		bind = fiber.Map{}
	}
	bind["T"] = i18n.Strings(lang)
	bind["Lang"] = lang
	bind["Languages"] = i18n.Languages
	bind["Flashes"] = middleware.ConsumeFlashes(sess)
	bind["User"] = middleware.CurrentUser(c)

	if err := sess.Save(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}

	return c.Render(name, bind)
}

// flashAndRedirect queues a localized flash and redirects.
func flashAndRedirect(c *fiber.Ctx, sess *session.Session, messageKey, location string) error {
	lang := middleware.SessionLanguage(sess)
	middleware.AddFlash(sess, i18n.T(lang, messageKey))
	if err := sess.Save(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}
	return c.Redirect(location, fiber.StatusFound)
}
