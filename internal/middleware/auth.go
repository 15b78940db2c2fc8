package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"legalclarity/internal/i18n"
	"legalclarity/internal/models"
	"legalclarity/internal/services"
)

// userLocalsKey is where RequireUser stores the resolved account.
const userLocalsKey = "currentUser"

// RequireUser gates a route on an authenticated session. The session user
// is resolved once into a typed models.User in Locals; handlers read it
// with CurrentUser and never re-fetch it. Unauthenticated page requests
// redirect to the login form with a flash; the JSON endpoints (all
// non-GET) get a 401 body instead.
func RequireUser(store *session.Store, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
		}

		lang := SessionLanguage(sess)

		userID, ok := sess.Get(SessionUserKey).(uint64)
		if !ok {
			return unauthorized(c, sess, lang)
		}

		user, err := services.GetUserByID(db, userID)
		if err != nil {
			// Stale session for a user that no longer exists.
			_ = sess.Destroy()
			fresh, ferr := store.Get(c)
			if ferr == nil {
				fresh.Set(SessionLanguageKey, lang)
				_ = fresh.Save()
			}
			return unauthorized(c, nil, lang)
		}

		c.Locals(userLocalsKey, user)

		// Authenticated pages must not be served from cache.
		c.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
		c.Set("Pragma", "no-cache")
		c.Set("Expires", "0")

		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, sess *session.Session, lang string) error {
	if c.Method() != fiber.MethodGet {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": i18n.T(lang, "error_unauthorized"),
		})
	}
	if sess != nil {
		AddFlash(sess, i18n.T(lang, "flash_login_required"))
		_ = sess.Save()
	}
	return c.Redirect("/login", fiber.StatusFound)
}

// CurrentUser returns the account resolved by RequireUser, or nil outside
// a gated route.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalsKey).(*models.User)
	return user
}
