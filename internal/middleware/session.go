package middleware

import (
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"

	"legalclarity/internal/i18n"
)

// Session keys. The session carries only the user identity, the language
// preference and pending flash messages, never secrets.
const (
	SessionUserKey     = "user_id"
	SessionLanguageKey = "language"
	SessionFlashKey    = "flash"
)

// NewSessionStore creates the server-side session store. Session data
// lives in memory; the client only holds the session id cookie.
func NewSessionStore() *session.Store {
	return session.New(session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:session_id",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// CookieKey derives the base64 32-byte key for cookie encryption from the
// configured session secret.
func CookieKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// SessionLanguage returns the session's language preference, defaulting
// to English.
func SessionLanguage(sess *session.Session) string {
	if lang, ok := sess.Get(SessionLanguageKey).(string); ok && i18n.Supported(lang) {
		return lang
	}
	return i18n.Default
}

// AddFlash queues a one-shot message for the next page render.
func AddFlash(sess *session.Session, message string) {
	flashes, _ := sess.Get(SessionFlashKey).([]string)
	sess.Set(SessionFlashKey, append(flashes, message))
}

// ConsumeFlashes returns queued flash messages and clears them.
func ConsumeFlashes(sess *session.Session) []string {
	flashes, _ := sess.Get(SessionFlashKey).([]string)
	if len(flashes) > 0 {
		sess.Delete(SessionFlashKey)
	}
	return flashes
}
