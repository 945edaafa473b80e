package fiber

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// RequireSession validates the session cookie and stores the resolved
// user in request locals for downstream handlers.
func (a *Adapter) RequireSession(c fiber.Ctx) error {
	user, ok := a.auth.ResolveSession(c.Context(), c.Cookies(SessionCookie))
	if !ok {
		return c.SendStatus(http.StatusForbidden)
	}

	c.Locals("user", user)
	return c.Next()
}

// BasicAuth authenticates an Authorization: Basic header against the
// credential store and stores the email in request locals. Cookie-less
// clients can use this instead of a session.
func (a *Adapter) BasicAuth(c fiber.Ctx) error {
	email, password, ok := decodeBasicAuth(c.Get(fiber.HeaderAuthorization))
	if !ok || !a.auth.ValidLogin(c.Context(), email, password) {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid credentials",
		})
	}

	c.Locals("email", email)
	return c.Next()
}

// decodeBasicAuth splits a "Basic base64(email:password)" header.
// Everything after the first colon belongs to the password.
func decodeBasicAuth(header string) (email, password string, ok bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}

	raw, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}

	return strings.Cut(string(raw), ":")
}
