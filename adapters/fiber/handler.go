package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/gabrie-lhilarion/authd/core"
)

func (a *Adapter) welcome(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Bienvenue"})
}

// register handles POST /users with form fields email and password.
func (a *Adapter) register(c fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")
	if email == "" {
		return badRequest(c, core.ErrEmailRequired)
	}
	if password == "" {
		return badRequest(c, core.ErrPasswordRequired)
	}

	if _, err := a.auth.Register(c.Context(), email, password); err != nil {
		if errors.Is(err, core.ErrEmailTaken) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"message": "email already registered",
			})
		}
		return c.SendStatus(http.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"email": email, "message": "user created"})
}

// login handles POST /sessions. Invalid credentials are a 401 with no
// body; a success sets the session cookie.
func (a *Adapter) login(c fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	if !a.auth.ValidLogin(c.Context(), email, password) {
		return c.SendStatus(http.StatusUnauthorized)
	}

	token, err := a.auth.CreateSession(c.Context(), email)
	if err != nil {
		// The user row vanishing between the check and the issuance
		// reads the same as bad credentials.
		if errors.Is(err, core.ErrNoSession) {
			return c.SendStatus(http.StatusUnauthorized)
		}
		return c.SendStatus(http.StatusInternalServerError)
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"email": email, "message": "logged in"})
}

// logout handles DELETE /sessions: destroys the session named by the
// cookie and redirects home.
func (a *Adapter) logout(c fiber.Ctx) error {
	user, ok := a.auth.ResolveSession(c.Context(), c.Cookies(SessionCookie))
	if !ok {
		return c.SendStatus(http.StatusForbidden)
	}

	if err := a.auth.DestroySession(c.Context(), user.ID); err != nil {
		return c.SendStatus(http.StatusInternalServerError)
	}

	c.ClearCookie(SessionCookie)
	return c.Redirect().To("/")
}

// profile handles GET /profile for the session named by the cookie.
func (a *Adapter) profile(c fiber.Ctx) error {
	user, ok := a.auth.ResolveSession(c.Context(), c.Cookies(SessionCookie))
	if !ok {
		return c.SendStatus(http.StatusForbidden)
	}

	return c.JSON(fiber.Map{"email": user.Email})
}

// resetRequest handles POST /reset_password. Unlike login, an unknown
// email here is an explicit 403.
func (a *Adapter) resetRequest(c fiber.Ctx) error {
	email := c.FormValue("email")

	token, err := a.auth.RequestPasswordReset(c.Context(), email)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return c.SendStatus(http.StatusForbidden)
		}
		return c.SendStatus(http.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"email": email, "reset_token": token})
}

// resetUpdate handles PUT /reset_password with form fields email,
// reset_token and new_password. Missing fields and stale tokens both
// map to 403.
func (a *Adapter) resetUpdate(c fiber.Ctx) error {
	email := c.FormValue("email")
	token := c.FormValue("reset_token")
	newPassword := c.FormValue("new_password")
	if email == "" || token == "" || newPassword == "" {
		return c.SendStatus(http.StatusForbidden)
	}

	if err := a.auth.RedeemPasswordReset(c.Context(), token, newPassword); err != nil {
		if errors.Is(err, core.ErrInvalidToken) {
			return c.SendStatus(http.StatusForbidden)
		}
		return c.SendStatus(http.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"email": email, "message": "Password updated"})
}

func badRequest(c fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
}
