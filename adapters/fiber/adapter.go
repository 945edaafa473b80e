package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/gabrie-lhilarion/authd/core"
)

// SessionCookie is the cookie carrying the session token, stored
// server-side on the user row and compared by exact equality.
const SessionCookie = "session_id"

// Adapter maps the reference HTTP routes onto the auth core.
type Adapter struct {
	auth core.Authenticator
}

func New(auth core.Authenticator) *Adapter {
	return &Adapter{auth: auth}
}

// Register mounts the reference routes on app.
func (a *Adapter) Register(app *fiber.App) {
	app.Get("/", a.welcome)

	app.Post("/users", a.register)

	app.Post("/sessions", a.login)
	app.Delete("/sessions", a.logout)

	app.Get("/profile", a.profile)

	app.Post("/reset_password", a.resetRequest)
	app.Put("/reset_password", a.resetUpdate)
}
