package fiber

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/ebran/doorman"
)

type Adapter struct {
	app *fiber.App
}

var _ doorman.HTTPAdapter = (*Adapter)(nil)

func New(app *fiber.App) *Adapter {
	return &Adapter{app: app}
}

// RegisterRoutes mounts the two public endpoints. The mixed-case /SignIn
// path is part of the wire contract.
func (a *Adapter) RegisterRoutes(auth doorman.AuthProvider, cookieMaxAge time.Duration) error {
	a.app.Post("/register", handleRegister(auth))
	a.app.Post("/SignIn", handleSignIn(auth, cookieMaxAge))

	return nil
}
