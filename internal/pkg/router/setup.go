package router

import (
	"github.com/gofiber/fiber/v2"
)

// Router installs a related group of routes on the app
type Router interface {
	InstallRouter(app *fiber.App)
}

// InstallRouter wires the public site first, then the API routes.
func InstallRouter(app *fiber.App) {
	setup(app, NewHttpRouter(), NewApiRouter())
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
