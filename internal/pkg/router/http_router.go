package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altofibra/catalog/app/controllers"
	"github.com/altofibra/catalog/app/repository"
)

// HttpRouter installs the public, server-rendered routes.
type HttpRouter struct {
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	public := controllers.NewPublicController(repository.GetGlobalRepositories())

	app.Get("/", public.HandleLanding)
	app.Get("/promocion/:id", public.HandlePromotionDetail)
	app.Get("/carta", public.HandleMenu)
	app.Get("/contactar", public.HandleContact)
}
