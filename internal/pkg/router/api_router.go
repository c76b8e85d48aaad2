package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/altofibra/catalog/app/controllers"
	"github.com/altofibra/catalog/app/repository"
	"github.com/altofibra/catalog/internal/pkg/middleware"
)

// ApiRouter installs the JSON routes: the public quote endpoint and
// the key-protected admin CRUD surface.
type ApiRouter struct {
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	repos := repository.GetGlobalRepositories()
	public := controllers.NewPublicController(repos)

	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	v1 := api.Group("/v1")
	v1.Post("/quote", public.HandleQuote)

	admin := v1.Group("/admin", middleware.RequireAdminKey())

	services := controllers.NewAdminServiceController(repos.Service)
	admin.Get("/services", services.HandleList)
	admin.Post("/services", services.HandleCreate)
	admin.Get("/services/:id", services.HandleGet)
	admin.Put("/services/:id", services.HandleUpdate)
	admin.Delete("/services/:id", services.HandleDelete)

	plans := controllers.NewAdminPlanController(repos.Plan)
	admin.Get("/plans", plans.HandleList)
	admin.Post("/plans", plans.HandleCreate)
	admin.Get("/plans/:id", plans.HandleGet)
	admin.Put("/plans/:id", plans.HandleUpdate)
	admin.Delete("/plans/:id", plans.HandleDelete)

	addons := controllers.NewAdminAddonController(repos.Addon)
	admin.Get("/addons", addons.HandleList)
	admin.Post("/addons", addons.HandleCreate)
	admin.Get("/addons/:id", addons.HandleGet)
	admin.Put("/addons/:id", addons.HandleUpdate)
	admin.Delete("/addons/:id", addons.HandleDelete)

	promotions := controllers.NewAdminPromotionController(repos.Promotion)
	admin.Get("/promotions", promotions.HandleList)
	admin.Post("/promotions", promotions.HandleCreate)
	admin.Get("/promotions/:id", promotions.HandleGet)
	admin.Put("/promotions/:id", promotions.HandleUpdate)
	admin.Delete("/promotions/:id", promotions.HandleDelete)

	media := controllers.NewAdminMediaController(repos.Media)
	admin.Get("/media", media.HandleList)
	admin.Post("/media", media.HandleCreate)
	admin.Get("/media/:uuid", media.HandleGet)
	admin.Put("/media/:uuid", media.HandleUpdate)
	admin.Delete("/media/:uuid", media.HandleDelete)

	menu := controllers.NewAdminMenuController(repos.Menu)
	admin.Get("/menu/categories", menu.HandleListCategories)
	admin.Post("/menu/categories", menu.HandleCreateCategory)
	admin.Get("/menu/categories/:id", menu.HandleGetCategory)
	admin.Put("/menu/categories/:id", menu.HandleUpdateCategory)
	admin.Delete("/menu/categories/:id", menu.HandleDeleteCategory)
	admin.Post("/menu/dishes", menu.HandleCreateDish)
	admin.Get("/menu/dishes/:id", menu.HandleGetDish)
	admin.Put("/menu/dishes/:id", menu.HandleUpdateDish)
	admin.Delete("/menu/dishes/:id", menu.HandleDeleteDish)
	admin.Get("/menu/specials", menu.HandleListSpecials)
	admin.Post("/menu/specials", menu.HandleCreateSpecial)
	admin.Put("/menu/specials/:id", menu.HandleUpdateSpecial)
	admin.Delete("/menu/specials/:id", menu.HandleDeleteSpecial)

	restaurant := controllers.NewAdminRestaurantController(repos.Restaurant)
	admin.Get("/restaurant", restaurant.HandleGet)
	admin.Put("/restaurant", restaurant.HandleUpdate)
}
