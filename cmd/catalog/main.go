package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/altofibra/catalog/app/repository"
	"github.com/altofibra/catalog/internal/pkg/cache"
	"github.com/altofibra/catalog/internal/pkg/database"
	"github.com/altofibra/catalog/internal/pkg/env"
	"github.com/altofibra/catalog/internal/pkg/metrics/counter"
	"github.com/altofibra/catalog/internal/pkg/pricing"
	"github.com/altofibra/catalog/internal/pkg/router"
)

func main() {
	app := NewApplication()

	// flush promotion view counters from Redis to the DB periodically
	flushWorker := counter.NewWorker(env.GetEnvDuration("COUNTER_FLUSH_INTERVAL", time.Minute))
	flushWorker.Start()
	defer flushWorker.Stop()

	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	repository.InitializeFactory(database.GetDB())

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/catalog to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	engine := html.New(basePath+"views", ".html")
	engine.AddFunc("clp", pricing.FormatCLP)

	// init fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		EnablePrintRoutes: env.IsDev(),
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	app.Use(favicon.New(favicon.Config{
		File: basePath + "public/assets/favicon.ico",
		URL:  "/favicon.ico",
	}))

	// static files
	app.Static("/", basePath+"public/assets", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// static uploads (media image files)
	app.Static("/uploads", basePath+"uploads", fiber.Static{
		CacheDuration: 10 * time.Second,
		Compress:      false,
		MaxAge:        604800, // 7 days
	})

	// ROUTER
	router.InstallRouter(app)

	return app
}
