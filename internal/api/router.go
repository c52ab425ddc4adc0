package api

import (
	"gazelle/docs"
	"gazelle/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(chatHandler *handlers.ChatHandler, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if code == fiber.StatusInternalServerError {
				appLogger.Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
				return c.Status(code).JSON(fiber.Map{
					"error":   "Internal server error",
					"message": err.Error(),
				})
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger - importing docs registers the OpenAPI document via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", handlers.Health)

	api := app.Group("/api")

	chat := api.Group("/chat")
	chat.Post("/message", chatHandler.SendMessage)
	chat.All("/*", handlers.MethodNotAllowed)

	// Planned surfaces without a backend yet
	api.All("/auth/*", handlers.NotImplemented("Auth"))
	api.All("/supplies*", handlers.NotImplemented("Supplies"))
	api.All("/reservations*", handlers.NotImplemented("Reservations"))
	api.All("/locations*", handlers.NotImplemented("Locations"))
	api.All("/geocode*", handlers.NotImplemented("Geocode"))

	api.All("/*", handlers.APINotFound)

	// Unknown top-level paths get a plain-text 404
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).SendString("Not Found")
	})

	return app
}
