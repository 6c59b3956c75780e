package http

import (
	"fmt"

	"parking-service/internal/pkg/helpers"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func SetupHttpEngine() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "parking-service",
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())

	return app
}

func StartHttpServer(app *fiber.App, port string) error {
	return app.Listen(fmt.Sprintf(":%s", port))
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		return ctx.Status(e.Code).SendString(e.Message)
	}
	return ctx.Status(fiber.StatusInternalServerError).SendString(helpers.StorageFailureMessage)
}
