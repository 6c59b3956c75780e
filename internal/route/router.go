package router

import (
	"parking-service/internal/module/parking/handler"
	"parking-service/internal/pkg/metrics"
	"parking-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerParking *handler.ParkingHandler, m *middleware.Middleware) *fiber.App {
	app.Use(metrics.Middleware())

	// health check
	app.Get("/health", handlerParking.Health)
	app.Get("/metrics", metrics.Handler())

	app.Get("/", handlerParking.Index)

	app.Get("/slots", handlerParking.ShowSearchForm)
	app.Post("/slots", handlerParking.SearchSlots)
	app.Post("/book", handlerParking.BookSlot)
	app.Get("/status", handlerParking.ShowStatus)

	app.Get("/checkout", handlerParking.ShowCheckoutForm)
	app.Post("/checkout", handlerParking.Checkout)
	app.Post("/pay_penalty", handlerParking.PayPenalty)
	app.Get("/confirm_checkout", handlerParking.ConfirmCheckout)

	// admin
	app.Get("/admin", m.AdminGate, handlerParking.ShowLedger)
	app.Post("/admin", m.AdminGate, handlerParking.ShowLedger)
	app.Get("/logout", handlerParking.Logout)

	return app
}
