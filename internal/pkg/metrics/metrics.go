package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BookingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parking_bookings_total",
		Help: "Slot bookings by outcome",
	}, []string{"outcome"})

	CheckoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parking_checkouts_total",
		Help: "Slots released by finalized checkouts",
	})

	PenaltiesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parking_penalties_total",
		Help: "Overtime penalties paid",
	})

	PenaltyAmountTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parking_penalty_amount_total",
		Help: "Sum of overtime penalties paid",
	})

	OverstaysTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parking_overstays_total",
		Help: "Vehicles still parked after the grace period",
	})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by route and status",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		route := c.Route().Path
		status := strconv.Itoa(c.Response().StatusCode())
		httpRequestsTotal.WithLabelValues(c.Method(), route, status).Inc()
		httpRequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())

		return err
	}
}

func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
