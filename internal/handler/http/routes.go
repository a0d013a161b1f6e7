package http

import (
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	metrics.RegisterDefault()
	limiter := newRateLimiter(h.cfg.Server.RateLimitRPS, h.cfg.Server.RateLimitBurst, nil)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(withSecureHeaders)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		AllowCredentials: true,
	}))
	router.Use(h.withRateLimit(limiter))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/ping", h.ping)
		r.Get("/api/health", h.health)
		r.Get("/api/cars", h.listCars)
		r.Get("/api/cars/{id}", h.getCar)
	})

	// routes behind the auth gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/cars", h.createCar)
		r.Put("/api/cars/{id}", h.updateCar)
		r.Delete("/api/cars/{id}", h.deleteCar)

		r.Post("/api/bookings", h.createBooking)
		r.Get("/api/bookings/my", h.listMyBookings)
		r.Get("/api/bookings/{id}", h.getBooking)
		r.Post("/api/bookings/{id}/cancel", h.cancelBooking)

		r.Post("/api/payments/intent", h.createPaymentIntent)
		r.Post("/api/payments/{id}/confirm", h.confirmPayment)
		r.Get("/api/payments/{id}", h.getPayment)
	})

	router.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	router.Handle("/uploads/*", uploadsHandler(h.cfg.Storage.Files.UploadsDir))

	return router
}
