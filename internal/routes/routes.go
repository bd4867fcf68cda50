package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/staynest/staynest-backend/internal/config"
	"github.com/staynest/staynest-backend/internal/handlers"
	"github.com/staynest/staynest-backend/internal/middleware"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Health   *handlers.HealthHandler
	User     *handlers.UserHandler
	Property *handlers.PropertyHandler
	Booking  *handlers.BookingHandler
	Payment  *handlers.PaymentHandler
	Review   *handlers.ReviewHandler
	Message  *handlers.MessageHandler
}

func Setup(app *fiber.App, cfg *config.Config, db *gorm.DB, h Handlers) {
	// Prometheus scrape endpoint, outside the /api group and rate limits.
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), h.Auth.Logout)

	jwt := middleware.JWTProtected(cfg)
	admin := middleware.AdminRequired(db, cfg)

	// Users — read-only, public
	api.Get("/users", h.User.List)
	api.Get("/users/:id", h.User.Get)

	// Properties — public reads, host-gated writes (object check in service)
	api.Get("/properties", h.Property.List)
	api.Get("/properties/:id", h.Property.Get)
	api.Post("/properties", jwt, h.Property.Create)
	api.Put("/properties/:id", jwt, h.Property.Update)
	api.Patch("/properties/:id", jwt, h.Property.Update)
	api.Delete("/properties/:id", jwt, h.Property.Delete)

	// Bookings — fully authenticated, row-level scoped
	api.Get("/bookings", jwt, h.Booking.List)
	api.Get("/bookings/:id", jwt, h.Booking.Get)
	api.Post("/bookings", jwt, h.Booking.Create)
	api.Put("/bookings/:id", jwt, h.Booking.Update)
	api.Patch("/bookings/:id", jwt, h.Booking.Update)
	api.Delete("/bookings/:id", jwt, h.Booking.Delete)

	// Payments — scoped reads and creates; mutation is admin-only
	api.Get("/payments", jwt, h.Payment.List)
	api.Get("/payments/:id", jwt, h.Payment.Get)
	api.Post("/payments", jwt, h.Payment.Create)
	api.Put("/payments/:id", jwt, admin, h.Payment.Update)
	api.Patch("/payments/:id", jwt, admin, h.Payment.Update)
	api.Delete("/payments/:id", jwt, admin, h.Payment.Delete)

	// Reviews — public reads, author-gated writes
	api.Get("/reviews", h.Review.List)
	api.Get("/reviews/:id", h.Review.Get)
	api.Post("/reviews", jwt, h.Review.Create)
	api.Put("/reviews/:id", jwt, h.Review.Update)
	api.Patch("/reviews/:id", jwt, h.Review.Update)
	api.Delete("/reviews/:id", jwt, h.Review.Delete)

	// Messages — fully authenticated, row-level scoped
	api.Get("/messages", jwt, h.Message.List)
	api.Get("/messages/:id", jwt, h.Message.Get)
	api.Post("/messages", jwt, h.Message.Create)
	api.Put("/messages/:id", jwt, h.Message.Update)
	api.Patch("/messages/:id", jwt, h.Message.Update)
	api.Delete("/messages/:id", jwt, h.Message.Delete)
}
