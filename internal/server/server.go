package server

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/retocart/server/internal/apperr"
	"github.com/retocart/server/internal/handlers"
	"github.com/retocart/server/internal/middleware"
	"go.uber.org/zap"
)

const healthMessage = "retoCart server is running"

type Options struct {
	Log *zap.Logger
	// Tokens verifies bearer tokens on guarded routes.
	Tokens middleware.TokenParser
	// Metrics is optional; nil disables /metrics.
	Metrics   *middleware.Metrics
	AccessLog bool

	RateLimitMax     int
	RateLimitWindow  time.Duration
	RateLimitStorage fiber.Storage
}

// New builds the Fiber app with middleware and every route registered.
func New(h *handlers.Deps, opts Options) *fiber.App {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:      "retoCart",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: apperr.Handler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}
	app.Use(cors.New())
	if opts.Metrics != nil {
		app.Use(opts.Metrics.Handler())
		app.Get("/metrics", opts.Metrics.Endpoint())
	}

	limit := func(c *fiber.Ctx) error { return c.Next() }
	if opts.RateLimitMax > 0 {
		limit = middleware.RateLimit(opts.RateLimitMax, opts.RateLimitWindow, opts.RateLimitStorage)
	}
	guard := middleware.AuthMiddleware(opts.Tokens)

	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(healthMessage) })

	// Categories
	app.Post("/categories", h.CategoryHandler.Create)
	app.Get("/categories", h.CategoryHandler.List)
	app.Get("/category-products/:catId", h.CategoryHandler.Products)

	// Products
	app.Get("/products", h.ProductHandler.Published)
	app.Post("/products", h.ProductHandler.Create)
	app.Patch("/products/:id", h.ProductHandler.Update)
	app.Delete("/products/:id", h.ProductHandler.Delete)
	app.Get("/recent-products", h.ProductHandler.Recent)
	app.Get("/product-details/:id", h.ProductHandler.Details)
	app.Post("/update-advertise-status/:id", h.ProductHandler.Publish)
	app.Get("/my-products", guard, h.ProductHandler.MyProducts)
	app.Post("/upload-image", h.ImageHandler.Upload)

	// Users and tokens
	app.Get("/jwt", limit, h.AuthHandler.IssueToken)
	app.Put("/save-user", limit, h.UserHandler.Save)
	app.Get("/user", h.UserHandler.Get)
	app.Get("/sellers", h.UserHandler.Sellers)

	return app
}
