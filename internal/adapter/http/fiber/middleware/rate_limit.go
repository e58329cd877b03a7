package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/seu-repo/pos-insight/pkg/config"
)

// RateLimit creates a per-client rate limiter from application config
func RateLimit(cfg config.RateLimitingConfig) fiber.Handler {
	maxRequests := 120
	if cfg.MaxRequests > 0 {
		maxRequests = cfg.MaxRequests
	}

	window := time.Minute
	if cfg.Window > 0 {
		window = cfg.Window
	}

	return limiter.New(limiter.Config{
		Max:        maxRequests,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests",
			})
		},
	})
}
