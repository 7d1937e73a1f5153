package middleware

import (
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

const defaultRateLimitMessage = "Too many requests, please try again later"

type RateLimitConfig struct {
	// Max requests per client IP within Window. Zero means 50.
	Max    int
	Window time.Duration
	// Message is the error text of the 429 body.
	Message string
}

// NewRateLimiter limits requests per client IP over a sliding window. Rejected
// requests get {"error": message, "retryAfterSeconds": n}.
func NewRateLimiter(cfg RateLimitConfig) fiber.Handler {
	if cfg.Max <= 0 {
		cfg.Max = 50
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.Message == "" {
		cfg.Message = defaultRateLimitMessage
	}
	retryAfter := int(math.Ceil(cfg.Window.Seconds()))

	return limiter.New(limiter.Config{
		Max:        cfg.Max,
		Expiration: cfg.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":             cfg.Message,
				"retryAfterSeconds": retryAfter,
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
