package middleware

import (
	"fmt"

	"chargeflow/internal/config"
	"chargeflow/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimit throttles a route group. Authenticated requests are keyed by
// user, anonymous ones by client IP.
func RateLimit(scope string, limit config.RateLimit) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        limit.Max,
		Expiration: limit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if user, ok := CurrentUser(c); ok {
				return fmt.Sprintf("%s:user:%d", scope, user.ID)
			}
			return fmt.Sprintf("%s:ip:%s", scope, c.IP())
		},
		LimitReached: func(c *fiber.Ctx) error {
			return utils.TooManyRequests(c)
		},
	})
}
