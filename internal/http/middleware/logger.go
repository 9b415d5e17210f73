package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"nameapi/internal/logging"
)

// Logger logs each HTTP request as one JSON line with
// request_id, method, path, status and latency (milliseconds, float).
func Logger(log *logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// the global error handler runs after us and decides the final status
			status = statusFromError(err)
		}
		rid, _ := c.Locals(RequestIDLocalKey).(string)

		log.Log(logging.Fields{
			"request_id": rid,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    float64(time.Since(start).Microseconds()) / 1000,
		})

		return err
	}
}

func statusFromError(err error) int {
	if fiberErr, ok := err.(*fiber.Error); ok {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
