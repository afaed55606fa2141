package observability

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader carries the per-request correlation id.
	RequestIDHeader = "X-Request-ID"
	// UserIDLocal is the fiber local holding the authenticated caller id.
	UserIDLocal = "user_id"
)

// UnmatchedRoute is the counter key for requests that reached no route.
const UnmatchedRoute = "<unmatched>"

// RouteKey names the registered route a request ended on, never the raw URL,
// so counters stay bounded by the route table. Requests stopped by a prefix
// middleware (such as auth on /jobs) count under "<prefix>/*".
func RouteKey(c *fiber.Ctx) string {
	r := c.Route()
	if r == nil {
		return UnmatchedRoute
	}
	if r.Method != "USE" {
		return r.Path
	}
	if r.Path == "" || r.Path == "/" {
		return UnmatchedRoute
	}
	return strings.TrimSuffix(r.Path, "/") + "/*"
}

// RequestLogger logs one line per request and feeds the request counters.
// Metrics are keyed by RouteKey.
func RequestLogger(logger *zap.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDHeader, requestID)

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()
		metrics.RecordRequest(RouteKey(c), c.Method(), status, duration)

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		}
		if userID, ok := c.Locals(UserIDLocal).(string); ok && userID != "" {
			fields = append(fields, zap.String("user_id", userID))
		}
		if status >= fiber.StatusInternalServerError {
			logger.Error("request", fields...)
		} else {
			logger.Info("request", fields...)
		}
		return err
	}
}
