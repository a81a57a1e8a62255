package httpserver

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"weather-dashboard/pkg/logger"
)

// Form posts and JSON calls are tiny.
const bodyLimit = 64 * 1024

type Options struct {
	AppName      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// Ready is consulted by the readiness probe. Nil means always ready.
	Ready func() bool
}

func InitFiberServer(opts Options, l *logger.Logger) *fiber.App {
	s := fiber.New(fiber.Config{
		AppName:      opts.AppName,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		BodyLimit:    bodyLimit,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		IdleTimeout:  opts.IdleTimeout,
		ErrorHandler: errorHandler(l),
		// handlers keep form values past the request (requester page map)
		Immutable: true,
	})

	s.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	s.Use(requestid.New())
	s.Use(requestLogger(l))
	s.Use(cors.New())

	ready := opts.Ready
	if ready == nil {
		ready = func() bool { return true }
	}
	s.Use(healthcheck.New(healthcheck.Config{
		LivenessEndpoint:  "/manage/health",
		ReadinessEndpoint: "/manage/ready",
		ReadinessProbe:    func(*fiber.Ctx) bool { return ready() },
	}))

	return s
}

// requestLogger writes one access log line per request.
func requestLogger(l *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		fields := map[string]any{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"durationMs": time.Since(start).Milliseconds(),
			"requestId":  c.GetRespHeader(fiber.HeaderXRequestID),
		}
		if err != nil {
			fields["err"] = err.Error()
			l.Warning("request failed", fields)
			return err
		}
		l.Debug("request served", fields)
		return nil
	}
}

func errorHandler(l *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}
		if code >= fiber.StatusInternalServerError {
			l.Error(err, map[string]any{
				"path":      c.Path(),
				"method":    c.Method(),
				"requestId": c.GetRespHeader(fiber.HeaderXRequestID),
			})
		}
		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}
