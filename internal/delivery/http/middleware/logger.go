package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/zhytomyr-tourism/internal/metrics"
	"go.uber.org/zap"
)

// Logger - логирование запросов и метрики по маршрутам
func Logger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		took := time.Since(start)

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		// шаблон маршрута, а не путь: иначе метрики разрастаются по id
		route := c.Route().Path
		metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		metrics.RequestDurationMs.WithLabelValues(route).Observe(float64(took.Microseconds()) / 1000)

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("took", took),
			zap.String("ip", c.IP()),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Error("HTTP request", append(fields, zap.Error(err))...)
		case status >= fiber.StatusBadRequest:
			logger.Warn("HTTP request", fields...)
		default:
			logger.Debug("HTTP request", fields...)
		}

		return err
	}
}
