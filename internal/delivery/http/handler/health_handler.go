package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/zhytomyr-tourism/internal/usecase"
)

// HealthCheck - проверка внешней зависимости
type HealthCheck func(ctx context.Context) error

// HealthHandler - состояние сервиса и его зависимостей
type HealthHandler struct {
	snapshots usecase.SnapshotProvider
	checks    map[string]HealthCheck
}

// NewHealthHandler создает новый экземпляр HealthHandler
func NewHealthHandler(snapshots usecase.SnapshotProvider, checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{
		snapshots: snapshots,
		checks:    checks,
	}
}

// Health godoc
// @Summary Health check
// @Description Состояние сервиса: версия снимка и доступность зависимостей
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := "healthy"
	code := fiber.StatusOK

	deps := make(fiber.Map, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			deps[name] = err.Error()
			status = "degraded"
			continue
		}
		deps[name] = "ok"
	}

	body := fiber.Map{
		"status":       status,
		"time":         time.Now(),
		"dependencies": deps,
	}

	if s := h.snapshots.Snapshot(); s != nil {
		body["snapshot"] = fiber.Map{
			"version":     s.Version,
			"computed_at": s.ComputedAt,
		}
	} else {
		body["status"] = "unavailable"
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(body)
}
