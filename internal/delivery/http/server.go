package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"github.com/zhytomyr-tourism/internal/config"
	"github.com/zhytomyr-tourism/internal/delivery/http/handler"
	"github.com/zhytomyr-tourism/internal/delivery/http/middleware"
	"github.com/zhytomyr-tourism/internal/metrics"
	apperrors "github.com/zhytomyr-tourism/internal/pkg/errors"
	"github.com/zhytomyr-tourism/internal/pkg/utils"
	"go.uber.org/zap"
)

// Handlers - обработчики, которые монтирует сервер
type Handlers struct {
	Stats      *handler.StatsHandler
	District   *handler.DistrictHandler
	Attraction *handler.AttractionHandler
	Health     *handler.HealthHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Zhytomyr Tourism Statistics",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	api := s.app.Group("/api/v1")

	api.Get("/health", s.handlers.Health.Health)

	// Statistics
	stats := api.Group("/statistics")
	stats.Get("/categories", s.handlers.Stats.GetCategoryStatistics)
	stats.Get("/districts", s.handlers.Stats.GetDistrictDensity)
	stats.Get("/analytics", s.handlers.Stats.GetAnalyticsBundle)

	api.Get("/clusters", s.handlers.Stats.GetClusters)

	// Districts: resolve регистрируется раньше /:id
	api.Get("/districts", s.handlers.District.ListDistricts)
	api.Get("/districts/resolve", s.handlers.District.ResolveDistrict)
	api.Get("/districts/:id", s.handlers.District.GetDistrict)

	api.Get("/attractions", s.handlers.Attraction.ListAttractions)

	admin := api.Group("/admin")
	admin.Post("/statistics/refresh", s.handlers.Stats.RefreshStatistics)
}

// App - доступ к fiber.App (тесты)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки fiber (404 маршрута, 405, паники) в общем конверте
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(utils.ErrorResponse{
				Error: apperrors.New(codeForStatus(fe.Code), fe.Message, fe.Code),
			})
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
