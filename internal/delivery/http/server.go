package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/commute-map/internal/config"
	"github.com/commute-map/internal/delivery/http/handler"
	"github.com/commute-map/internal/delivery/http/middleware"
	"github.com/commute-map/internal/pkg/errors"
	"github.com/commute-map/internal/pkg/utils"
	"github.com/commute-map/internal/usecase/dto"
)

// HealthFunc - состояние бэкендов для /health
type HealthFunc func(ctx context.Context) dto.HealthResponse

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	pageHandler    *handler.PageHandler
	mapHandler     *handler.MapHandler
	commuteHandler *handler.CommuteHandler
	health         HealthFunc
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	pageHandler *handler.PageHandler,
	mapHandler *handler.MapHandler,
	commuteHandler *handler.CommuteHandler,
	health HealthFunc,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Commute Map",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		pageHandler:    pageHandler,
		mapHandler:     mapHandler,
		commuteHandler: commuteHandler,
		health:         health,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	session := middleware.Session(s.config.Session.CookieName, s.config.Session.IdleTTL)

	s.app.Get("/", session, s.pageHandler.Render)

	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, s.health(c.UserContext()), nil)
	})

	api.Get("/config/map", s.mapHandler.GetMapConfig)
	api.Get("/places/autocomplete", s.mapHandler.Autocomplete)
	api.Post("/commute/estimate", s.commuteHandler.Estimate)

	// Session-scoped orchestrator routes
	api.Post("/office", session, s.mapHandler.SelectOffice)
	api.Post("/route", session, s.mapHandler.RequestRoute)
	api.Get("/map", session, s.mapHandler.GetView)
	api.Delete("/session", session, s.mapHandler.ClearSession)
}

// App возвращает Fiber приложение для тестов
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

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			appErr := errors.New("HTTP_ERROR", e.Message, e.Code)
			if e.Code == fiber.StatusNotFound {
				appErr = errors.New("NOT_FOUND", e.Message, e.Code)
			}
			return utils.SendError(c, appErr)
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		return utils.SendError(c, err)
	}
}
