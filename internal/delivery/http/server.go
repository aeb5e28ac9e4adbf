package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"github.com/tourism-registry/internal/config"
	"github.com/tourism-registry/internal/delivery/http/handler"
	"github.com/tourism-registry/internal/delivery/http/middleware"
	"go.uber.org/zap"
)

// Server is the Fiber HTTP server for the registry API.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	siteHandler  *handler.SiteHandler
	statsHandler *handler.StatsHandler
	mapHandler   *handler.MapHandler
}

// NewServer wires middleware, routes, and handlers.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	siteHandler *handler.SiteHandler,
	statsHandler *handler.StatsHandler,
	mapHandler *handler.MapHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Tourism Site Registry",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:          app,
		config:       cfg,
		logger:       logger,
		siteHandler:  siteHandler,
		statsHandler: statsHandler,
		mapHandler:   mapHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Site routes
	api.Post("/sites", s.siteHandler.Create)
	api.Get("/sites", s.siteHandler.List)
	api.Get("/sites/:id", s.siteHandler.GetByID)
	api.Delete("/sites/:id", s.siteHandler.Delete)

	// District enumeration with centroids
	api.Get("/districts", s.siteHandler.ListDistricts)

	// Dashboard routes
	api.Get("/dashboard/stats", s.statsHandler.GetDashboardStats)
	api.Get("/dashboard/markers", s.mapHandler.GetMarkers)

	// Map base layer config for the client widget
	api.Get("/map/config", s.mapHandler.GetConfig)
}

// Start runs the server on the configured address.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
