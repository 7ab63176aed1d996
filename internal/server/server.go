package server

import (
	"log"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/YoussefAz2/elenashop-sub001/internal/bootstrap"
	"github.com/YoussefAz2/elenashop-sub001/internal/config"
	"github.com/YoussefAz2/elenashop-sub001/internal/pkg/serverutils"
	"github.com/YoussefAz2/elenashop-sub001/internal/service"
	"github.com/YoussefAz2/elenashop-sub001/pkg/palette"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

// ErrorMappings are the domain errors rendered with a status other
// than 500.
var ErrorMappings = []serverutils.ErrorMapping{
	{Err: palette.ErrPaletteNotFound, Status: fiber.StatusNotFound},
	{Err: palette.ErrPresetNotFound, Status: fiber.StatusNotFound},
	{Err: service.ErrSessionNotFound, Status: fiber.StatusNotFound},
	{Err: service.ErrInvalidTarget, Status: fiber.StatusBadRequest},
	{Err: service.ErrNotInteractive, Status: fiber.StatusConflict},
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 2 * 1024 * 1024, // 2MB
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(ErrorMappings...))

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.ThemeController.RegisterRoutes(api)
	// The socket is registered before the editor routes that share its
	// prefix.
	c.EditorSocketHandler.RegisterRoutes(api)
	c.EditorController.RegisterRoutes(api)
}
