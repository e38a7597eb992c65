package server

import (
	"io"

	"github.com/Jnyanu18/portfolio/internal/api/handlers"
	"github.com/Jnyanu18/portfolio/internal/config"
	"github.com/Jnyanu18/portfolio/internal/logging"
	"github.com/Jnyanu18/portfolio/internal/mailer"
	"github.com/Jnyanu18/portfolio/internal/ratelimit"
	"github.com/Jnyanu18/portfolio/internal/server/routes"
	"github.com/Jnyanu18/portfolio/internal/store"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router  *gin.Engine
	cfg     *config.Config
	store   *store.Store
	limiter *ratelimit.Limiter
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, store *store.Store) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable gin's default logger; requests go through our own logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	return &Server{
		router:  gin.New(),
		cfg:     cfg,
		store:   store,
		limiter: ratelimit.New(),
	}
}

// Init wires middleware, handlers and routes
func (s *Server) Init() error {
	logger := logging.GetGlobalLogger()

	routes.SetupGlobalMiddleware(s.router, logger, s.cfg.ClientURL)

	dispatcher := mailer.NewDispatcher(
		mailer.NewSMTPTransport(s.cfg),
		s.cfg.EmailUser,
		s.cfg.ContactEmail,
	)

	h := &routes.Handlers{
		Health:    handlers.NewHealthHandler(),
		Portfolio: handlers.NewPortfolioHandler(s.store),
		Contact:   handlers.NewContactHandler(dispatcher),
	}

	routes.Setup(s.router, h, &routes.Deps{Limiter: s.limiter})
	return nil
}

// Start starts the server
func (s *Server) Start() error {
	return s.router.Run(":" + s.cfg.Port)
}
