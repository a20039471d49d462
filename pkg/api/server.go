// Package api provides the HTTP surface: session intake, snapshots,
// cancellation, the NDJSON event stream, and the WebSocket endpoint.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/kaiseki-io/kaiseki/pkg/config"
	"github.com/kaiseki-io/kaiseki/pkg/database"
	"github.com/kaiseki-io/kaiseki/pkg/events"
	"github.com/kaiseki-io/kaiseki/pkg/imagestore"
	"github.com/kaiseki-io/kaiseki/pkg/pipeline"
	"github.com/kaiseki-io/kaiseki/pkg/queue"
	"github.com/kaiseki-io/kaiseki/pkg/services"
)

// Server is the HTTP server. Handlers live in the handler_*.go files.
type Server struct {
	cfg          *config.Config
	dbClient     *database.Client
	sessions     *services.SessionService
	eventService *services.EventService
	manager      *events.Manager
	publisher    *events.Publisher
	orchestrator *pipeline.Orchestrator
	workerPool   *queue.Pool
	images       imagestore.Store
	podID        string

	echo       *echo.Echo
	httpServer *http.Server
}

// NewServer creates the server and registers all routes.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	sessions *services.SessionService,
	eventService *services.EventService,
	manager *events.Manager,
	publisher *events.Publisher,
	orchestrator *pipeline.Orchestrator,
	workerPool *queue.Pool,
	images imagestore.Store,
	podID string,
) *Server {
	s := &Server{
		cfg:          cfg,
		dbClient:     dbClient,
		sessions:     sessions,
		eventService: eventService,
		manager:      manager,
		publisher:    publisher,
		orchestrator: orchestrator,
		workerPool:   workerPool,
		images:       images,
		podID:        podID,
	}
	s.echo = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *echo.Echo {
	e := echo.New()
	e.Use(requestLogger())
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	e.GET("/ws", s.wsHandler)

	v1 := e.Group("/v1")
	v1.POST("/sessions", s.createSessionHandler)
	v1.GET("/sessions/:id", s.getSessionHandler)
	v1.DELETE("/sessions/:id", s.cancelSessionHandler)
	v1.GET("/sessions/:id/events", s.streamEventsHandler)
	v1.GET("/sessions/:id/image", s.getUploadHandler)
	v1.GET("/items/image/*", s.getItemImageHandler)

	return e
}

// Start begins serving. Blocks until the listener fails or Shutdown runs.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests, including open event streams.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
