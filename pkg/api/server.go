// Package api is the HTTP surface of the work platform: project
// scaffolding, work admission, ticket streams, supervision actions, and
// health probes. Handlers translate HTTP to service calls; all state
// lives in the services they front.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cobbleworks/foundry/pkg/config"
	"github.com/cobbleworks/foundry/pkg/database"
	"github.com/cobbleworks/foundry/pkg/events"
	"github.com/cobbleworks/foundry/pkg/progress"
	"github.com/cobbleworks/foundry/pkg/queue"
	"github.com/cobbleworks/foundry/pkg/services"
)

// Server hosts the HTTP API.
type Server struct {
	cfg        *config.Config
	dbClient   *database.Client
	scaffolder *services.Scaffolder
	admission  *services.AdmissionService
	bridge     *services.SupervisionBridge
	tickets    *services.TicketService
	inline     *queue.InlineRunner
	pool       *queue.WorkerPool
	hub        *progress.Hub
	eventStore *events.Store
	warnings   *services.SystemWarningsService

	httpServer *http.Server
}

// ServerDeps bundles the collaborators the handlers depend on. Pool and
// Warnings may be nil on API-only replicas; the health endpoints degrade
// accordingly.
type ServerDeps struct {
	DB         *database.Client
	Scaffolder *services.Scaffolder
	Admission  *services.AdmissionService
	Bridge     *services.SupervisionBridge
	Tickets    *services.TicketService
	Inline     *queue.InlineRunner
	Pool       *queue.WorkerPool
	Hub        *progress.Hub
	EventStore *events.Store
	Warnings   *services.SystemWarningsService
}

// NewServer creates the HTTP server.
func NewServer(cfg *config.Config, deps ServerDeps) *Server {
	return &Server{
		cfg:        cfg,
		dbClient:   deps.DB,
		scaffolder: deps.Scaffolder,
		admission:  deps.Admission,
		bridge:     deps.Bridge,
		tickets:    deps.Tickets,
		inline:     deps.Inline,
		pool:       deps.Pool,
		hub:        deps.Hub,
		eventStore: deps.EventStore,
		warnings:   deps.Warnings,
	}
}

// Handler builds the routing tree. Exposed separately from Start so tests
// can drive the full middleware stack through httptest.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(), gin.Recovery(), securityHeaders())

	// Health endpoints are unauthenticated so orchestrators can probe
	// them without credentials.
	router.GET("/health", s.healthHandler)
	router.GET("/health/db", s.healthDBHandler)
	router.GET("/health/queue", s.healthQueueHandler)

	authed := router.Group("/api", authMiddleware(s.cfg.Auth))

	authed.POST("/projects/scaffold", s.scaffoldProjectHandler)
	authed.POST("/agents/run", s.runAgentHandler)
	authed.POST("/work/queue", s.queueWorkHandler)
	authed.GET("/work/tickets/:id", s.getTicketHandler)
	authed.GET("/work/tickets/:id/stream", s.streamTicketHandler)
	authed.POST("/tp/chat", s.tpChatHandler)

	supervision := authed.Group("/supervision/baskets/:basket/outputs")
	supervision.GET("", s.listOutputsHandler)
	supervision.POST("/:output/approve", s.approveOutputHandler)
	supervision.POST("/:output/reject", s.rejectOutputHandler)
	supervision.POST("/:output/request-revision", s.requestRevisionHandler)
	supervision.POST("/:output/promote", s.promoteOutputHandler)
	supervision.POST("/:output/skip-promotion", s.skipPromotionHandler)

	return router
}

// Start begins serving on addr and blocks until the listener closes.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests. Open SSE streams are not waited
// for; they end at their own bound.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
