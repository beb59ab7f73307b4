// Package api provides the HTTP REST API and WebSocket server for Areawatch.
//
// It exposes the reconciled sensor catalog, the merged telemetry cache with
// disconnection sets, the notification queue, warning rule CRUD, and operator
// messages to presentation clients.
//
// The server follows the same lifecycle pattern as other infrastructure
// components:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
//
// Thread Safety: All methods are safe for concurrent use from multiple goroutines.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/areawatch/areawatch-core/internal/infrastructure/config"
	"github.com/areawatch/areawatch-core/internal/infrastructure/logging"
	"github.com/areawatch/areawatch-core/internal/notify"
	"github.com/areawatch/areawatch-core/internal/poll"
	"github.com/areawatch/areawatch-core/internal/sensor"
	"github.com/areawatch/areawatch-core/internal/telemetry"
	"github.com/areawatch/areawatch-core/internal/upstream"
	"github.com/areawatch/areawatch-core/internal/warning"
)

// gracefulShutdownTimeout is the maximum time to wait for in-flight requests
// to complete during shutdown.
const gracefulShutdownTimeout = 10 * time.Second

// SessionValidator checks a bearer token with the external accounts
// service. It is the identity path when no shared JWT secret is configured.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*upstream.Session, error)
}

// Deps holds the dependencies required by the API server.
type Deps struct {
	Config   config.APIConfig
	WS       config.WebSocketConfig
	Security config.SecurityConfig
	Logger   *logging.Logger
	Catalog  *sensor.Catalog
	Cache    *telemetry.Cache
	History  *telemetry.History
	Queue    *notify.Queue
	Rules    warning.Repository
	Messages *poll.MessageStore
	Site     upstream.SiteContent
	Sessions SessionValidator
	Version  string
}

// Server is the HTTP API server for Areawatch.
//
// It manages the HTTP listener, routes, middleware, and WebSocket hub.
// The server is created with New() and started with Start().
type Server struct {
	cfg      config.APIConfig
	wsCfg    config.WebSocketConfig
	secCfg   config.SecurityConfig
	logger   *logging.Logger
	catalog  *sensor.Catalog
	cache    *telemetry.Cache
	history  *telemetry.History
	queue    *notify.Queue
	rules    warning.Repository
	messages *poll.MessageStore
	site     upstream.SiteContent
	sessions SessionValidator
	version  string
	server   *http.Server
	hub      *Hub
	cancel   context.CancelFunc
}

// New creates a new API server with the given dependencies.
//
// The server is not started until Start() is called.
//
// Parameters:
//   - deps: Required dependencies (config, logger, catalog, cache, queue)
//
// Returns:
//   - *Server: Configured server ready to start
//   - error: If required dependencies are missing
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if deps.Catalog == nil {
		return nil, fmt.Errorf("sensor catalog is required")
	}
	if deps.Cache == nil {
		return nil, fmt.Errorf("telemetry cache is required")
	}
	if deps.Queue == nil {
		return nil, fmt.Errorf("notification queue is required")
	}
	if deps.Rules == nil {
		return nil, fmt.Errorf("warning rule repository is required")
	}

	return &Server{
		cfg:      deps.Config,
		wsCfg:    deps.WS,
		secCfg:   deps.Security,
		logger:   deps.Logger.With("component", "api"),
		catalog:  deps.Catalog,
		cache:    deps.Cache,
		history:  deps.History,
		queue:    deps.Queue,
		rules:    deps.Rules,
		messages: deps.Messages,
		site:     deps.Site,
		sessions: deps.Sessions,
		version:  deps.Version,
	}, nil
}

// Start begins listening for HTTP connections.
//
// It sets up the router, starts the WebSocket hub, hooks the notification
// queue and telemetry cache for real-time WebSocket broadcast, and launches
// the HTTP listener in a background goroutine. The server can be stopped
// with Close().
//
// Parameters:
//   - ctx: Context for cancellation (not used for listener lifetime)
//
// Returns:
//   - error: If the server fails to start (port in use, etc.)
func (s *Server) Start(ctx context.Context) error {
	// Internal context so Close() can stop background goroutines
	// independently of the parent context.
	var srvCtx context.Context
	srvCtx, s.cancel = context.WithCancel(ctx)

	s.hub = NewHub(s.wsCfg, s.logger)
	go s.hub.Run(srvCtx)

	// Accepted notifications and merged telemetry fan out to subscribed
	// WebSocket clients as they happen.
	s.queue.SetOnAdd(func(entry notify.Entry) {
		s.hub.Broadcast(ChannelNotification, entry)
	})
	s.cache.SetOnMerge(func(areas map[string]*telemetry.AreaSnapshot, disconnected map[string][]sensor.Key) {
		s.hub.Broadcast(ChannelAreas, areas)
		s.hub.Broadcast(ChannelDisconnections, disconnected)
	})

	router := s.buildRouter()

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:           router,
		ReadTimeout:       time.Duration(s.cfg.Timeouts.Read) * time.Second,
		ReadHeaderTimeout: time.Duration(s.cfg.Timeouts.Read) * time.Second,
		WriteTimeout:      time.Duration(s.cfg.Timeouts.Write) * time.Second,
		IdleTimeout:       time.Duration(s.cfg.Timeouts.Idle) * time.Second,
	}

	go func() {
		var err error
		if s.cfg.TLS.Enabled {
			s.logger.Info("API server starting with TLS",
				"address", s.server.Addr,
				"cert", s.cfg.TLS.CertFile,
			)
			err = s.server.ListenAndServeTLS(s.cfg.TLS.CertFile, s.cfg.TLS.KeyFile)
		} else {
			s.logger.Info("API server starting", "address", s.server.Addr)
			err = s.server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server error", "error", err)
		}
	}()

	return nil
}

// Close gracefully shuts down the API server.
//
// It waits up to 10 seconds for in-flight requests to complete,
// then forcefully closes remaining connections.
//
// Returns:
//   - error: If shutdown encounters an error
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}

	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	s.logger.Info("API server shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down API server: %w", err)
	}
	return nil
}

// HealthCheck verifies the API server is running and responsive.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//
// Returns:
//   - error: nil if healthy, error describing the issue otherwise
func (s *Server) HealthCheck(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("api health check: %w", ctx.Err())
	default:
	}

	if s.server == nil {
		return fmt.Errorf("api server not started")
	}

	return nil
}
