package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/cbodonnell/bomberman/pkg/api/handlers"
	"github.com/cbodonnell/bomberman/pkg/api/middleware"
	"github.com/cbodonnell/bomberman/pkg/log"
	"github.com/gorilla/mux"
)

// APIServer exposes the session state for local debugging.
type APIServer struct {
	server *http.Server
}

type NewAPIServerOptions struct {
	Addr    string
	Session handlers.SessionController
}

// NewAPIServer creates a new http.Server for the debug endpoints
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	return &APIServer{
		server: &http.Server{
			Addr:    opts.Addr,
			Handler: NewRouter(opts.Session),
		},
	}
}

// NewRouter returns the debug routes for the given session.
func NewRouter(session handlers.SessionController) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Logging, middleware.CORS)
	r.HandleFunc("/healthz", handlers.HandleHealthz()).Methods(http.MethodGet)
	r.HandleFunc("/status", handlers.HandleStatus(session)).Methods(http.MethodGet)
	r.HandleFunc("/reconnect", handlers.HandleReconnect(session)).Methods(http.MethodPost)
	r.HandleFunc("/identity", handlers.HandleUpdateIdentity(session)).Methods(http.MethodPost)
	return r
}

// Start starts the APIServer
func (s *APIServer) Start() {
	log.Info("Debug server listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("Debug server closed")
			return
		}
		log.Error("Debug server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
