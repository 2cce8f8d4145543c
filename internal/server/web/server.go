// Package web serves the registration page and the JSON API over HTTP.
package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/registre/internal/logging"
	"github.com/dmitrijs2005/registre/internal/server/models"
	"github.com/gorilla/mux"
)

// Registry is the set of registration operations the HTTP layer needs.
type Registry interface {
	List(ctx context.Context) []models.Record
	Register(ctx context.Context, firstName, lastName string) (*models.Record, error)
	RegisterWithProfile(ctx context.Context, firstName, lastName string) (*models.Record, error)
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
	GenerateProfile(ctx context.Context, firstName, lastName string) models.Profile
}

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address  string
	registry Registry
	logger   logging.Logger
}

func NewHTTPServer(address string, l logging.Logger, registry Registry) *HTTPServer {
	return &HTTPServer{
		address:  address,
		registry: registry,
		logger:   l.With("module", "http_server"),
	}
}

// Router builds the route table wrapped in the request logging middleware.
func (s *HTTPServer) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", s.homeHandler).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/records", s.submitHandler).Methods(http.MethodPost)
	r.HandleFunc("/records/clear", s.clearHandler).Methods(http.MethodPost)
	r.HandleFunc("/records/{id}/delete", s.deleteHandler).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/records", s.apiListHandler).Methods(http.MethodGet)
	api.HandleFunc("/records", s.apiAddHandler).Methods(http.MethodPost)
	api.HandleFunc("/records", s.apiClearHandler).Methods(http.MethodDelete)
	api.HandleFunc("/records/{id}", s.apiDeleteHandler).Methods(http.MethodDelete)
	api.HandleFunc("/profiles", s.apiProfileHandler).Methods(http.MethodPost)

	r.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("OK"))
	})

	return &logHandler{log: s.logger, next: r}
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
