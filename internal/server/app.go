// Package server wires the registry application: it opens the configured
// record backend, builds the enricher and registry services, and runs the
// HTTP and gRPC front ends until a shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/registre/internal/logging"
	"github.com/dmitrijs2005/registre/internal/server/config"
	"github.com/dmitrijs2005/registre/internal/server/enrich"
	"github.com/dmitrijs2005/registre/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/registre/internal/server/services"
	"github.com/dmitrijs2005/registre/internal/server/web"

	gs "github.com/dmitrijs2005/registre/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	store    *repomanager.Store
	registry *services.Registry
}

var openStore = repomanager.Open

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	store, err := openStore(context.Background(), c)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	if c.GeminiAPIKey == "" {
		logger.Warn(context.Background(), "GEMINI_API_KEY is not set, generated profiles will use the fallback")
	}

	enricher := enrich.NewGeminiEnricher(enrich.GeminiOptions{
		APIKey:  c.GeminiAPIKey,
		Model:   c.GeminiModel,
		BaseURL: c.GeminiBaseURL,
		Timeout: c.EnrichTimeout,
	}, logger.With("module", "enricher"))

	rs := services.NewRecordStore(store.Records, logger.With("module", "record_store"))
	registry := services.NewRegistry(rs, enricher, logger.With("module", "registry"))

	return &App{config: c, logger: logger, store: store, registry: registry}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := web.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.registry)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.registry)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a shutdown signal arrives or one of the
// servers fails, then closes the record backend.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "backend", app.config.Backend)

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "error closing store", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
