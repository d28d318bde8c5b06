// Package server assembles the HTTP surface: router, middleware stack, huma API
// and the http.Server lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/pipeline-api/internal/http/api/info"
	"github.com/janisto/pipeline-api/internal/http/routes"
	"github.com/janisto/pipeline-api/internal/platform/config"
	applog "github.com/janisto/pipeline-api/internal/platform/logging"
	appmiddleware "github.com/janisto/pipeline-api/internal/platform/middleware"
	"github.com/janisto/pipeline-api/internal/platform/respond"
)

const (
	// Title is the OpenAPI title of the service.
	Title = "FastAPI Service"
	// Description is the OpenAPI description of the service.
	Description = "FastAPI backend for DevOps Pipeline"
	// DocsPath serves the rendered API reference.
	DocsPath = "/api-docs"
	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	ShutdownTimeout = 10 * time.Second

	maxRequestBytes = 1 << 20 // 1 MB
)

// NewRouter builds the complete handler: middleware stack, problem-detail
// fallbacks and every route. It can be embedded in another server or test.
func NewRouter(cfg config.Config) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(DocsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP / X-Forwarded-For; deploy behind a trusted proxy only.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(maxRequestBytes),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	api := newAPI(router)
	routes.Register(api, cfg)
	return router
}

func newAPI(router chi.Router) huma.API {
	cfg := huma.DefaultConfig(Title, info.Version)
	cfg.Info.Description = Description
	cfg.DocsPath = DocsPath
	// Response bodies carry only their declared fields, no $schema link.
	cfg.CreateHooks = nil

	api := humachi.New(router, cfg)
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, addCBORContent)
	return api
}

// addCBORContent advertises application/cbor wherever an operation documents JSON.
func addCBORContent(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}

// New returns an http.Server bound to the configured address with conservative
// timeouts.
func New(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}

// Run binds srv.Addr and serves until ctx is cancelled. A bind failure is
// returned immediately.
func Run(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}
	return Serve(ctx, srv, ln, shutdownTimeout)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts srv down,
// waiting at most shutdownTimeout for in-flight requests.
func Serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		applog.LogInfo(ctx, "server listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
		applog.LogInfo(context.WithoutCancel(ctx), "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	applog.LogInfo(shutdownCtx, "server exited")
	return nil
}
