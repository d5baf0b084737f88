// Package server serves the wasm front-end, its embedded assets and a small
// status API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
	oteltrace "go.opentelemetry.io/otel/trace"

	"frontend/config"
	"frontend/logger"
	"frontend/ui"
	"frontend/web"
)

const shutdownTimeout = 5 * time.Second

// New builds the HTTP handler. tracer may be nil.
func New(cfg config.Config, tracer oteltrace.Tracer) http.Handler {
	// Register the pages on the server side too for correct routing generation
	ui.Register()

	handler := &app.Handler{
		Name:         cfg.Server.Name,
		ShortName:    cfg.Server.Name,
		Title:        cfg.Server.Name,
		Description:  cfg.Server.Description,
		Version:      cfg.Server.Version,
		LoadingLabel: "",
		HTML: func() app.HTMLHtml {
			return app.Html().DataSet("theme", "light")
		},
		Styles: []string{
			web.StylesPath,
		},
		Scripts: []string{
			cfg.Assets.LottieScript,
		},
	}

	mux := http.NewServeMux()
	mux.Handle("/assets/", http.FileServer(http.FS(web.Assets)))
	mux.HandleFunc("/api/status", statusHandler(cfg.Server.Version))
	mux.HandleFunc("/api/logs", logsHandler)
	mux.Handle("/", pageStatus(handler))

	return instrument(tracer, mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg config.Config) error {
	tp, err := NewTracerProvider(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}

	var tracer oteltrace.Tracer
	if tp != nil {
		tracer = tp.Tracer("frontend/server")
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Warn("Tracing shutdown: %v", err)
			}
		}()
		logger.Info("Exporting traces to %s", cfg.Telemetry.OTLPEndpoint)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           New(cfg, tracer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("Starting %s on %s...", cfg.Server.Name, cfg.Server.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down %s", cfg.Server.Name)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
