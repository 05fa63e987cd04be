package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"turnos-backend/internal/config"
	"turnos-backend/internal/service/export"
	"turnos-backend/internal/service/planning"
	"turnos-backend/internal/service/projection"
	"turnos-backend/internal/storage/mysql"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustConfig()

	log := setupLogger(cfg.Env)

	storage, err := mysql.New(*cfg)
	if err != nil {
		log.Error("no se pudo abrir la base de datos", "error", err)
		os.Exit(1)
	}
	defer storage.Close()

	planningService := planning.NewService(storage)
	projectionService := projection.NewService(log, storage)
	exportService := export.NewService(log, storage, export.NewDocumentSink())

	log.Info("servidor iniciado", slog.String("address", cfg.Address))

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, storage, planningService, projectionService, exportService),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Error("el servidor no pudo arrancar", "error", err)
	}

	log.Error("servidor detenido")
}

// dualHandler escribe todo a stdout y duplica los errores en un archivo.
type dualHandler struct {
	coreHandler  slog.Handler
	errorHandler slog.Handler
}

func (h *dualHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.coreHandler.Enabled(ctx, lvl) || h.errorHandler.Enabled(ctx, lvl)
}

func (h *dualHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error

	if h.coreHandler.Enabled(ctx, r.Level) {
		if err = h.coreHandler.Handle(ctx, r); err != nil {
			return err
		}
	}

	if r.Level >= slog.LevelError && h.errorHandler.Enabled(ctx, r.Level) {
		// Una falla al escribir el archivo no debe botar el log principal.
		_ = h.errorHandler.Handle(ctx, r.Clone())
	}

	return err
}

func (h *dualHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithAttrs(attrs),
		errorHandler: h.errorHandler.WithAttrs(attrs),
	}
}

func (h *dualHandler) WithGroup(name string) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithGroup(name),
		errorHandler: h.errorHandler.WithGroup(name),
	}
}

func setupLogger(env string) *slog.Logger {
	level := slog.LevelDebug
	if env == envProd {
		level = slog.LevelInfo
	}

	var coreHandler slog.Handler
	switch env {
	case envDev:
		coreHandler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	default:
		coreHandler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	errorFile, err := os.OpenFile("errors.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		slog.Warn("no se pudo abrir el archivo de errores", "error", err)
		return slog.New(coreHandler)
	}

	errorHandler := slog.NewTextHandler(errorFile, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	return slog.New(&dualHandler{
		coreHandler:  coreHandler,
		errorHandler: errorHandler,
	})
}
