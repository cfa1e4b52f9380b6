package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"PlanSync/config"
	"PlanSync/internal/controller/rest"
	"PlanSync/internal/controller/rest/handlers"
	"PlanSync/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Run bootstraps the HTTP server and blocks until SIGINT/SIGTERM.
func Run(cfg config.Config) error {
	logger.Setup(logger.Options{Level: cfg.LogLevel, Console: cfg.ConsoleLogs()})
	l := slog.Default()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	deps, err := Wire(cfg, l)
	if err != nil {
		return err
	}
	defer func() {
		if err := deps.Close(); err != nil {
			l.Error("Failed to close publisher", slog.Any("error", err))
		}
	}()

	gin.SetMode(gin.ReleaseMode)
	engine := NewGinEngine(l)

	router := rest.NewRouter(handlers.NewProductHandler(deps.Handler), deps.Health)
	router.SetUp(engine)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		l.Info("PlanSync HTTP server started", slog.Int("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app - Run - ListenAndServe: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		l.Info("Shutting down PlanSync HTTP server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	l.Info("PlanSync HTTP server stopped")
	return nil
}
