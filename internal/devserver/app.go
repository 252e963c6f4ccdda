// Package devserver runs the in-memory Jobly backend as a standalone HTTP
// server for local development of the CLI.
package devserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/jobly/internal/devserver/config"
	"github.com/dmitrijs2005/jobly/internal/logging"
	"github.com/dmitrijs2005/jobly/internal/testutil/fakeapi"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	backend *fakeapi.Server
}

// NewApp builds a seeded backend for cfg.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	backend := fakeapi.New([]byte(c.SecretKey), logger.With("module", "fakeapi"))
	if err := backend.Seed(); err != nil {
		return nil, fmt.Errorf("seed error: %w", err)
	}
	return &App{config: c, logger: logger, backend: backend}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Serve accepts connections on l until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (app *App) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{Handler: app.backend.Handler()}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "Starting HTTP server", "address", l.Addr().String())
		errCh <- srv.Serve(l)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	l, err := net.Listen("tcp", app.config.ListenAddr)
	if err != nil {
		return err
	}
	return app.Serve(ctx, l)
}
