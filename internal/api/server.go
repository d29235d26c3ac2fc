package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"formedit/internal/config"
)

const shutdownGrace = 5 * time.Second

// Serve runs the editor API on the configured address until the context is
// cancelled, then drains in-flight requests before returning.
func Serve(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		return errors.New("api: context is nil")
	}
	if cfg.Server.Addr == "" {
		return errors.New("api: server.addr is required")
	}

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: NewHandler(),
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err = <-errCh
	}
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
