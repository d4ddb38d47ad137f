package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// newHTTPServer leaves WriteTimeout unset when requests have no deadline
func newHTTPServer(addr string, engine *gin.Engine, writeTimeout time.Duration) *http.Server {
	srv := &http.Server{
		Addr:        addr,
		Handler:     engine,
		ReadTimeout: 30 * time.Second,
		IdleTimeout: 60 * time.Second,
	}
	if writeTimeout > 0 {
		srv.WriteTimeout = writeTimeout + 5*time.Second
	}
	return srv
}

// Run serves engine on addr until ctx is cancelled, then shuts down gracefully
func Run(ctx context.Context, addr string, engine *gin.Engine, writeTimeout time.Duration, log *zap.Logger) error {
	srv := newHTTPServer(addr, engine, writeTimeout)

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	log.Info("Server exited")
	return nil
}
