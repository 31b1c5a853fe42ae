// Package server exposes lookups and selections over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tubegrab/tubegrab/downloader"
	"github.com/tubegrab/tubegrab/log"
)

type Config struct {
	Service downloader.Runner
	// Token, when set, is required in the X-API-Key header on /v1.
	Token string
}

// NewRouter builds the gin engine.
func NewRouter(cfg Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(LoggingMiddleware())
	r.Use(cors.Default())

	r.GET("/healthz", Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := &videoHandler{service: cfg.Service}

	v1 := r.Group("/v1")
	v1.Use(TokenMiddleware(cfg.Token))
	v1.GET("/video", h.Lookup)
	v1.GET("/download", h.Resolve)

	return r
}

// Serve listens on addr until ctx is done.
func Serve(ctx context.Context, addr string, cfg Config) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
