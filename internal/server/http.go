package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/krazykeith/apistarter/internal/config"
	"github.com/krazykeith/apistarter/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

// newHTTPServer wraps the router in the configured per-request timeout.
// http.TimeoutHandler cancels the request context on expiry, which downstream
// code observes to stop work and skip writing a response.
func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	var h http.Handler = router
	if cfg.RequestTimeout > 0 {
		h = http.TimeoutHandler(router, cfg.RequestTimeout, "request timed out")
	}

	return &httpServer{
		server: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: h,
		},
		logger: logger,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Msg("HTTP server ListenAndServe")
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
