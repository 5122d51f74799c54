// Package handler aggregates the transport handlers of the application.
package handler

import (
	"github.com/krazykeith/apistarter/internal/config"
	"github.com/krazykeith/apistarter/internal/handler/http"
	"github.com/krazykeith/apistarter/internal/logger"
	"github.com/krazykeith/apistarter/internal/mapper"
	"github.com/krazykeith/apistarter/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, personMapper *mapper.PersonMapper, cfg *config.StructuredConfig, signKey []byte, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, personMapper, cfg, signKey, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
