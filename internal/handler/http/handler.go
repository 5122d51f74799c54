package http

import (
	"github.com/krazykeith/apistarter/internal/config"
	"github.com/krazykeith/apistarter/internal/logger"
	"github.com/krazykeith/apistarter/internal/mapper"
	"github.com/krazykeith/apistarter/internal/service"
)

// Handler aggregates everything the HTTP transport needs: the versioned
// person handlers (each holding only the invoker and the mapper), the
// services consumed by unversioned endpoints, and the settings driving the
// middleware stack. All fields are read-only after construction.
type Handler struct {
	services *service.Services

	personV1 *personV1
	personV2 *personV2

	signKey     []byte
	issuer      string
	audience    string
	environment string
	uploadsDir  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, personMapper *mapper.PersonMapper, cfg *config.StructuredConfig, signKey []byte, logger *logger.Logger) *Handler {
	base := personBase{
		invoker: NewInvoker(cfg.App.IsDevelopment()),
		mapper:  personMapper,
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		personV1:    newPersonV1(base),
		personV2:    newPersonV2(base, services.PersonService),
		signKey:     signKey,
		issuer:      cfg.Auth.Issuer,
		audience:    cfg.Auth.Audience,
		environment: cfg.App.Environment,
		uploadsDir:  cfg.Storage.Files.UploadsDir,
		logger:      logger,
	}
}
