package service

import (
	"github.com/krazykeith/apistarter/internal/config"
	"github.com/krazykeith/apistarter/internal/logger"
	"github.com/krazykeith/apistarter/internal/store"
)

// Services aggregates all business services consumed by the transport layer.
type Services struct {
	PersonService  PersonService
	AppInfoService AppInfoService
}

// NewServices wires every service to its storage dependencies.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		PersonService:  NewPersonService(storages.PersonRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
