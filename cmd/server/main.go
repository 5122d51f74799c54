package main

import (
	"context"
	"fmt"

	"github.com/krazykeith/apistarter/internal/config"
	"github.com/krazykeith/apistarter/internal/handler"
	"github.com/krazykeith/apistarter/internal/logger"
	"github.com/krazykeith/apistarter/internal/mapper"
	"github.com/krazykeith/apistarter/internal/server"
	"github.com/krazykeith/apistarter/internal/service"
	"github.com/krazykeith/apistarter/internal/store"
	"github.com/krazykeith/apistarter/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("apistarter-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	// The audience string doubles as the token signing secret. A missing
	// audience is fatal: authentication cannot function without a key.
	signKey, err := utils.DeriveSigningKey(cfg.Auth.Audience)
	if err != nil {
		log.Fatal().Err(err).Msg("error deriving token signing key")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	personMapper := mapper.NewPersonMapper()
	if err := personMapper.ValidateConfiguration(); err != nil {
		// Outside development, keep serving with degraded mapping rather
		// than refuse traffic.
		if cfg.App.IsDevelopment() {
			log.Fatal().Err(err).Msg("mapper configuration is invalid")
		}
		log.Warn().Err(err).Msg("mapper configuration is invalid, continuing")
	}

	handlers, err := handler.NewHandlers(services, personMapper, cfg, signKey, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
