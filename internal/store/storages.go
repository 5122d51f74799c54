package store

import (
	"context"
	"fmt"

	"github.com/krazykeith/apistarter/internal/config"
	"github.com/krazykeith/apistarter/internal/logger"
	"github.com/krazykeith/apistarter/migrations"
)

// Storages aggregates all repositories used by the service layer.
type Storages struct {
	PersonRepository PersonRepository
}

// NewStorages selects and constructs the persistence backend from
// configuration: PostgreSQL when a DSN is configured (with embedded
// migrations applied), otherwise an in-memory store.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Warn().Msg("no database DSN configured, using in-memory person store")
		return &Storages{PersonRepository: NewMemoryPersonRepository(log)}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{PersonRepository: NewPersonRepository(db, log)}, nil
}
