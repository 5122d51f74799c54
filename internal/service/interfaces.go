package service

import (
	"context"

	"github.com/krazykeith/apistarter/models"
)

// PersonService is the business capability behind the person endpoints.
//
// All failures are raised as classified errors from internal/apperr (or
// wrapped low-level errors for unclassified infrastructure failures); the
// HTTP invoker is the only layer translating them to transport status codes.
type PersonService interface {
	// Search returns all persons matching the free-text query. An empty
	// query returns the unfiltered result set; zero matches is a
	// successful empty slice, never a not-found failure.
	Search(ctx context.Context, query string) ([]models.Person, error)

	// GetOne retrieves a person by identifier, failing with a classified
	// not-found error when no such person exists.
	GetOne(ctx context.Context, id int64) (models.Person, error)

	// Save validates and persists the person. A zero PersonID creates a
	// new record (the returned person carries the assigned identifier);
	// a non-zero PersonID updates the existing record and fails with a
	// classified not-found error when it no longer exists.
	Save(ctx context.Context, person models.Person) (models.Person, error)
}

// AppInfoService exposes build/runtime information about the application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
