// Package store implements the persistence layer of the application.
// It defines the repository contracts consumed by the service layer and
// provides a PostgreSQL-backed implementation plus an in-memory one used
// when no database is configured.
package store

import (
	"context"

	"github.com/krazykeith/apistarter/models"
)

// PersonRepository is the persistence capability consumed by the person
// service.
//
// Save assigns a PersonID on first save (zero PersonID means insert) and
// refreshes UpdatedAt on every save. GetOne returns [ErrPersonNotFound] when
// no record matches. Search with an empty query returns the unfiltered
// result set; zero matches is a successful empty slice, never an error.
type PersonRepository interface {
	Search(ctx context.Context, query string) ([]models.Person, error)
	GetOne(ctx context.Context, id int64) (models.Person, error)
	Save(ctx context.Context, person models.Person) (models.Person, error)
}
