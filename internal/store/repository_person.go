package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/krazykeith/apistarter/internal/logger"
	"github.com/krazykeith/apistarter/models"
)

// personRepository is the PostgreSQL-backed implementation of
// [PersonRepository]. It operates on the "persons" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type personRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPersonRepository constructs a [PersonRepository] backed by the provided
// database connection and logger.
func NewPersonRepository(db *DB, logger *logger.Logger) PersonRepository {
	logger.Debug().Msg("creating person repository")
	return &personRepository{
		db:     db,
		logger: logger,
	}
}

// Search returns all persons matching the free-text query (case-insensitive
// match against first name, last name, and e-mail). An empty query returns
// the unfiltered result set. Zero matches yields an empty slice, not an
// error.
func (r *personRepository) Search(ctx context.Context, query string) ([]models.Person, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildSearchPersonsQuery(query)
	if err != nil {
		log.Err(err).Str("func", "*personRepository.Search").Msg("error building search query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*personRepository.Search").Str("pg_code", postgresError(err)).Msg("error executing search query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	persons := make([]models.Person, 0)
	for rows.Next() {
		var person models.Person
		if err := scanPerson(rows.Scan, &person); err != nil {
			log.Err(err).Str("func", "*personRepository.Search").Msg("error scanning person row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		persons = append(persons, person)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*personRepository.Search").Msg("error iterating person rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return persons, nil
}

// GetOne retrieves a single person by identifier.
// Returns [ErrPersonNotFound] when no record matches.
func (r *personRepository) GetOne(ctx context.Context, id int64) (models.Person, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildGetPersonQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*personRepository.GetOne").Msg("error building get query")
		return models.Person{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var person models.Person
	row := r.db.QueryRowContext(ctx, sqlQuery, args...)
	if err := scanPerson(row.Scan, &person); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Person{}, ErrPersonNotFound
		}

		log.Err(err).Str("func", "*personRepository.GetOne").Int64("person_id", id).Msg("error scanning person row")
		return models.Person{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return person, nil
}

// Save persists the given person and returns the canonical stored
// representation. A zero PersonID selects INSERT (the database assigns the
// identifier); a non-zero PersonID selects a full-row UPDATE.
// Updating a person that no longer exists returns [ErrPersonNotFound].
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyRegistered].
//   - UPDATE ... RETURNING on a missing row → [ErrPersonNotFound].
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *personRepository) Save(ctx context.Context, person models.Person) (models.Person, error) {
	log := logger.FromContext(ctx)

	var sqlQuery string
	var args []any
	var err error

	if person.PersonID == 0 {
		sqlQuery, args, err = buildInsertPersonQuery(person)
	} else {
		sqlQuery, args, err = buildUpdatePersonQuery(person)
	}
	if err != nil {
		log.Err(err).Str("func", "*personRepository.Save").Msg("error building save query")
		return models.Person{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.Person
	row := r.db.QueryRowContext(ctx, sqlQuery, args...)
	if err := scanPerson(row.Scan, &saved); err != nil {
		// An UPDATE ... RETURNING on a missing row yields no rows.
		if errors.Is(err, sql.ErrNoRows) {
			if person.PersonID != 0 {
				return models.Person{}, ErrPersonNotFound
			}
			return models.Person{}, ErrPersonNotSaved
		}

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Person{}, ErrEmailAlreadyRegistered
		default:
			log.Err(err).Str("func", "*personRepository.Save").Str("pg_code", postgresError(err)).Msg("error scanning saved person")
			return models.Person{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}

	return saved, nil
}

// scanPerson scans one person row in the canonical personColumns order.
func scanPerson(scan func(dest ...any) error, person *models.Person) error {
	return scan(
		&person.PersonID,
		&person.FirstName,
		&person.LastName,
		&person.Email,
		&person.Phone,
		&person.CreatedAt,
		&person.UpdatedAt,
	)
}
