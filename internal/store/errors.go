package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPersonNotFound is returned when a query targets a person record
	// that does not exist in the store.
	ErrPersonNotFound = errors.New("person was not found")

	// ErrPersonNotSaved is returned when a save completes without a driver
	// error but no row was actually written.
	ErrPersonNotSaved = errors.New("person was not saved")

	// ErrEmailAlreadyRegistered is returned when a save violates the unique
	// e-mail constraint on the persons table.
	ErrEmailAlreadyRegistered = errors.New("email is already registered")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan person row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan person rows")
)
