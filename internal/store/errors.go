package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPartnerAlreadyExists is returned when a partner registration
	// collides with an existing partner name.
	ErrPartnerAlreadyExists = errors.New("partner already exists")

	// ErrPartnerNotFound is returned when a query targets a partner that
	// does not exist in the database.
	ErrPartnerNotFound = errors.New("partner was not found")

	// ErrFileNotFound is returned when a query or update targets a file
	// that does not exist in the database.
	ErrFileNotFound = errors.New("file was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
