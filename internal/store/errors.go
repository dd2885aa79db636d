package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against
// these values.
var (
	// ErrPenggunaNotFound is returned when an update or delete targets a
	// row id that does not exist in the data_pengguna table.
	ErrPenggunaNotFound = errors.New("data pengguna was not found")

	// ErrPenggunaNotSaved is returned when an INSERT completes without
	// error but no row was actually persisted.
	ErrPenggunaNotSaved = errors.New("data pengguna was not saved")

	// ErrConstraintViolation is returned when the database rejects a row
	// because of an integrity constraint (e.g. a NOT NULL column).
	ErrConstraintViolation = errors.New("data pengguna violates a table constraint")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan data pengguna row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan data pengguna rows")
)
