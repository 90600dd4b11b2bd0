package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrQuestionNotFound is returned when no question exists with the
	// requested id, including when an answer is inserted for a question that
	// was deleted in the meantime.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrAnswerNotFound is returned when no answer exists with the requested id.
	ErrAnswerNotFound = errors.New("answer not found")

	// ErrUserNotFound is returned when no user exists with the requested username.
	ErrUserNotFound = errors.New("user not found")

	// ErrUnsupportedDriver is returned by [NewStorages] for an unknown driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or a statement
	// with a RETURNING clause fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// without result rows (DELETE, INSERT ... DO NOTHING) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrConstraintViolation is returned for integrity errors that have no
	// more specific domain meaning.
	ErrConstraintViolation = errors.New("constraint violation")
)
