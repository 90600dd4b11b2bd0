package store

// ErrorClassification tells repositories how a failed statement relates to
// the schema's integrity constraints.
type ErrorClassification int

const (
	// Unclassified is any error that is not a known constraint violation.
	Unclassified ErrorClassification = iota

	// UniqueViolation means a UNIQUE or PRIMARY KEY constraint rejected the row.
	UniqueViolation

	// ForeignKeyViolation means the row references a parent that does not exist.
	ForeignKeyViolation

	// NotNullViolation means a required column was NULL.
	NotNullViolation
)

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case NotNullViolation:
		return "not_null_violation"
	default:
		return "unclassified"
	}
}
