package validators

import (
	"errors"
	"sort"
	"strings"

	"github.com/MKhiriev/go-qa-board/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrValidation      = errors.New("validation failed")
)

// Messages reported per failed rule.
const (
	MsgRequired  = "This field is required."
	MsgNotBlank  = "This field may not be blank."
	MsgNotString = "Not a valid string."
	MsgInvalid   = "This field is invalid."
)

// ValidationError carries the field-keyed messages of a failed validation.
// It matches [ErrValidation] with [errors.Is].
type ValidationError struct {
	Fields models.ValidationErrors
}

// NewFieldError builds a ValidationError for a single field.
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: models.ValidationErrors{field: {message}}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], " "))
	}

	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
