package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
)

// StructValidator validates request models through their `validate` struct
// tags. Failures are reported under the field's JSON name.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a Validator with the non-standard notblank
// rule registered.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	// only fails for an empty tag or a nil func
	_ = v.RegisterValidation("notblank", nonstandard.NotBlank)

	return &StructValidator{validate: v}
}

// Validate checks obj (a struct or pointer to struct). When fields are
// given, only failures of those JSON field names are reported.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	result := &ValidationError{Fields: make(map[string][]string)}
	for _, fe := range fieldErrs {
		name := fe.Field()
		if len(fields) > 0 && !slices.Contains(fields, name) {
			continue
		}
		result.Fields[name] = append(result.Fields[name], messageFor(fe))
	}

	if len(result.Fields) == 0 {
		return nil
	}

	return result
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "notblank":
		return MsgNotBlank
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	default:
		return MsgInvalid
	}
}
