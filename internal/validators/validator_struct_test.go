// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qa-board/models"
)

func TestNewStructValidator(t *testing.T) {
	require.NotNil(t, NewStructValidator())
}

func TestStructValidator_QuestionRequest(t *testing.T) {
	v := NewStructValidator()

	tests := []struct {
		name string
		req  any
		want models.ValidationErrors
	}{
		{name: "valid", req: models.QuestionRequest{Text: "What is Go?"}},
		{name: "valid pointer", req: &models.QuestionRequest{Text: "What is Go?"}},
		{name: "empty text", req: models.QuestionRequest{}, want: models.ValidationErrors{"text": {MsgRequired}}},
		{name: "whitespace text", req: models.QuestionRequest{Text: " \t\n "}, want: models.ValidationErrors{"text": {MsgNotBlank}}},
		{name: "answer whitespace", req: models.AnswerRequest{Text: "   "}, want: models.ValidationErrors{"text": {MsgNotBlank}}},
		{name: "answer valid", req: models.AnswerRequest{Text: "42"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.want, vErr.Fields)
		})
	}
}

func TestStructValidator_FieldScope(t *testing.T) {
	v := NewStructValidator()

	err := v.Validate(context.Background(), models.QuestionRequest{}, "other")
	assert.NoError(t, err)

	err = v.Validate(context.Background(), models.QuestionRequest{}, "text")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStructValidator_UnsupportedType(t *testing.T) {
	err := NewStructValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: models.ValidationErrors{
		"text": {MsgRequired},
		"b":    {"x", "y"},
	}}

	assert.Equal(t, "validation failed: b: x y; text: This field is required.", err.Error())
	assert.Equal(t, models.ValidationErrors{"text": {MsgNotString}}, NewFieldError("text", MsgNotString).Fields)
}
