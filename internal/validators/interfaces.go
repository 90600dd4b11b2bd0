// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks question and answer request bodies before they
// reach storage.
//
// Failures come back as a [*ValidationError] whose Fields map is written
// verbatim as the 400 response body, e.g. {"text": ["This field is required."]}.
// Every such error matches [ErrValidation] under errors.Is.
package validators

import "context"

// Validator checks a request model. fields narrows the report to the named
// JSON fields; with none given every failing field is reported.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
