// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-qa-board/internal/app"
)

// Sentinel errors produced by the HTTP layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidAPIKey is written with 403 when X-API-KEY is absent or does
	// not match the configured secret.
	ErrInvalidAPIKey = errors.New(app.MsgInvalidAPIKey)

	// ErrInvalidJSON is returned when the request body is not valid JSON.
	ErrInvalidJSON = errors.New(app.MsgInvalidJSON)

	// ErrInvalidID is returned when a numeric path id does not fit int64.
	ErrInvalidID = errors.New("invalid id")
)
