// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// question/answer server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidAPIKey is returned with 403 when X-API-KEY is absent or
	// does not match the configured secret.
	MsgInvalidAPIKey = "invalid API key"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidGzip is returned when a request declares gzip encoding but
	// the body is not a gzip stream.
	MsgInvalidGzip = "invalid gzip data"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "not found"

	// MsgMethodNotAllowed is a format string taking the request method.
	MsgMethodNotAllowed = "method %s not allowed"

	// MsgQuestionNotFound is a format string taking the id as written in
	// the request path.
	MsgQuestionNotFound = "question with id=%s not found"

	// MsgAnswerNotFound is a format string taking the id as written in
	// the request path.
	MsgAnswerNotFound = "answer with id=%s not found"
)
