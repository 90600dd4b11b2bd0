// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the question/answer API.
//
// [ServerAdapter] decouples the command-line client from the transport; the
// package ships an HTTP/REST implementation ([NewHTTPServerAdapter]) built
// on resty that sends the shared API key with every request.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrForbidden] for a rejected API key).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-qa-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// question/answer server.
type ServerAdapter interface {
	// ListQuestions returns every question.
	ListQuestions(ctx context.Context) ([]models.Question, error)

	// CreateQuestion posts a new question and returns it as stored.
	CreateQuestion(ctx context.Context, text string) (models.Question, error)

	// GetQuestion returns the question together with its answers.
	GetQuestion(ctx context.Context, questionID int64) (models.QuestionDetails, error)

	// DeleteQuestion removes the question and, on the server, every answer
	// attached to it.
	DeleteQuestion(ctx context.Context, questionID int64) error

	// CreateAnswer posts an answer under the given question.
	CreateAnswer(ctx context.Context, questionID int64, text string) (models.Answer, error)

	GetAnswer(ctx context.Context, answerID int64) (models.Answer, error)

	DeleteAnswer(ctx context.Context, answerID int64) error

	// GetServerVersion returns the build information reported by the server.
	GetServerVersion(ctx context.Context) (models.AppInfo, error)
}
