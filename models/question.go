// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Question is a top-level item posted to the board that other clients answer.
type Question struct {
	// ID is the server-assigned, monotonically increasing identifier.
	ID int64 `json:"id"`

	// Text is the question body. Never empty once persisted.
	Text string `json:"text"`

	// CreatedAt is assigned by the database on insert and never changes.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Question model.
func (q Question) TableName() string {
	return "questions"
}

// QuestionDetails is the aggregate view returned for a single question:
// the question itself together with every answer attached to it.
type QuestionDetails struct {
	Question Question `json:"question"`
	Answers  []Answer `json:"answers"`
}
