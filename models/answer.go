package models

import "time"

// Answer is a response attached to exactly one [Question].
//
// The same shape is used for every answer returned by the API:
// QuestionID, UserID and CreatedAt are always present and always
// assigned by the server.
type Answer struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"question_id"`
	UserID     int64     `json:"user_id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Answer model.
func (a Answer) TableName() string {
	return "answers"
}
