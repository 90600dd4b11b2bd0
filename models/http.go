package models

// QuestionRequest is the body accepted by POST /questions.
//
// Only Text is client supplied; identifiers and timestamps sent by the
// client are not part of the request and are silently dropped on decode.
type QuestionRequest struct {
	Text string `json:"text" validate:"required,notblank"`
}

// AnswerRequest is the body accepted by POST /questions/{id}/answers.
// The owning question comes from the URL and the author is assigned by
// the server.
type AnswerRequest struct {
	Text string `json:"text" validate:"required,notblank"`
}
