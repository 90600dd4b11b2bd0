package store

import (
	"context"

	"github.com/MKhiriev/go-qa-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// QuestionRepository persists questions. Deleting a question removes its
// answers through the ON DELETE CASCADE foreign key of the answers table.
type QuestionRepository interface {
	CreateQuestion(ctx context.Context, question models.Question) (models.Question, error)
	ListQuestions(ctx context.Context) ([]models.Question, error)
	GetQuestion(ctx context.Context, questionID int64) (models.Question, error)
	DeleteQuestion(ctx context.Context, questionID int64) error
}

// AnswerRepository persists answers attached to questions.
type AnswerRepository interface {
	CreateAnswer(ctx context.Context, answer models.Answer) (models.Answer, error)
	GetAnswer(ctx context.Context, answerID int64) (models.Answer, error)
	ListAnswersByQuestion(ctx context.Context, questionID int64) ([]models.Answer, error)
	DeleteAnswer(ctx context.Context, answerID int64) error
}

// UserRepository persists authoring identities.
type UserRepository interface {
	// GetOrCreateUser returns the user with the given username, inserting it
	// first when it does not exist. Safe under concurrent first use: the
	// unique constraint on username decides the single winner.
	GetOrCreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}
