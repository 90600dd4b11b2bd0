package service

import (
	"context"

	"github.com/MKhiriev/go-qa-board/models"
)

// QuestionService covers the question endpoints.
type QuestionService interface {
	ListQuestions(ctx context.Context) ([]models.Question, error)
	CreateQuestion(ctx context.Context, req models.QuestionRequest) (models.Question, error)
	// GetQuestion returns the question together with all of its answers.
	GetQuestion(ctx context.Context, questionID int64) (models.QuestionDetails, error)
	DeleteQuestion(ctx context.Context, questionID int64) error
}

// AnswerService covers the answer endpoints.
type AnswerService interface {
	// CreateAnswer resolves the question first, then validates req and
	// stores the answer under the system author.
	CreateAnswer(ctx context.Context, questionID int64, req models.AnswerRequest) (models.Answer, error)
	GetAnswer(ctx context.Context, answerID int64) (models.Answer, error)
	DeleteAnswer(ctx context.Context, answerID int64) error
}

// AuthorService resolves the identity new answers are attributed to.
type AuthorService interface {
	AnswerAuthor(ctx context.Context) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}

// QuestionServiceWrapper defines middleware composition for QuestionService.
// Implementations wrap an existing QuestionService to add behavior such as
// validation.
type QuestionServiceWrapper interface {
	Wrap(QuestionService) QuestionService
}
