package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-qa-board/internal/config"
	"github.com/MKhiriev/go-qa-board/internal/logger"
	"github.com/MKhiriev/go-qa-board/internal/metrics"
	"github.com/MKhiriev/go-qa-board/internal/service"
	"github.com/MKhiriev/go-qa-board/models"
)

const testAPIKey = "test-secret"

type mockQuestionService struct {
	ListQuestionsFunc  func(ctx context.Context) ([]models.Question, error)
	CreateQuestionFunc func(ctx context.Context, req models.QuestionRequest) (models.Question, error)
	GetQuestionFunc    func(ctx context.Context, questionID int64) (models.QuestionDetails, error)
	DeleteQuestionFunc func(ctx context.Context, questionID int64) error
}

func (m *mockQuestionService) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return m.ListQuestionsFunc(ctx)
}

func (m *mockQuestionService) CreateQuestion(ctx context.Context, req models.QuestionRequest) (models.Question, error) {
	return m.CreateQuestionFunc(ctx, req)
}

func (m *mockQuestionService) GetQuestion(ctx context.Context, questionID int64) (models.QuestionDetails, error) {
	return m.GetQuestionFunc(ctx, questionID)
}

func (m *mockQuestionService) DeleteQuestion(ctx context.Context, questionID int64) error {
	return m.DeleteQuestionFunc(ctx, questionID)
}

type mockAnswerService struct {
	CreateAnswerFunc func(ctx context.Context, questionID int64, req models.AnswerRequest) (models.Answer, error)
	GetAnswerFunc    func(ctx context.Context, answerID int64) (models.Answer, error)
	DeleteAnswerFunc func(ctx context.Context, answerID int64) error
}

func (m *mockAnswerService) CreateAnswer(ctx context.Context, questionID int64, req models.AnswerRequest) (models.Answer, error) {
	return m.CreateAnswerFunc(ctx, questionID, req)
}

func (m *mockAnswerService) GetAnswer(ctx context.Context, answerID int64) (models.Answer, error) {
	return m.GetAnswerFunc(ctx, answerID)
}

func (m *mockAnswerService) DeleteAnswer(ctx context.Context, answerID int64) error {
	return m.DeleteAnswerFunc(ctx, answerID)
}

type mockAppInfoService struct {
	info models.AppInfo
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string { return m.info.Version }

func (m *mockAppInfoService) GetAppInfo(context.Context) models.AppInfo { return m.info }

// newTestRouter wires the mocks into a full router guarded by testAPIKey.
// Services left nil panic when reached, which the recovery middleware
// turns into a 500; tests that expect the gate to stop a request rely on
// that to prove the service was never called.
func newTestRouter(questions service.QuestionService, answers service.AnswerService, collector *metrics.Collector) http.Handler {
	services := &service.Services{
		QuestionService: questions,
		AnswerService:   answers,
		AppInfoService:  &mockAppInfoService{info: models.AppInfo{Version: "1.0.0"}},
	}

	h := NewHandler(services, config.App{APIKey: testAPIKey}, config.Server{}, collector, logger.Nop())
	return h.Init()
}
