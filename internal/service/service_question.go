package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-qa-board/internal/logger"
	"github.com/MKhiriev/go-qa-board/internal/metrics"
	"github.com/MKhiriev/go-qa-board/internal/store"
	"github.com/MKhiriev/go-qa-board/models"
)

type questionService struct {
	questions store.QuestionRepository
	answers   store.AnswerRepository
	metrics   *metrics.Collector

	logger *logger.Logger
}

// NewQuestionService returns the question service wrapped with request
// validation.
func NewQuestionService(questions store.QuestionRepository, answers store.AnswerRepository, collector *metrics.Collector, logger *logger.Logger) QuestionService {
	logger.Debug().Msg("creating question service")

	return NewQuestionValidationService().Wrap(&questionService{
		questions: questions,
		answers:   answers,
		metrics:   collector,
		logger:    logger,
	})
}

func (s *questionService) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return s.questions.ListQuestions(ctx)
}

func (s *questionService) CreateQuestion(ctx context.Context, req models.QuestionRequest) (models.Question, error) {
	created, err := s.questions.CreateQuestion(ctx, models.Question{Text: strings.TrimSpace(req.Text)})
	if err != nil {
		return models.Question{}, err
	}

	s.metrics.IncQuestionsCreated()
	logger.FromContext(ctx).Debug().Int64("question_id", created.ID).Msg("question created")

	return created, nil
}

func (s *questionService) GetQuestion(ctx context.Context, questionID int64) (models.QuestionDetails, error) {
	question, err := s.questions.GetQuestion(ctx, questionID)
	if err != nil {
		return models.QuestionDetails{}, err
	}

	answers, err := s.answers.ListAnswersByQuestion(ctx, questionID)
	if err != nil {
		return models.QuestionDetails{}, err
	}
	if answers == nil {
		answers = []models.Answer{}
	}

	return models.QuestionDetails{Question: question, Answers: answers}, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, questionID int64) error {
	if err := s.questions.DeleteQuestion(ctx, questionID); err != nil {
		return err
	}

	s.metrics.IncQuestionsDeleted()
	logger.FromContext(ctx).Debug().Int64("question_id", questionID).Msg("question deleted")

	return nil
}
