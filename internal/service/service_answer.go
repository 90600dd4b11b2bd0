package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-qa-board/internal/logger"
	"github.com/MKhiriev/go-qa-board/internal/metrics"
	"github.com/MKhiriev/go-qa-board/internal/store"
	"github.com/MKhiriev/go-qa-board/internal/validators"
	"github.com/MKhiriev/go-qa-board/models"
)

type answerService struct {
	questions store.QuestionRepository
	answers   store.AnswerRepository
	authors   AuthorService
	validator validators.Validator
	metrics   *metrics.Collector

	logger *logger.Logger
}

// NewAnswerService builds the answer service. Validation runs inside
// CreateAnswer because a missing question must win over an invalid body.
func NewAnswerService(questions store.QuestionRepository, answers store.AnswerRepository, authors AuthorService, collector *metrics.Collector, logger *logger.Logger) AnswerService {
	logger.Debug().Msg("creating answer service")

	return &answerService{
		questions: questions,
		answers:   answers,
		authors:   authors,
		validator: validators.NewStructValidator(),
		metrics:   collector,
		logger:    logger,
	}
}

func (s *answerService) CreateAnswer(ctx context.Context, questionID int64, req models.AnswerRequest) (models.Answer, error) {
	if _, err := s.questions.GetQuestion(ctx, questionID); err != nil {
		return models.Answer{}, err
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Answer{}, err
	}

	author, err := s.authors.AnswerAuthor(ctx)
	if err != nil {
		return models.Answer{}, err
	}

	created, err := s.answers.CreateAnswer(ctx, models.Answer{
		QuestionID: questionID,
		UserID:     author.ID,
		Text:       strings.TrimSpace(req.Text),
	})
	if err != nil {
		return models.Answer{}, err
	}

	s.metrics.IncAnswersCreated()
	logger.FromContext(ctx).Debug().Int64("answer_id", created.ID).Int64("question_id", questionID).Msg("answer created")

	return created, nil
}

func (s *answerService) GetAnswer(ctx context.Context, answerID int64) (models.Answer, error) {
	return s.answers.GetAnswer(ctx, answerID)
}

func (s *answerService) DeleteAnswer(ctx context.Context, answerID int64) error {
	if err := s.answers.DeleteAnswer(ctx, answerID); err != nil {
		return err
	}

	s.metrics.IncAnswersDeleted()
	logger.FromContext(ctx).Debug().Int64("answer_id", answerID).Msg("answer deleted")

	return nil
}
