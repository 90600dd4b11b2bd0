package service

import (
	"context"

	"github.com/MKhiriev/go-qa-board/internal/validators"
	"github.com/MKhiriev/go-qa-board/models"
)

// QuestionValidationService validates incoming requests before handing
// them to the wrapped QuestionService.
type QuestionValidationService struct {
	inner     QuestionService
	validator validators.Validator
}

func NewQuestionValidationService() QuestionServiceWrapper {
	return &QuestionValidationService{
		validator: validators.NewStructValidator(),
	}
}

func (v *QuestionValidationService) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return v.inner.ListQuestions(ctx)
}

func (v *QuestionValidationService) CreateQuestion(ctx context.Context, req models.QuestionRequest) (models.Question, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Question{}, err
	}

	return v.inner.CreateQuestion(ctx, req)
}

func (v *QuestionValidationService) GetQuestion(ctx context.Context, questionID int64) (models.QuestionDetails, error) {
	return v.inner.GetQuestion(ctx, questionID)
}

func (v *QuestionValidationService) DeleteQuestion(ctx context.Context, questionID int64) error {
	return v.inner.DeleteQuestion(ctx, questionID)
}

func (v *QuestionValidationService) Wrap(wrapped QuestionService) QuestionService {
	v.inner = wrapped
	return v
}
