// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-qa-board/internal/logger"
	"github.com/MKhiriev/go-qa-board/internal/metrics"
	"github.com/MKhiriev/go-qa-board/internal/mock"
	"github.com/MKhiriev/go-qa-board/internal/store"
	"github.com/MKhiriev/go-qa-board/internal/validators"
	"github.com/MKhiriev/go-qa-board/models"
)

var errStorage = errors.New("storage error")

func newTestQuestionSvc(t *testing.T) (QuestionService, *mock.MockQuestionRepository, *mock.MockAnswerRepository, *metrics.Collector) {
	t.Helper()
	ctrl := gomock.NewController(t)

	questions := mock.NewMockQuestionRepository(ctrl)
	answers := mock.NewMockAnswerRepository(ctrl)
	collector := metrics.NewCollector("test")

	return NewQuestionService(questions, answers, collector, logger.Nop()), questions, answers, collector
}

// ── CreateQuestion ───────────────────────────────────────────────────────────

func TestQuestionService_CreateQuestion_Success(t *testing.T) {
	svc, questions, _, collector := newTestQuestionSvc(t)
	now := time.Now()

	questions.EXPECT().
		CreateQuestion(gomock.Any(), models.Question{Text: "What is Go?"}).
		Return(models.Question{ID: 1, Text: "What is Go?", CreatedAt: now}, nil)

	got, err := svc.CreateQuestion(context.Background(), models.QuestionRequest{Text: "  What is Go?\n"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "What is Go?", got.Text)
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.QuestionsCreated))
}

func TestQuestionService_CreateQuestion_ValidationFails_NoStorageCall(t *testing.T) {
	tests := []struct {
		name string
		text string
		msg  string
	}{
		{name: "empty", text: "", msg: validators.MsgRequired},
		{name: "blank", text: "   ", msg: validators.MsgNotBlank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, collector := newTestQuestionSvc(t)

			_, err := svc.CreateQuestion(context.Background(), models.QuestionRequest{Text: tt.text})

			var vErr *validators.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, models.ValidationErrors{"text": {tt.msg}}, vErr.Fields)
			assert.Equal(t, float64(0), testutil.ToFloat64(collector.QuestionsCreated))
		})
	}
}

func TestQuestionService_CreateQuestion_StorageError(t *testing.T) {
	svc, questions, _, _ := newTestQuestionSvc(t)

	questions.EXPECT().CreateQuestion(gomock.Any(), gomock.Any()).Return(models.Question{}, errStorage)

	_, err := svc.CreateQuestion(context.Background(), models.QuestionRequest{Text: "q"})
	assert.ErrorIs(t, err, errStorage)
}

// ── ListQuestions ────────────────────────────────────────────────────────────

func TestQuestionService_ListQuestions(t *testing.T) {
	svc, questions, _, _ := newTestQuestionSvc(t)

	list := []models.Question{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}}
	questions.EXPECT().ListQuestions(gomock.Any()).Return(list, nil)

	got, err := svc.ListQuestions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, list, got)
}

// ── GetQuestion ──────────────────────────────────────────────────────────────

func TestQuestionService_GetQuestion_WithAnswers(t *testing.T) {
	svc, questions, answers, _ := newTestQuestionSvc(t)

	q := models.Question{ID: 3, Text: "q"}
	list := []models.Answer{{ID: 1, QuestionID: 3, UserID: 9, Text: "a"}}

	gomock.InOrder(
		questions.EXPECT().GetQuestion(gomock.Any(), int64(3)).Return(q, nil),
		answers.EXPECT().ListAnswersByQuestion(gomock.Any(), int64(3)).Return(list, nil),
	)

	got, err := svc.GetQuestion(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, models.QuestionDetails{Question: q, Answers: list}, got)
}

func TestQuestionService_GetQuestion_NilAnswersBecomeEmpty(t *testing.T) {
	svc, questions, answers, _ := newTestQuestionSvc(t)

	questions.EXPECT().GetQuestion(gomock.Any(), int64(3)).Return(models.Question{ID: 3}, nil)
	answers.EXPECT().ListAnswersByQuestion(gomock.Any(), int64(3)).Return(nil, nil)

	got, err := svc.GetQuestion(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, got.Answers)
	assert.Empty(t, got.Answers)
}

func TestQuestionService_GetQuestion_NotFound_SkipsAnswers(t *testing.T) {
	svc, questions, _, _ := newTestQuestionSvc(t)

	questions.EXPECT().GetQuestion(gomock.Any(), int64(999999)).Return(models.Question{}, store.ErrQuestionNotFound)

	_, err := svc.GetQuestion(context.Background(), 999999)
	assert.ErrorIs(t, err, store.ErrQuestionNotFound)
}

func TestQuestionService_GetQuestion_AnswersError(t *testing.T) {
	svc, questions, answers, _ := newTestQuestionSvc(t)

	questions.EXPECT().GetQuestion(gomock.Any(), int64(3)).Return(models.Question{ID: 3}, nil)
	answers.EXPECT().ListAnswersByQuestion(gomock.Any(), int64(3)).Return(nil, errStorage)

	_, err := svc.GetQuestion(context.Background(), 3)
	assert.ErrorIs(t, err, errStorage)
}

// ── DeleteQuestion ───────────────────────────────────────────────────────────

func TestQuestionService_DeleteQuestion(t *testing.T) {
	svc, questions, _, collector := newTestQuestionSvc(t)

	questions.EXPECT().DeleteQuestion(gomock.Any(), int64(4)).Return(nil)

	require.NoError(t, svc.DeleteQuestion(context.Background(), 4))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.QuestionsDeleted))
}

func TestQuestionService_DeleteQuestion_NotFound(t *testing.T) {
	svc, questions, _, collector := newTestQuestionSvc(t)

	questions.EXPECT().DeleteQuestion(gomock.Any(), int64(4)).Return(store.ErrQuestionNotFound)

	assert.ErrorIs(t, svc.DeleteQuestion(context.Background(), 4), store.ErrQuestionNotFound)
	assert.Equal(t, float64(0), testutil.ToFloat64(collector.QuestionsDeleted))
}
