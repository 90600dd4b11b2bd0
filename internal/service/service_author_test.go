package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-qa-board/internal/config"
	"github.com/MKhiriev/go-qa-board/internal/logger"
	"github.com/MKhiriev/go-qa-board/internal/mock"
	"github.com/MKhiriev/go-qa-board/models"
)

func TestNewAuthorService_EmptyUsername(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc, err := NewAuthorService(mock.NewMockUserRepository(ctrl), config.App{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrAnswerAuthorNotSet)
}

func TestAuthorService_AnswerAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	svc, err := NewAuthorService(users, config.App{AnswerAuthor: "system_answer_bot"}, logger.Nop())
	require.NoError(t, err)

	bot := models.User{ID: 7, Username: "system_answer_bot", IsSystem: true}
	users.EXPECT().
		GetOrCreateUser(gomock.Any(), models.User{Username: "system_answer_bot", IsSystem: true}).
		Return(bot, nil).
		Times(2)

	// repeated calls resolve to the same identity
	first, err := svc.AnswerAuthor(context.Background())
	require.NoError(t, err)
	second, err := svc.AnswerAuthor(context.Background())
	require.NoError(t, err)

	assert.Equal(t, bot, first)
	assert.Equal(t, first, second)
}

func TestAuthorService_AnswerAuthor_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	svc, err := NewAuthorService(users, config.App{AnswerAuthor: "bot"}, logger.Nop())
	require.NoError(t, err)

	errDB := errors.New("db down")
	users.EXPECT().GetOrCreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, errDB)

	_, err = svc.AnswerAuthor(context.Background())
	assert.ErrorIs(t, err, errDB)
}
