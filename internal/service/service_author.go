package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qa-board/internal/config"
	"github.com/MKhiriev/go-qa-board/internal/logger"
	"github.com/MKhiriev/go-qa-board/internal/store"
	"github.com/MKhiriev/go-qa-board/models"
)

type authorService struct {
	users    store.UserRepository
	username string

	logger *logger.Logger
}

// NewAuthorService returns an AuthorService for the configured system
// identity. The user row is created on first use, not here.
func NewAuthorService(users store.UserRepository, cfg config.App, logger *logger.Logger) (AuthorService, error) {
	if cfg.AnswerAuthor == "" {
		return nil, ErrAnswerAuthorNotSet
	}

	return &authorService{
		users:    users,
		username: cfg.AnswerAuthor,
		logger:   logger,
	}, nil
}

func (s *authorService) AnswerAuthor(ctx context.Context) (models.User, error) {
	author, err := s.users.GetOrCreateUser(ctx, models.User{Username: s.username, IsSystem: true})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authorService.AnswerAuthor").Str("username", s.username).Msg("error resolving answer author")
		return models.User{}, fmt.Errorf("resolving answer author: %w", err)
	}

	return author, nil
}
