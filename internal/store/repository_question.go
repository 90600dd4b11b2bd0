package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qa-board/internal/logger"
	"github.com/MKhiriev/go-qa-board/models"
)

// questionRepository is the SQL implementation of [QuestionRepository].
type questionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewQuestionRepository constructs a [QuestionRepository] backed by db.
func NewQuestionRepository(db *DB, logger *logger.Logger) QuestionRepository {
	logger.Debug().Msg("creating question repository")
	return &questionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateQuestion inserts the question text and returns the row with the
// id and created_at assigned by the database.
func (r *questionRepository) CreateQuestion(ctx context.Context, question models.Question) (models.Question, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertQuestionQuery(r.db.builder, question)
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.CreateQuestion").Msg("error building insert query")
		return models.Question{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Question
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.Text, scanTime(&created.CreatedAt))
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.CreateQuestion").Msg("error inserting question")
		return models.Question{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// ListQuestions returns every question ordered by id. The result is never
// nil so it encodes as an empty JSON array.
func (r *questionRepository) ListQuestions(ctx context.Context) ([]models.Question, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectQuestionsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.ListQuestions").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.ListQuestions").Msg("error selecting questions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	questions := make([]models.Question, 0)
	for rows.Next() {
		var q models.Question
		if err = rows.Scan(&q.ID, &q.Text, scanTime(&q.CreatedAt)); err != nil {
			log.Err(err).Str("func", "*questionRepository.ListQuestions").Msg("error scanning question row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		questions = append(questions, q)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*questionRepository.ListQuestions").Msg("error iterating question rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return questions, nil
}

// GetQuestion returns the question with the given id or [ErrQuestionNotFound].
func (r *questionRepository) GetQuestion(ctx context.Context, questionID int64) (models.Question, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectQuestionByIDQuery(r.db.builder, questionID)
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.GetQuestion").Msg("error building select query")
		return models.Question{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var q models.Question
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&q.ID, &q.Text, scanTime(&q.CreatedAt))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, ErrQuestionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.GetQuestion").Int64("question_id", questionID).Msg("error selecting question")
		return models.Question{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return q, nil
}

// DeleteQuestion removes the question; its answers go with it through the
// cascading foreign key.
func (r *questionRepository) DeleteQuestion(ctx context.Context, questionID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuestionQuery(r.db.builder, questionID)
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.DeleteQuestion").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.DeleteQuestion").Int64("question_id", questionID).Msg("error deleting question")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrQuestionNotFound
	}

	return nil
}
