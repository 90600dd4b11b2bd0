package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qa-board/internal/logger"
	"github.com/MKhiriev/go-qa-board/models"
)

// answerRepository is the SQL implementation of [AnswerRepository].
type answerRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAnswerRepository constructs an [AnswerRepository] backed by db.
func NewAnswerRepository(db *DB, logger *logger.Logger) AnswerRepository {
	logger.Debug().Msg("creating answer repository")
	return &answerRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAnswer inserts the answer and returns the stored row.
//
// Error handling:
//   - foreign key violation → [ErrQuestionNotFound] (the question vanished
//     between the caller's existence check and the insert).
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *answerRepository) CreateAnswer(ctx context.Context, answer models.Answer) (models.Answer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAnswerQuery(r.db.builder, answer)
	if err != nil {
		log.Err(err).Str("func", "*answerRepository.CreateAnswer").Msg("error building insert query")
		return models.Answer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Answer
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.QuestionID, &created.UserID, &created.Text, scanTime(&created.CreatedAt))
	if err != nil {
		log.Err(err).Str("func", "*answerRepository.CreateAnswer").Int64("question_id", answer.QuestionID).Msg("error inserting answer")

		switch r.db.errorClassificator.Classify(err) {
		case ForeignKeyViolation:
			return models.Answer{}, ErrQuestionNotFound
		case UniqueViolation, NotNullViolation:
			return models.Answer{}, fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		default:
			return models.Answer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

// GetAnswer returns the answer with the given id or [ErrAnswerNotFound].
func (r *answerRepository) GetAnswer(ctx context.Context, answerID int64) (models.Answer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAnswerByIDQuery(r.db.builder, answerID)
	if err != nil {
		log.Err(err).Str("func", "*answerRepository.GetAnswer").Msg("error building select query")
		return models.Answer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var a models.Answer
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&a.ID, &a.QuestionID, &a.UserID, &a.Text, scanTime(&a.CreatedAt))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Answer{}, ErrAnswerNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*answerRepository.GetAnswer").Int64("answer_id", answerID).Msg("error selecting answer")
		return models.Answer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return a, nil
}

// ListAnswersByQuestion returns the answers of a question ordered by id.
// The result is never nil.
func (r *answerRepository) ListAnswersByQuestion(ctx context.Context, questionID int64) ([]models.Answer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAnswersByQuestionQuery(r.db.builder, questionID)
	if err != nil {
		log.Err(err).Str("func", "*answerRepository.ListAnswersByQuestion").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*answerRepository.ListAnswersByQuestion").Int64("question_id", questionID).Msg("error selecting answers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	answers := make([]models.Answer, 0)
	for rows.Next() {
		var a models.Answer
		if err = rows.Scan(&a.ID, &a.QuestionID, &a.UserID, &a.Text, scanTime(&a.CreatedAt)); err != nil {
			log.Err(err).Str("func", "*answerRepository.ListAnswersByQuestion").Msg("error scanning answer row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		answers = append(answers, a)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*answerRepository.ListAnswersByQuestion").Msg("error iterating answer rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return answers, nil
}

// DeleteAnswer removes a single answer. The parent question is untouched.
func (r *answerRepository) DeleteAnswer(ctx context.Context, answerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAnswerQuery(r.db.builder, answerID)
	if err != nil {
		log.Err(err).Str("func", "*answerRepository.DeleteAnswer").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*answerRepository.DeleteAnswer").Int64("answer_id", answerID).Msg("error deleting answer")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAnswerNotFound
	}

	return nil
}
