package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qa-board/internal/config"
	"github.com/MKhiriev/go-qa-board/internal/logger"
)

// Storages groups every repository together with the connection they share.
type Storages struct {
	QuestionRepository QuestionRepository
	AnswerRepository   AnswerRepository
	UserRepository     UserRepository

	db *DB
}

// NewStorages opens the database selected by cfg, applies pending
// migrations and builds the repositories on top of the connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	case config.DriverPostgres, "":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories on top of an already opened and
// migrated connection.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		QuestionRepository: NewQuestionRepository(db, log),
		AnswerRepository:   NewAnswerRepository(db, log),
		UserRepository:     NewUserRepository(db, log),
		db:                 db,
	}
}

// Close releases the underlying database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
