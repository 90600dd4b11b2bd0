// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-qa-board/models"
)

var (
	questionColumns = []string{"id", "text", "created_at"}
	answerColumns   = []string{"id", "question_id", "user_id", "text", "created_at"}
	userColumns     = []string{"id", "username", "is_system", "created_at"}
)

func returning(columns []string) string {
	suffix := "RETURNING "
	for i, c := range columns {
		if i > 0 {
			suffix += ", "
		}
		suffix += c
	}
	return suffix
}

// questions

func buildInsertQuestionQuery(b sq.StatementBuilderType, question models.Question) (string, []any, error) {
	return b.Insert(models.Question{}.TableName()).
		Columns("text").
		Values(question.Text).
		Suffix(returning(questionColumns)).
		ToSql()
}

func buildSelectQuestionsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(questionColumns...).
		From(models.Question{}.TableName()).
		OrderBy("id").
		ToSql()
}

func buildSelectQuestionByIDQuery(b sq.StatementBuilderType, questionID int64) (string, []any, error) {
	return b.Select(questionColumns...).
		From(models.Question{}.TableName()).
		Where(sq.Eq{"id": questionID}).
		ToSql()
}

func buildDeleteQuestionQuery(b sq.StatementBuilderType, questionID int64) (string, []any, error) {
	return b.Delete(models.Question{}.TableName()).
		Where(sq.Eq{"id": questionID}).
		ToSql()
}

// answers

func buildInsertAnswerQuery(b sq.StatementBuilderType, answer models.Answer) (string, []any, error) {
	return b.Insert(models.Answer{}.TableName()).
		Columns("question_id", "user_id", "text").
		Values(answer.QuestionID, answer.UserID, answer.Text).
		Suffix(returning(answerColumns)).
		ToSql()
}

func buildSelectAnswerByIDQuery(b sq.StatementBuilderType, answerID int64) (string, []any, error) {
	return b.Select(answerColumns...).
		From(models.Answer{}.TableName()).
		Where(sq.Eq{"id": answerID}).
		ToSql()
}

func buildSelectAnswersByQuestionQuery(b sq.StatementBuilderType, questionID int64) (string, []any, error) {
	return b.Select(answerColumns...).
		From(models.Answer{}.TableName()).
		Where(sq.Eq{"question_id": questionID}).
		OrderBy("id").
		ToSql()
}

func buildDeleteAnswerQuery(b sq.StatementBuilderType, answerID int64) (string, []any, error) {
	return b.Delete(models.Answer{}.TableName()).
		Where(sq.Eq{"id": answerID}).
		ToSql()
}

// users

// buildInsertUserIfAbsentQuery inserts the user unless the username is taken.
// Both PostgreSQL and SQLite (3.24+) understand this upsert form.
func buildInsertUserIfAbsentQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns("username", "is_system").
		Values(user.Username, user.IsSystem).
		Suffix("ON CONFLICT (username) DO NOTHING").
		ToSql()
}

func buildSelectUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}
