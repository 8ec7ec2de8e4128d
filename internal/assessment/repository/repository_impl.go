package repository

import (
	"context"

	"github.com/eduverse/eduverse/internal/assessment/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertQuestion(ctx context.Context, db *gorm.DB, question *domain.Question) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO questions (id, institution_id, text, options, correct_index, topic, difficulty, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		question.ID,
		question.InstitutionID,
		question.Text,
		question.Options,
		question.CorrectIndex,
		question.Topic,
		question.Difficulty,
		question.CreatedAt,
	).Error
}

func (r *repo) InsertTest(ctx context.Context, db *gorm.DB, test *domain.Test) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO tests (id, institution_id, title, question_ids, batch_id, duration_minutes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		test.ID,
		test.InstitutionID,
		test.Title,
		test.QuestionIDs,
		test.BatchID,
		test.DurationMinutes,
		test.CreatedAt,
	).Error
}

func (r *repo) InsertSubmission(ctx context.Context, db *gorm.DB, submission *domain.Submission) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO submissions (id, institution_id, test_id, student_id, answers, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		submission.ID,
		submission.InstitutionID,
		submission.TestID,
		submission.StudentID,
		submission.Answers,
		submission.CreatedAt,
	).Error
}
