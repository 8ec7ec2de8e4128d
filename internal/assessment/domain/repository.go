package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	InsertQuestion(ctx context.Context, db *gorm.DB, question *Question) error
	InsertTest(ctx context.Context, db *gorm.DB, test *Test) error
	InsertSubmission(ctx context.Context, db *gorm.DB, submission *Submission) error
}
