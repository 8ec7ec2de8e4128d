package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/eduverse/eduverse/internal/batch/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, batch *domain.Batch) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO batches (id, institution_id, name, subject, teacher_ids, schedule, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		batch.ID,
		batch.InstitutionID,
		batch.Name,
		batch.Subject,
		batch.TeacherIDs,
		batch.Schedule,
		batch.CreatedAt,
		batch.UpdatedAt,
	).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, institutionID snowflake.ID) ([]*domain.Batch, error) {
	var batches []*domain.Batch
	stmt := db.WithContext(ctx).Model(&domain.Batch{})
	if institutionID != 0 {
		stmt = stmt.Where("institution_id = ?", institutionID)
	}
	err := stmt.
		Order("created_at desc, id desc").
		Find(&batches).Error
	if err != nil {
		return nil, err
	}
	return batches, nil
}
