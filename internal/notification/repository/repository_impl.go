package repository

import (
	"context"

	"github.com/eduverse/eduverse/internal/notification/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, notification *domain.Notification) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO notifications (id, institution_id, user_id, channel, template, payload, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		notification.ID,
		notification.InstitutionID,
		notification.UserID,
		notification.Channel,
		notification.Template,
		notification.Payload,
		notification.Status,
		notification.CreatedAt,
	).Error
}
