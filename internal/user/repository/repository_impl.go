package repository

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/eduverse/eduverse/internal/user/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, user *domain.User) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO users (id, institution_id, role, name, email, phone, password, linked_student_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.InstitutionID,
		user.Role,
		user.Name,
		user.Email,
		user.Phone,
		user.Password,
		user.LinkedStudentID,
		user.CreatedAt,
		user.UpdatedAt,
	).Error
}

func (r *repo) CountByEmail(ctx context.Context, db *gorm.DB, institutionID snowflake.ID, email string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("institution_id = ? AND email = ?", institutionID, email).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListUserRequest) ([]*domain.User, error) {
	var users []*domain.User
	stmt := db.WithContext(ctx).Model(&domain.User{})
	if id := strings.TrimSpace(filter.InstitutionID); id != "" {
		parsed, err := snowflake.ParseString(id)
		if err != nil {
			return nil, domain.ErrInvalidInstitution
		}
		stmt = stmt.Where("institution_id = ?", parsed)
	}
	if role := strings.TrimSpace(filter.Role); role != "" {
		stmt = stmt.Where("role = ?", role)
	}
	err := stmt.
		Order("created_at desc, id desc").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
