package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/eduverse/eduverse/internal/institution/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, institution *domain.Institution) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO institutions (id, name, subdomain, plan, contact_email, phone, address, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		institution.ID,
		institution.Name,
		institution.Subdomain,
		institution.Plan,
		institution.ContactEmail,
		institution.Phone,
		institution.Address,
		institution.CreatedAt,
		institution.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Institution, error) {
	var institution domain.Institution
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, subdomain, plan, contact_email, phone, address, created_at, updated_at
		 FROM institutions WHERE id = ?`,
		id,
	).Scan(&institution).Error
	if err != nil {
		return nil, err
	}
	if institution.ID == 0 {
		return nil, nil
	}
	return &institution, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.Institution, error) {
	var institutions []*domain.Institution
	err := db.WithContext(ctx).
		Model(&domain.Institution{}).
		Order("created_at desc, id desc").
		Find(&institutions).Error
	if err != nil {
		return nil, err
	}
	return institutions, nil
}
