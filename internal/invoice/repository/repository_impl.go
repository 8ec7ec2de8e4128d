package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/eduverse/eduverse/internal/invoice/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO invoices (id, institution_id, student_id, currency, items, gst_percent, status, due_date, metadata, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		invoice.ID,
		invoice.InstitutionID,
		invoice.StudentID,
		invoice.Currency,
		invoice.Items,
		invoice.GSTPercent,
		invoice.Status,
		invoice.DueDate,
		invoice.Metadata,
		invoice.CreatedAt,
		invoice.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, institutionID, id snowflake.ID) (*domain.Invoice, error) {
	return r.findByID(ctx, db, institutionID, id, "")
}

func (r *repo) FindByIDForUpdate(ctx context.Context, db *gorm.DB, institutionID, id snowflake.ID) (*domain.Invoice, error) {
	return r.findByID(ctx, db, institutionID, id, " FOR UPDATE")
}

func (r *repo) findByID(ctx context.Context, db *gorm.DB, institutionID, id snowflake.ID, suffix string) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := db.WithContext(ctx).Raw(
		`SELECT id, institution_id, student_id, currency, items, gst_percent, status, due_date, metadata, created_at, updated_at
		 FROM invoices WHERE institution_id = ? AND id = ?`+suffix,
		institutionID,
		id,
	).Scan(&invoice).Error
	if err != nil {
		return nil, err
	}
	if invoice.ID == 0 {
		return nil, nil
	}
	return &invoice, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, institutionID snowflake.ID, studentID *snowflake.ID) ([]domain.Invoice, error) {
	query := db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("institution_id = ?", institutionID)
	if studentID != nil {
		query = query.Where("student_id = ?", *studentID)
	}

	var invoices []domain.Invoice
	err := query.Order("created_at desc, id desc").Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, institutionID, id snowflake.ID, status domain.InvoiceStatus) error {
	return db.WithContext(ctx).Exec(
		`UPDATE invoices SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE institution_id = ? AND id = ?`,
		status,
		institutionID,
		id,
	).Error
}
