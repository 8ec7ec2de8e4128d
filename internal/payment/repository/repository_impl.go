package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/eduverse/eduverse/internal/payment/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, payment *domain.Payment) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO payments (id, institution_id, invoice_id, amount, method, provider, txn_ref, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		payment.ID,
		payment.InstitutionID,
		payment.InvoiceID,
		payment.Amount,
		payment.Method,
		payment.Provider,
		payment.TxnRef,
		payment.CreatedAt,
	).Error
}

func (r *repo) ListByInvoice(ctx context.Context, db *gorm.DB, institutionID, invoiceID snowflake.ID) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := db.WithContext(ctx).Raw(
		`SELECT id, institution_id, invoice_id, amount, method, provider, txn_ref, created_at
		 FROM payments
		 WHERE institution_id = ? AND invoice_id = ?`,
		institutionID,
		invoiceID,
	).Scan(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
