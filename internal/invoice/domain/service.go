package domain

import (
	"context"
	"errors"
)

type CreateInvoiceRequest struct {
	InstitutionID string            `json:"institution_id"`
	StudentID     string            `json:"student_id"`
	Items         []InvoiceItem     `json:"items"`
	GSTPercent    float64           `json:"gst_percent"`
	Currency      string            `json:"currency,omitempty"`
	DueDate       *string           `json:"due_date,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

type ListInvoiceRequest struct {
	InstitutionID string
	StudentID     string
}

type RecordPaymentRequest struct {
	InstitutionID string  `json:"institution_id"`
	InvoiceID     string  `json:"invoice_id"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Provider      *string `json:"provider,omitempty"`
	TxnRef        *string `json:"txn_ref,omitempty"`
}

// RecordPaymentResponse reports the durable payment id and the invoice
// status after recomputation. StatusPending is set when the payment was
// written but the status update failed; the ledger already holds the
// payment and any later recomputation will converge.
type RecordPaymentResponse struct {
	PaymentID     string        `json:"id"`
	InvoiceStatus InvoiceStatus `json:"invoice_status,omitempty"`
	StatusPending bool          `json:"status_pending,omitempty"`
}

type Service interface {
	Create(context.Context, CreateInvoiceRequest) (Invoice, error)
	List(context.Context, ListInvoiceRequest) ([]Invoice, error)
	RecordPayment(context.Context, RecordPaymentRequest) (RecordPaymentResponse, error)
}

var (
	ErrInvalidInstitution = errors.New("invalid_institution_id")
	ErrInvalidStudent     = errors.New("invalid_student_id")
	ErrInvalidInvoice     = errors.New("invalid_invoice_id")
	ErrEmptyItems         = errors.New("invalid_items")
	ErrNegativeItemAmount = errors.New("invalid_item_amount")
	ErrInvalidGSTPercent  = errors.New("invalid_gst_percent")
	ErrInvalidAmount      = errors.New("invalid_amount")
	ErrInvalidMethod      = errors.New("invalid_method")
	ErrInvalidProvider    = errors.New("invalid_provider")
	ErrNotFound           = errors.New("not_found")
	ErrStoreUnavailable   = errors.New("store_unavailable")
)
