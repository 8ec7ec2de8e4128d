// Package domain contains persistence models for invoicing.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// InvoiceStatus represents invoice settlement states. Clients only set it
// at creation (always unpaid); afterwards the settlement engine owns it.
type InvoiceStatus string

const (
	InvoiceStatusUnpaid        InvoiceStatus = "unpaid"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
)

// InvoiceItem is one billable line on an invoice.
type InvoiceItem struct {
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
}

// Invoice represents a billable obligation for one student. Items, tax and
// currency are immutable after creation; status is derived from the
// payment ledger.
type Invoice struct {
	ID            snowflake.ID                     `gorm:"primaryKey" json:"id"`
	InstitutionID snowflake.ID                     `gorm:"not null;index" json:"institution_id"`
	StudentID     snowflake.ID                     `gorm:"not null;index" json:"student_id"`
	Currency      string                           `gorm:"type:text;not null;default:'INR'" json:"currency"`
	Items         datatypes.JSONSlice[InvoiceItem] `gorm:"not null" json:"items"`
	GSTPercent    float64                          `gorm:"not null;default:0" json:"gst_percent"`
	Status        InvoiceStatus                    `gorm:"type:text;not null;default:'unpaid'" json:"status"`
	DueDate       *string                          `json:"due_date,omitempty"`
	Metadata      datatypes.JSONMap                `gorm:"not null;default:'{}'" json:"metadata,omitempty"`
	CreatedAt     time.Time                        `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time                        `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }
