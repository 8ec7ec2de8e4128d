// Package domain contains the append-only payment ledger model. Payments
// are created once and never mutated or deleted; refunds are not modeled.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Method is how the payer settled.
type Method string

const (
	MethodUPI    Method = "upi"
	MethodWallet Method = "wallet"
	MethodCard   Method = "card"
	MethodCash   Method = "cash"
)

// Provider is the optional payment gateway the method ran through.
type Provider string

const (
	ProviderRazorpay Provider = "razorpay"
	ProviderPhonePe  Provider = "phonepe"
	ProviderStripe   Provider = "stripe"
	ProviderManual   Provider = "manual"
)

// Payment records one payment against one invoice. The invoice reference
// is weak: the payment does not own the invoice and both live in the same
// institution.
type Payment struct {
	ID            snowflake.ID `gorm:"primaryKey" json:"id"`
	InstitutionID snowflake.ID `gorm:"not null;index" json:"institution_id"`
	InvoiceID     snowflake.ID `gorm:"not null;index" json:"invoice_id"`
	Amount        float64      `gorm:"not null" json:"amount"`
	Method        Method       `gorm:"type:text;not null" json:"method"`
	Provider      *Provider    `gorm:"type:text" json:"provider,omitempty"`
	TxnRef        *string      `json:"txn_ref,omitempty"`
	CreatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Payment) TableName() string { return "payments" }

func (m Method) Valid() bool {
	switch m {
	case MethodUPI, MethodWallet, MethodCard, MethodCash:
		return true
	default:
		return false
	}
}

func (p Provider) Valid() bool {
	switch p {
	case ProviderRazorpay, ProviderPhonePe, ProviderStripe, ProviderManual:
		return true
	default:
		return false
	}
}
