// Package settlement derives invoice totals and status from the payment
// ledger. It is pure: callers load the invoice and its payments, the
// engine computes, callers persist.
package settlement

import (
	"github.com/eduverse/eduverse/internal/invoice/domain"
	paymentdomain "github.com/eduverse/eduverse/internal/payment/domain"
)

// Tolerance absorbs floating point drift when comparing amount paid
// against amount due. An invoice within Tolerance of its due amount
// counts as fully paid.
const Tolerance = 0.01

// Outcome is the result of settling an invoice against its ledger.
type Outcome struct {
	ItemsTotal float64
	TaxAmount  float64
	AmountDue  float64
	AmountPaid float64
	Status     domain.InvoiceStatus
}

// Settle recomputes the full settlement outcome for an invoice. It
// depends only on its inputs, so replaying the same ledger in any order
// yields the same outcome.
func Settle(items []domain.InvoiceItem, gstPercent float64, payments []paymentdomain.Payment) Outcome {
	var itemsTotal float64
	for _, item := range items {
		itemsTotal += item.Amount
	}
	taxAmount := itemsTotal * gstPercent / 100
	amountDue := itemsTotal + taxAmount

	var amountPaid float64
	for _, p := range payments {
		amountPaid += p.Amount
	}

	return Outcome{
		ItemsTotal: itemsTotal,
		TaxAmount:  taxAmount,
		AmountDue:  amountDue,
		AmountPaid: amountPaid,
		Status:     Derive(amountDue, amountPaid),
	}
}

// Derive maps an amount due and amount paid to an invoice status. The
// rules apply in order: a shortfall strictly below Tolerance means paid
// (a zero-item invoice is immediately paid), any positive coverage means
// partially paid, otherwise unpaid.
func Derive(amountDue, amountPaid float64) domain.InvoiceStatus {
	switch {
	case amountDue-amountPaid < Tolerance:
		return domain.InvoiceStatusPaid
	case amountPaid > 0:
		return domain.InvoiceStatusPartiallyPaid
	default:
		return domain.InvoiceStatusUnpaid
	}
}
