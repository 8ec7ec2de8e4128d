package settlement

import (
	"testing"

	"github.com/eduverse/eduverse/internal/invoice/domain"
	paymentdomain "github.com/eduverse/eduverse/internal/payment/domain"
	"github.com/stretchr/testify/assert"
)

func pay(amounts ...float64) []paymentdomain.Payment {
	payments := make([]paymentdomain.Payment, 0, len(amounts))
	for _, a := range amounts {
		payments = append(payments, paymentdomain.Payment{Amount: a})
	}
	return payments
}

func TestSettleTuitionWithTax(t *testing.T) {
	items := []domain.InvoiceItem{{Title: "Tuition", Amount: 1000}}

	out := Settle(items, 18, nil)
	assert.InDelta(t, 1000.0, out.ItemsTotal, 1e-9)
	assert.InDelta(t, 180.0, out.TaxAmount, 1e-9)
	assert.InDelta(t, 1180.0, out.AmountDue, 1e-9)
	assert.Equal(t, domain.InvoiceStatusUnpaid, out.Status)

	out = Settle(items, 18, pay(500))
	assert.Equal(t, domain.InvoiceStatusPartiallyPaid, out.Status)

	out = Settle(items, 18, pay(500, 680))
	assert.InDelta(t, 1180.0, out.AmountPaid, 1e-9)
	assert.Equal(t, domain.InvoiceStatusPaid, out.Status)

	// Overpayment never demotes the status.
	out = Settle(items, 18, pay(500, 680, 50))
	assert.Equal(t, domain.InvoiceStatusPaid, out.Status)
}

func TestSettleZeroItemInvoiceIsPaid(t *testing.T) {
	out := Settle(nil, 18, nil)
	assert.InDelta(t, 0.0, out.AmountDue, 1e-9)
	assert.Equal(t, domain.InvoiceStatusPaid, out.Status)
}

func TestSettleToleranceBoundary(t *testing.T) {
	items := []domain.InvoiceItem{{Title: "Exam fee", Amount: 100}}

	// Exactly Tolerance short stays partially paid.
	out := Settle(items, 0, pay(99.99))
	assert.Equal(t, domain.InvoiceStatusPartiallyPaid, out.Status)

	// Inside the tolerance window counts as paid.
	out = Settle(items, 0, pay(99.995))
	assert.Equal(t, domain.InvoiceStatusPaid, out.Status)
}

func TestSettleIsIdempotent(t *testing.T) {
	items := []domain.InvoiceItem{{Title: "Tuition", Amount: 1000}}
	ledger := pay(500, 680)

	first := Settle(items, 18, ledger)
	second := Settle(items, 18, ledger)
	assert.Equal(t, first, second)
}

func TestSettleIsOrderIndependent(t *testing.T) {
	items := []domain.InvoiceItem{{Title: "Tuition", Amount: 1000}}
	orders := [][]float64{
		{500, 400, 280},
		{280, 500, 400},
		{400, 280, 500},
	}

	var outcomes []Outcome
	for _, amounts := range orders {
		outcomes = append(outcomes, Settle(items, 18, pay(amounts...)))
	}
	for _, out := range outcomes[1:] {
		assert.Equal(t, outcomes[0].Status, out.Status)
		assert.InDelta(t, outcomes[0].AmountPaid, out.AmountPaid, Tolerance)
	}
}

func TestSettleCoverageIsMonotonic(t *testing.T) {
	items := []domain.InvoiceItem{{Title: "Tuition", Amount: 1000}}
	rank := map[domain.InvoiceStatus]int{
		domain.InvoiceStatusUnpaid:        0,
		domain.InvoiceStatusPartiallyPaid: 1,
		domain.InvoiceStatusPaid:          2,
	}

	var ledger []float64
	prev := Settle(items, 18, nil).Status
	for _, amount := range []float64{100, 400, 300, 380, 25} {
		ledger = append(ledger, amount)
		next := Settle(items, 18, pay(ledger...)).Status
		assert.GreaterOrEqual(t, rank[next], rank[prev])
		prev = next
	}
}

func TestDerive(t *testing.T) {
	assert.Equal(t, domain.InvoiceStatusUnpaid, Derive(100, 0))
	assert.Equal(t, domain.InvoiceStatusPartiallyPaid, Derive(100, 0.01))
	assert.Equal(t, domain.InvoiceStatusPaid, Derive(100, 100))
	assert.Equal(t, domain.InvoiceStatusPaid, Derive(100, 150))
	assert.Equal(t, domain.InvoiceStatusPaid, Derive(0, 0))
}
