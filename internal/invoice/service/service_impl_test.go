package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/eduverse/eduverse/internal/invoice/domain"
	"github.com/eduverse/eduverse/internal/invoice/repository"
	"github.com/eduverse/eduverse/internal/lock"
	paymentdomain "github.com/eduverse/eduverse/internal/payment/domain"
	paymentrepository "github.com/eduverse/eduverse/internal/payment/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	// SQLite support hack: remove FOR UPDATE clauses
	stripForUpdate := func(d *gorm.DB) {
		sql := d.Statement.SQL.String()
		if strings.Contains(sql, "FOR UPDATE") {
			d.Statement.SQL.Reset()
			d.Statement.SQL.WriteString(strings.ReplaceAll(sql, "FOR UPDATE", ""))
		}
	}
	db.Callback().Query().Before("gorm:query").Register("sqlite_skip_locked", stripForUpdate)
	db.Callback().Row().Before("gorm:row").Register("sqlite_skip_locked_row", stripForUpdate)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec(`
		CREATE TABLE invoices (
			id INTEGER PRIMARY KEY,
			institution_id INTEGER NOT NULL,
			student_id INTEGER NOT NULL,
			currency TEXT NOT NULL DEFAULT 'INR',
			items TEXT NOT NULL,
			gst_percent REAL NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'unpaid',
			due_date TEXT,
			metadata TEXT NOT NULL DEFAULT '{}',
			created_at DATETIME,
			updated_at DATETIME
		)`).Error)
	require.NoError(t, db.Exec(`
		CREATE TABLE payments (
			id INTEGER PRIMARY KEY,
			institution_id INTEGER NOT NULL,
			invoice_id INTEGER NOT NULL,
			amount REAL NOT NULL,
			method TEXT NOT NULL,
			provider TEXT,
			txn_ref TEXT,
			created_at DATETIME
		)`).Error)

	return db
}

func newTestService(t *testing.T, db *gorm.DB) domain.Service {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:       db,
		Log:      zap.NewNop(),
		GenID:    node,
		Repo:     repository.Provide(),
		Payments: paymentrepository.Provide(),
		Keyed:    lock.NewKeyedMutex(),
	})
}

func createTuitionInvoice(t *testing.T, svc domain.Service, institutionID, studentID string) domain.Invoice {
	t.Helper()

	invoice, err := svc.Create(context.Background(), domain.CreateInvoiceRequest{
		InstitutionID: institutionID,
		StudentID:     studentID,
		Items:         []domain.InvoiceItem{{Title: "Tuition", Amount: 1000}},
		GSTPercent:    18,
	})
	require.NoError(t, err)
	return invoice
}

func TestCreateInvoiceValidation(t *testing.T) {
	svc := newTestService(t, openTestDB(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateInvoiceRequest{
		InstitutionID: "not-a-snowflake",
		StudentID:     "2",
		Items:         []domain.InvoiceItem{{Title: "Tuition", Amount: 1000}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInstitution)

	_, err = svc.Create(ctx, domain.CreateInvoiceRequest{
		InstitutionID: "1",
		StudentID:     "2",
	})
	assert.ErrorIs(t, err, domain.ErrEmptyItems)

	_, err = svc.Create(ctx, domain.CreateInvoiceRequest{
		InstitutionID: "1",
		StudentID:     "2",
		Items:         []domain.InvoiceItem{{Title: "Discount", Amount: -50}},
	})
	assert.ErrorIs(t, err, domain.ErrNegativeItemAmount)

	_, err = svc.Create(ctx, domain.CreateInvoiceRequest{
		InstitutionID: "1",
		StudentID:     "2",
		Items:         []domain.InvoiceItem{{Title: "Tuition", Amount: 1000}},
		GSTPercent:    -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidGSTPercent)
}

func TestCreateAndListInvoices(t *testing.T) {
	svc := newTestService(t, openTestDB(t))
	ctx := context.Background()

	invoice := createTuitionInvoice(t, svc, "1", "2")
	assert.Equal(t, domain.InvoiceStatusUnpaid, invoice.Status)
	assert.Equal(t, "INR", invoice.Currency)

	createTuitionInvoice(t, svc, "1", "3")

	all, err := svc.List(ctx, domain.ListInvoiceRequest{InstitutionID: "1"})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.List(ctx, domain.ListInvoiceRequest{InstitutionID: "1", StudentID: "2"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, invoice.ID, filtered[0].ID)

	other, err := svc.List(ctx, domain.ListInvoiceRequest{InstitutionID: "9"})
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRecordPaymentValidation(t *testing.T) {
	svc := newTestService(t, openTestDB(t))
	ctx := context.Background()

	invoice := createTuitionInvoice(t, svc, "1", "2")
	invoiceID := invoice.ID.String()

	_, err := svc.RecordPayment(ctx, domain.RecordPaymentRequest{
		InstitutionID: "1", InvoiceID: invoiceID, Amount: 0, Method: "upi",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.RecordPayment(ctx, domain.RecordPaymentRequest{
		InstitutionID: "1", InvoiceID: invoiceID, Amount: -10, Method: "upi",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.RecordPayment(ctx, domain.RecordPaymentRequest{
		InstitutionID: "1", InvoiceID: invoiceID, Amount: 100, Method: "cheque",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMethod)

	bogus := "paypal"
	_, err = svc.RecordPayment(ctx, domain.RecordPaymentRequest{
		InstitutionID: "1", InvoiceID: invoiceID, Amount: 100, Method: "upi", Provider: &bogus,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidProvider)
}

func TestRecordPaymentInvoiceNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	_, err := svc.RecordPayment(ctx, domain.RecordPaymentRequest{
		InstitutionID: "1", InvoiceID: "12345", Amount: 100, Method: "upi",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// A rejected payment leaves no ledger entry behind.
	var count int64
	require.NoError(t, db.Raw(`SELECT COUNT(*) FROM payments`).Scan(&count).Error)
	assert.Zero(t, count)
}

func TestRecordPaymentCrossTenantIsolation(t *testing.T) {
	svc := newTestService(t, openTestDB(t))
	ctx := context.Background()

	invoice := createTuitionInvoice(t, svc, "1", "2")

	_, err := svc.RecordPayment(ctx, domain.RecordPaymentRequest{
		InstitutionID: "9", InvoiceID: invoice.ID.String(), Amount: 100, Method: "upi",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordPaymentSettlesIncrementally(t *testing.T) {
	svc := newTestService(t, openTestDB(t))
	ctx := context.Background()

	invoice := createTuitionInvoice(t, svc, "1", "2")
	invoiceID := invoice.ID.String()
	provider := "razorpay"

	resp, err := svc.RecordPayment(ctx, domain.RecordPaymentRequest{
		InstitutionID: "1", InvoiceID: invoiceID, Amount: 500, Method: "upi", Provider: &provider,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.PaymentID)
	assert.False(t, resp.StatusPending)
	assert.Equal(t, domain.InvoiceStatusPartiallyPaid, resp.InvoiceStatus)

	resp, err = svc.RecordPayment(ctx, domain.RecordPaymentRequest{
		InstitutionID: "1", InvoiceID: invoiceID, Amount: 680, Method: "card",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, resp.InvoiceStatus)

	// Overpayment keeps the invoice paid.
	resp, err = svc.RecordPayment(ctx, domain.RecordPaymentRequest{
		InstitutionID: "1", InvoiceID: invoiceID, Amount: 50, Method: "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, resp.InvoiceStatus)

	invoices, err := svc.List(ctx, domain.ListInvoiceRequest{InstitutionID: "1", StudentID: "2"})
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, domain.InvoiceStatusPaid, invoices[0].Status)
}

func TestRecordPaymentConcurrentSettlesPaid(t *testing.T) {
	svc := newTestService(t, openTestDB(t))
	ctx := context.Background()

	invoice := createTuitionInvoice(t, svc, "1", "2")
	invoiceID := invoice.ID.String()

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RecordPayment(ctx, domain.RecordPaymentRequest{
				InstitutionID: "1", InvoiceID: invoiceID, Amount: 590, Method: "upi",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	invoices, err := svc.List(ctx, domain.ListInvoiceRequest{InstitutionID: "1"})
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, domain.InvoiceStatusPaid, invoices[0].Status)
}

type failingStatusRepo struct {
	domain.Repository
}

func (r failingStatusRepo) UpdateStatus(context.Context, *gorm.DB, snowflake.ID, snowflake.ID, domain.InvoiceStatus) error {
	return gorm.ErrInvalidDB
}

func TestRecordPaymentSurvivesStatusWriteFailure(t *testing.T) {
	db := openTestDB(t)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:       db,
		Log:      zap.NewNop(),
		GenID:    node,
		Repo:     failingStatusRepo{repository.Provide()},
		Payments: paymentrepository.Provide(),
		Keyed:    lock.NewKeyedMutex(),
	})
	ctx := context.Background()

	invoice := createTuitionInvoice(t, svc, "1", "2")

	resp, err := svc.RecordPayment(ctx, domain.RecordPaymentRequest{
		InstitutionID: "1", InvoiceID: invoice.ID.String(), Amount: 500, Method: "upi",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.PaymentID)
	assert.True(t, resp.StatusPending)
	assert.Empty(t, resp.InvoiceStatus)

	// The payment stays in the ledger even though the status write failed.
	var payments []paymentdomain.Payment
	require.NoError(t, db.Raw(`SELECT * FROM payments WHERE invoice_id = ?`, invoice.ID).Scan(&payments).Error)
	require.Len(t, payments, 1)
	assert.InDelta(t, 500.0, payments[0].Amount, 0.001)
}
