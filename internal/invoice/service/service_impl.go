package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/eduverse/eduverse/internal/invoice/domain"
	"github.com/eduverse/eduverse/internal/invoice/settlement"
	"github.com/eduverse/eduverse/internal/lock"
	"github.com/eduverse/eduverse/internal/observability/metrics"
	paymentdomain "github.com/eduverse/eduverse/internal/payment/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	settleLockTTL   = 5 * time.Second
	settleLockRetry = 20 * time.Millisecond
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	Payments paymentdomain.Repository
	Keyed    *lock.KeyedMutex
	Locker   *lock.Locker     `optional:"true"`
	Metrics  *metrics.Metrics `optional:"true"`
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	payments paymentdomain.Repository
	keyed    *lock.KeyedMutex
	locker   *lock.Locker
	metrics  *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("invoice.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		payments: p.Payments,
		keyed:    p.Keyed,
		locker:   p.Locker,
		metrics:  p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateInvoiceRequest) (domain.Invoice, error) {
	if s.db == nil {
		return domain.Invoice{}, domain.ErrStoreUnavailable
	}

	institutionID, err := parseID(req.InstitutionID)
	if err != nil {
		return domain.Invoice{}, domain.ErrInvalidInstitution
	}
	studentID, err := parseID(req.StudentID)
	if err != nil {
		return domain.Invoice{}, domain.ErrInvalidStudent
	}

	if len(req.Items) == 0 {
		return domain.Invoice{}, domain.ErrEmptyItems
	}
	for _, item := range req.Items {
		if item.Amount < 0 {
			return domain.Invoice{}, domain.ErrNegativeItemAmount
		}
	}
	if req.GSTPercent < 0 {
		return domain.Invoice{}, domain.ErrInvalidGSTPercent
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "INR"
	}

	metadata := datatypes.JSONMap{}
	for k, v := range req.Metadata {
		metadata[k] = v
	}

	now := time.Now().UTC()
	invoice := domain.Invoice{
		ID:            s.genID.Generate(),
		InstitutionID: institutionID,
		StudentID:     studentID,
		Currency:      currency,
		Items:         datatypes.NewJSONSlice(req.Items),
		GSTPercent:    req.GSTPercent,
		Status:        domain.InvoiceStatusUnpaid,
		DueDate:       req.DueDate,
		Metadata:      metadata,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, s.db, &invoice); err != nil {
		return domain.Invoice{}, err
	}

	s.metrics.RecordInvoiceCreated(ctx, currency)
	return invoice, nil
}

func (s *Service) List(ctx context.Context, req domain.ListInvoiceRequest) ([]domain.Invoice, error) {
	if s.db == nil {
		return nil, domain.ErrStoreUnavailable
	}

	institutionID, err := parseID(req.InstitutionID)
	if err != nil {
		return nil, domain.ErrInvalidInstitution
	}

	var studentID *snowflake.ID
	if strings.TrimSpace(req.StudentID) != "" {
		parsed, err := parseID(req.StudentID)
		if err != nil {
			return nil, domain.ErrInvalidStudent
		}
		studentID = &parsed
	}

	return s.repo.List(ctx, s.db, institutionID, studentID)
}

// RecordPayment appends to the ledger and resettles the invoice. The
// payment write is durable before any settlement work starts; settlement
// failures after that point surface as StatusPending rather than an
// error, since the ledger already holds the payment.
func (s *Service) RecordPayment(ctx context.Context, req domain.RecordPaymentRequest) (domain.RecordPaymentResponse, error) {
	if s.db == nil {
		return domain.RecordPaymentResponse{}, domain.ErrStoreUnavailable
	}

	institutionID, err := parseID(req.InstitutionID)
	if err != nil {
		return domain.RecordPaymentResponse{}, domain.ErrInvalidInstitution
	}
	invoiceID, err := parseID(req.InvoiceID)
	if err != nil {
		return domain.RecordPaymentResponse{}, domain.ErrInvalidInvoice
	}

	if req.Amount <= 0 {
		return domain.RecordPaymentResponse{}, domain.ErrInvalidAmount
	}
	method := paymentdomain.Method(strings.ToLower(strings.TrimSpace(req.Method)))
	if !method.Valid() {
		return domain.RecordPaymentResponse{}, domain.ErrInvalidMethod
	}
	var provider *paymentdomain.Provider
	if req.Provider != nil && strings.TrimSpace(*req.Provider) != "" {
		parsed := paymentdomain.Provider(strings.ToLower(strings.TrimSpace(*req.Provider)))
		if !parsed.Valid() {
			return domain.RecordPaymentResponse{}, domain.ErrInvalidProvider
		}
		provider = &parsed
	}

	// Validation happens before any write, so a missing invoice leaves no
	// partial state behind.
	invoice, err := s.repo.FindByID(ctx, s.db, institutionID, invoiceID)
	if err != nil {
		return domain.RecordPaymentResponse{}, err
	}
	if invoice == nil {
		return domain.RecordPaymentResponse{}, domain.ErrNotFound
	}

	payment := paymentdomain.Payment{
		ID:            s.genID.Generate(),
		InstitutionID: institutionID,
		InvoiceID:     invoiceID,
		Amount:        req.Amount,
		Method:        method,
		Provider:      provider,
		TxnRef:        req.TxnRef,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.payments.Insert(ctx, s.db, &payment); err != nil {
		return domain.RecordPaymentResponse{}, err
	}
	s.metrics.RecordPayment(ctx, string(method))

	// From here on the payment is durable and never rolled back.
	status, err := s.settle(ctx, institutionID, invoiceID)
	if err != nil {
		s.log.Error("settlement failed after durable payment write",
			zap.String("invoice_id", invoiceID.String()),
			zap.String("payment_id", payment.ID.String()),
			zap.Error(err),
		)
		return domain.RecordPaymentResponse{
			PaymentID:     payment.ID.String(),
			StatusPending: true,
		}, nil
	}

	return domain.RecordPaymentResponse{
		PaymentID:     payment.ID.String(),
		InvoiceStatus: status,
	}, nil
}

// settle serializes read-ledger-then-write-status per invoice. In-process
// callers queue on a keyed mutex; across instances a redis lock covers
// the same window when configured. The row lock inside the transaction
// is the final guard.
func (s *Service) settle(ctx context.Context, institutionID, invoiceID snowflake.ID) (domain.InvoiceStatus, error) {
	key := "settle:" + invoiceID.String()

	s.keyed.Lock(key)
	defer s.keyed.Unlock(key)

	if s.locker != nil {
		token, err := s.acquire(ctx, key)
		if err != nil {
			return "", err
		}
		defer func() {
			if err := s.locker.Release(context.WithoutCancel(ctx), key, token); err != nil {
				s.log.Warn("failed to release settlement lock", zap.String("key", key), zap.Error(err))
			}
		}()
	}

	var status domain.InvoiceStatus
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		invoice, err := s.repo.FindByIDForUpdate(ctx, tx, institutionID, invoiceID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return domain.ErrNotFound
		}

		ledger, err := s.payments.ListByInvoice(ctx, tx, institutionID, invoiceID)
		if err != nil {
			return err
		}

		outcome := settlement.Settle(invoice.Items, invoice.GSTPercent, ledger)
		status = outcome.Status
		if status == invoice.Status {
			return nil
		}
		return s.repo.UpdateStatus(ctx, tx, institutionID, invoiceID, status)
	})
	if err != nil {
		return "", err
	}

	s.metrics.RecordSettlement(ctx, string(status))
	return status, nil
}

func (s *Service) acquire(ctx context.Context, key string) (string, error) {
	for {
		token, ok, err := s.locker.TryLock(ctx, key, settleLockTTL)
		if err != nil {
			return "", err
		}
		if ok {
			return token, nil
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(settleLockRetry):
		}
	}
}

func parseID(value string) (snowflake.ID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, errors.New("empty_id")
	}
	return snowflake.ParseString(trimmed)
}
