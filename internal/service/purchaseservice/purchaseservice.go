package purchaseservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DKhorkin/leadlens/internal/domain"
	"github.com/DKhorkin/leadlens/internal/pg"
	purchaserepo "github.com/DKhorkin/leadlens/internal/repo/purchase-repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxCreditRetries    = 3
	creditRetryInterval = time.Second * 1
)

type Gateway interface {
	EnsureCustomer(ctx context.Context, email string) (string, error)
	ListPaymentMethods(ctx context.Context, customerID string) ([]domain.PaymentMethod, error)
	SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error
	DetachPaymentMethod(ctx context.Context, paymentMethodID string) error
	Charge(ctx context.Context, req domain.ChargeRequest) (*domain.Charge, error)
}

type Ledger interface {
	GetBalance(ctx context.Context, email string) (int64, error)
	Credit(ctx context.Context, email string, amount int64) (int64, error)
}

type Repo interface {
	Save(ctx context.Context, purchase *domain.Purchase) error
	FindByTransactionID(ctx context.Context, transactionID string) (*domain.Purchase, error)
	MarkCredited(ctx context.Context, transactionID string) (bool, error)
	FindByEmail(ctx context.Context, email string) ([]domain.Purchase, error)
}

type Catalog interface {
	Find(packID string) (domain.CreditPack, bool)
}

var (
	ErrEmptyEmail      = errors.New("email is required")
	ErrUnknownPack     = errors.New("unknown credit pack")
	ErrNoPaymentMethod = errors.New("no payment method on file")
	ErrPaymentFailed   = errors.New("payment failed")
	ErrGateway         = errors.New("payment gateway unavailable")
	ErrStorage         = errors.New("storage unavailable")
)

type Result struct {
	Outcome          string
	RemainingCredits int64
	TransactionID    string
	Reason           string
}

// Service drives the purchase protocol: resolve the processor customer,
// resolve a payment method, charge, then apply the credit grant exactly
// once. The charge's transaction id is the idempotency key; a retried
// request that observes a prior succeeded record short-circuits without a
// second credit.
type Service struct {
	gateway   Gateway
	ledger    Ledger
	repo      Repo
	catalog   Catalog
	txManager pg.TXManager
	currency  string
}

func New(gateway Gateway, ledger Ledger, repo Repo, catalog Catalog, txManager pg.TXManager, currency string) *Service {
	return &Service{
		gateway:   gateway,
		ledger:    ledger,
		repo:      repo,
		catalog:   catalog,
		txManager: txManager,
		currency:  currency,
	}
}

func (s *Service) PurchasePack(ctx context.Context, email, packID, paymentMethodID, requestID string) (*Result, error) {
	if email == "" {
		return nil, ErrEmptyEmail
	}

	pack, ok := s.catalog.Find(packID)
	if !ok {
		return nil, ErrUnknownPack
	}

	if requestID == "" {
		requestID = uuid.NewString()
	}

	customerID, err := s.gateway.EnsureCustomer(ctx, email)
	if err != nil {
		zap.L().Error("failed to resolve processor customer", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	paymentMethodID, err = s.resolvePaymentMethod(ctx, customerID, paymentMethodID)
	if err != nil {
		return nil, err
	}

	charge, err := s.gateway.Charge(ctx, domain.ChargeRequest{
		CustomerID:      customerID,
		PaymentMethodID: paymentMethodID,
		AmountMinor:     pack.PriceMinorUnits,
		Currency:        s.currency,
		IdempotencyKey:  requestID,
	})
	if err != nil {
		// Undetermined outcomes (timeouts, transport faults) count as
		// failures: no credit is granted for a charge we cannot confirm.
		zap.L().Error("charge submission failed", zap.String("email", email), zap.Error(err))
		s.recordFailure(ctx, email, pack, requestID, err.Error())
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	if charge.Status != domain.ChargeSucceeded {
		transactionID := charge.TransactionID
		if transactionID == "" {
			transactionID = requestID
		}
		s.recordFailure(ctx, email, pack, transactionID, charge.FailureReason)
		return nil, fmt.Errorf("%w: %s", ErrPaymentFailed, charge.FailureReason)
	}

	existing, err := s.repo.FindByTransactionID(ctx, charge.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if existing != nil && existing.Outcome == domain.PurchaseSucceeded {
		return s.replayResult(ctx, existing)
	}

	purchase := &domain.Purchase{
		Email:          email,
		TransactionID:  charge.TransactionID,
		PackID:         pack.ID,
		AmountMinor:    charge.AmountMinor,
		CreditsGranted: pack.CreditsGranted,
		Outcome:        domain.PurchaseSucceeded,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.Save(ctx, purchase); err != nil {
		if errors.Is(err, purchaserepo.ErrDuplicateTransaction) {
			recorded, findErr := s.repo.FindByTransactionID(ctx, charge.TransactionID)
			if findErr == nil && recorded != nil {
				return s.replayResult(ctx, recorded)
			}
		}
		// The charge is confirmed but no record exists: surfacing the
		// storage fault leaves the charge for operator reconciliation.
		zap.L().Error("failed to record confirmed purchase",
			zap.String("transactionID", charge.TransactionID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	newBalance, err := s.ApplyCredit(ctx, purchase)
	if err != nil {
		return nil, err
	}

	return &Result{
		Outcome:          domain.PurchaseSucceeded,
		RemainingCredits: newBalance,
		TransactionID:    charge.TransactionID,
	}, nil
}

// ApplyCredit grants the purchase's credits exactly once. The credited
// flag flips and the ledger increments inside one transaction, so a crash
// or a concurrent sweeper pass can never double-apply. Client cancellation
// is ignored past this point: once the charge is confirmed the credit must
// land.
func (s *Service) ApplyCredit(ctx context.Context, purchase *domain.Purchase) (int64, error) {
	ctx = context.WithoutCancel(ctx)

	var (
		newBalance int64
		already    bool
		err        error
	)
	for attempt := 1; attempt <= maxCreditRetries; attempt++ {
		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			marked, markErr := s.repo.MarkCredited(ctx, purchase.TransactionID)
			if markErr != nil {
				return markErr
			}
			if !marked {
				already = true
				return nil
			}
			balance, creditErr := s.ledger.Credit(ctx, purchase.Email, purchase.CreditsGranted)
			if creditErr != nil {
				return creditErr
			}
			newBalance = balance
			return nil
		})
		if err == nil {
			break
		}
		zap.L().Warn("credit grant attempt failed",
			zap.String("transactionID", purchase.TransactionID),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt < maxCreditRetries {
			time.Sleep(creditRetryInterval * time.Duration(attempt))
		}
	}
	if err != nil {
		// The purchase record survives uncredited; the reconciler picks
		// it up, so the grant is delayed rather than lost.
		zap.L().Error("credit grant failed after retries",
			zap.String("transactionID", purchase.TransactionID), zap.Error(err))
		return 0, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if already {
		return s.ledger.GetBalance(ctx, purchase.Email)
	}
	return newBalance, nil
}

func (s *Service) resolvePaymentMethod(ctx context.Context, customerID, paymentMethodID string) (string, error) {
	if paymentMethodID != "" {
		return paymentMethodID, nil
	}
	methods, err := s.gateway.ListPaymentMethods(ctx, customerID)
	if err != nil {
		zap.L().Error("failed to list payment methods", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	for _, m := range methods {
		if m.IsDefault {
			return m.ID, nil
		}
	}
	return "", ErrNoPaymentMethod
}

// recordFailure appends the failed attempt for history and audit. A
// storage fault here is logged and swallowed: the caller already has a
// payment failure to report.
func (s *Service) recordFailure(ctx context.Context, email string, pack domain.CreditPack, transactionID, reason string) {
	purchase := &domain.Purchase{
		Email:          email,
		TransactionID:  transactionID,
		PackID:         pack.ID,
		AmountMinor:    pack.PriceMinorUnits,
		CreditsGranted: pack.CreditsGranted,
		Outcome:        domain.PurchaseFailed,
		Reason:         reason,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.Save(context.WithoutCancel(ctx), purchase); err != nil && !errors.Is(err, purchaserepo.ErrDuplicateTransaction) {
		zap.L().Error("failed to record failed purchase", zap.Error(err))
	}
}

func (s *Service) replayResult(ctx context.Context, recorded *domain.Purchase) (*Result, error) {
	balance, err := s.ledger.GetBalance(ctx, recorded.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	zap.L().Info("purchase replay detected, returning recorded result",
		zap.String("transactionID", recorded.TransactionID))
	return &Result{
		Outcome:          recorded.Outcome,
		RemainingCredits: balance,
		TransactionID:    recorded.TransactionID,
	}, nil
}

func (s *Service) ListPaymentMethods(ctx context.Context, email string) ([]domain.PaymentMethod, error) {
	if email == "" {
		return nil, ErrEmptyEmail
	}
	customerID, err := s.gateway.EnsureCustomer(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	methods, err := s.gateway.ListPaymentMethods(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return methods, nil
}

func (s *Service) SetDefaultPaymentMethod(ctx context.Context, email, paymentMethodID string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	customerID, err := s.gateway.EnsureCustomer(ctx, email)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGateway, err)
	}
	if err := s.gateway.SetDefaultPaymentMethod(ctx, customerID, paymentMethodID); err != nil {
		return fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return nil
}

func (s *Service) DeletePaymentMethod(ctx context.Context, email, paymentMethodID string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	if _, err := s.gateway.EnsureCustomer(ctx, email); err != nil {
		return fmt.Errorf("%w: %v", ErrGateway, err)
	}
	if err := s.gateway.DetachPaymentMethod(ctx, paymentMethodID); err != nil {
		return fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return nil
}

func (s *Service) GetPurchases(ctx context.Context, email string) ([]domain.Purchase, error) {
	if email == "" {
		return nil, ErrEmptyEmail
	}
	purchases, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("failed to fetch purchases", zap.Error(err))
		return nil, err
	}
	return purchases, nil
}
