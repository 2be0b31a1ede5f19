package ledgerservice

import (
	"context"
	"errors"

	"github.com/DKhorkin/leadlens/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	GetBalance(ctx context.Context, email string) (*domain.Balance, error)
	Debit(ctx context.Context, email string, amount int64) (*domain.Balance, error)
	Credit(ctx context.Context, email string, amount int64) (*domain.Balance, error)
	Reset(ctx context.Context, email string) (*domain.Balance, error)
}

var (
	ErrEmptyEmail          = errors.New("email is required")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientCredits = errors.New("insufficient credits")
)

// Service is the credit ledger core. It owns all writes to account
// balances; the store serializes concurrent updates per account, so two
// debits racing over the last credit can never both succeed.
type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// GetBalance reports the current credit count. An account that was never
// credited reads as zero.
func (s *Service) GetBalance(ctx context.Context, email string) (int64, error) {
	if email == "" {
		return 0, ErrEmptyEmail
	}
	balance, err := s.repo.GetBalance(ctx, email)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	if balance == nil {
		return 0, nil
	}
	return balance.Credits, nil
}

// Debit withdraws amount credits in one conditional store update and
// returns the remaining balance. A balance below amount, including a
// missing account, rejects the debit without mutation.
func (s *Service) Debit(ctx context.Context, email string, amount int64) (int64, error) {
	if email == "" {
		return 0, ErrEmptyEmail
	}
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	balance, err := s.repo.Debit(ctx, email, amount)
	if err != nil {
		zap.L().Error("failed to debit balance", zap.Error(err))
		return 0, err
	}
	if balance == nil {
		return 0, ErrInsufficientCredits
	}
	return balance.Credits, nil
}

// Credit grants amount credits, creating the account on first grant.
// Callers guard against duplicate grants for the same charge; the ledger
// itself applies every call it receives.
func (s *Service) Credit(ctx context.Context, email string, amount int64) (int64, error) {
	if email == "" {
		return 0, ErrEmptyEmail
	}
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	balance, err := s.repo.Credit(ctx, email, amount)
	if err != nil {
		zap.L().Error("failed to credit balance", zap.Error(err))
		return 0, err
	}
	return balance.Credits, nil
}

// Reset zeroes the balance. Operator tooling only.
func (s *Service) Reset(ctx context.Context, email string) (int64, error) {
	if email == "" {
		return 0, ErrEmptyEmail
	}
	balance, err := s.repo.Reset(ctx, email)
	if err != nil {
		zap.L().Error("failed to reset balance", zap.Error(err))
		return 0, err
	}
	zap.L().Info("balance reset", zap.String("email", email))
	return balance.Credits, nil
}
