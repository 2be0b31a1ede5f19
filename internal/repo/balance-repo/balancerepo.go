package balancerepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/DKhorkin/leadlens/internal/domain"
	"github.com/DKhorkin/leadlens/internal/pg"
	"go.uber.org/zap"
)

// Repository is the durable ledger store. Debit and Credit are single
// conditional statements so concurrent updates to one account serialize at
// the row level and the balance can never observe a negative value.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetBalance(ctx context.Context, email string) (*domain.Balance, error) {
	query := `
        SELECT email, credits
        FROM balances
        WHERE email = $1
    `
	row := r.db.QueryRow(ctx, query, email)
	var balance domain.Balance
	err := row.Scan(&balance.Email, &balance.Credits)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Debit decrements the balance only when enough credits remain. A nil
// result without error means the check failed: the account is missing or
// holds fewer credits than the requested amount.
func (r *Repository) Debit(ctx context.Context, email string, amount int64) (*domain.Balance, error) {
	query := `
		UPDATE balances
		SET credits = credits - $2
		WHERE email = $1 AND credits >= $2
		RETURNING email, credits
	`
	row := r.db.QueryRow(ctx, query, email, amount)
	var balance domain.Balance
	err := row.Scan(&balance.Email, &balance.Credits)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to debit balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Credit increments the balance, creating the account on first grant.
func (r *Repository) Credit(ctx context.Context, email string, amount int64) (*domain.Balance, error) {
	query := `
		INSERT INTO balances (email, credits)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET credits = balances.credits + EXCLUDED.credits
		RETURNING email, credits
	`
	row := r.db.QueryRow(ctx, query, email, amount)
	var balance domain.Balance
	err := row.Scan(&balance.Email, &balance.Credits)
	if err != nil {
		zap.L().Error("failed to credit balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) Reset(ctx context.Context, email string) (*domain.Balance, error) {
	query := `
		INSERT INTO balances (email, credits)
		VALUES ($1, 0)
		ON CONFLICT (email) DO UPDATE SET credits = 0
		RETURNING email, credits
	`
	row := r.db.QueryRow(ctx, query, email)
	var balance domain.Balance
	err := row.Scan(&balance.Email, &balance.Credits)
	if err != nil {
		zap.L().Error("failed to reset balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}
