package purchaserepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/DKhorkin/leadlens/internal/domain"
	"github.com/DKhorkin/leadlens/internal/pg"
	"go.uber.org/zap"
)

// ErrDuplicateTransaction is returned when a purchase record already exists
// for the transaction id, i.e. the same confirmed charge was seen before.
var ErrDuplicateTransaction = errors.New("purchase already recorded for transaction")

const uniqueViolationCode = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, purchase *domain.Purchase) error {
	query := `
		INSERT INTO purchases (email, transaction_id, pack_id, amount_minor, credits_granted, outcome, reason, credited, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		purchase.Email,
		purchase.TransactionID,
		purchase.PackID,
		purchase.AmountMinor,
		purchase.CreditsGranted,
		purchase.Outcome,
		purchase.Reason,
		purchase.Credited,
		purchase.CreatedAt,
	).Scan(&purchase.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateTransaction
		}
		zap.L().Error("can't save purchase", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByTransactionID(ctx context.Context, transactionID string) (*domain.Purchase, error) {
	query := `
        SELECT id, email, transaction_id, pack_id, amount_minor, credits_granted, outcome, reason, credited, created_at
        FROM purchases
        WHERE transaction_id = $1
    `
	row := r.db.QueryRow(ctx, query, transactionID)
	var p domain.Purchase
	err := row.Scan(&p.ID, &p.Email, &p.TransactionID, &p.PackID, &p.AmountMinor, &p.CreditsGranted, &p.Outcome, &p.Reason, &p.Credited, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find purchase by transaction id", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// MarkCredited flips the credited flag exactly once. The false return means
// another caller already applied the grant for this transaction.
func (r *Repository) MarkCredited(ctx context.Context, transactionID string) (bool, error) {
	query := `
		UPDATE purchases
		SET credited = TRUE
		WHERE transaction_id = $1 AND NOT credited
	`
	tag, err := r.db.Exec(ctx, query, transactionID)
	if err != nil {
		zap.L().Error("failed to mark purchase credited", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// FindUncredited returns succeeded purchases whose credit grant was never
// applied, skipping records younger than olderThan so in-flight purchases
// are left to their orchestrator.
func (r *Repository) FindUncredited(ctx context.Context, olderThan time.Duration, limit uint32) ([]domain.Purchase, error) {
	query := `
        SELECT id, email, transaction_id, pack_id, amount_minor, credits_granted, outcome, reason, credited, created_at
        FROM purchases
        WHERE outcome = 'succeeded' AND NOT credited AND created_at < now() - $1::interval
        ORDER BY created_at
        LIMIT $2
    `
	interval := olderThan.String()
	rows, err := r.db.Query(ctx, query, interval, limit)
	if err != nil {
		zap.L().Error("failed to fetch uncredited purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		err := rows.Scan(&p.ID, &p.Email, &p.TransactionID, &p.PackID, &p.AmountMinor, &p.CreditsGranted, &p.Outcome, &p.Reason, &p.Credited, &p.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan purchase row", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, p)
	}

	return purchases, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) ([]domain.Purchase, error) {
	query := `
        SELECT id, email, transaction_id, pack_id, amount_minor, credits_granted, outcome, reason, credited, created_at
        FROM purchases
        WHERE email = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		zap.L().Error("failed to fetch purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		err := rows.Scan(&p.ID, &p.Email, &p.TransactionID, &p.PackID, &p.AmountMinor, &p.CreditsGranted, &p.Outcome, &p.Reason, &p.Credited, &p.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan purchase row", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, p)
	}

	return purchases, nil
}
