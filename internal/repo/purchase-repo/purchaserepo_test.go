package purchaserepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DKhorkin/leadlens/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var insertQuery = regexp.QuoteMeta(`INSERT INTO purchases (email, transaction_id, pack_id, amount_minor, credits_granted, outcome, reason, credited, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`)

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	purchase := &domain.Purchase{
		Email:          "user@example.com",
		TransactionID:  "pi_123",
		PackID:         "starter",
		AmountMinor:    500,
		CreditsGranted: 50,
		Outcome:        domain.PurchaseSucceeded,
		CreatedAt:      now,
	}

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
	}{
		{
			name: "Purchase saved",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(int64(1))
				mock.ExpectQuery(insertQuery).
					WithArgs("user@example.com", "pi_123", "starter", int64(500), int64(50), domain.PurchaseSucceeded, "", false, now).
					WillReturnRows(rows)
			},
			expectedErr: nil,
		},
		{
			name: "Duplicate transaction id",
			mockSetup: func() {
				mock.ExpectQuery(insertQuery).
					WithArgs("user@example.com", "pi_123", "starter", int64(500), int64(50), domain.PurchaseSucceeded, "", false, now).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectedErr: ErrDuplicateTransaction,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(insertQuery).
					WithArgs("user@example.com", "pi_123", "starter", int64(500), int64(50), domain.PurchaseSucceeded, "", false, now).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.Save(context.Background(), purchase)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedErr, ErrDuplicateTransaction) {
					assert.ErrorIs(t, err, ErrDuplicateTransaction)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), purchase.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByTransactionID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, email, transaction_id, pack_id, amount_minor, credits_granted, outcome, reason, credited, created_at FROM purchases WHERE transaction_id = $1`)
	now := time.Now()

	tests := []struct {
		name      string
		txID      string
		mockSetup func()
		expectErr bool
		result    *domain.Purchase
	}{
		{
			name: "Existing transaction found",
			txID: "pi_123",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "email", "transaction_id", "pack_id", "amount_minor", "credits_granted", "outcome", "reason", "credited", "created_at"}).
					AddRow(int64(1), "user@example.com", "pi_123", "starter", int64(500), int64(50), domain.PurchaseSucceeded, "", true, now)
				mock.ExpectQuery(query).WithArgs("pi_123").WillReturnRows(rows)
			},
			result: &domain.Purchase{
				ID:             1,
				Email:          "user@example.com",
				TransactionID:  "pi_123",
				PackID:         "starter",
				AmountMinor:    500,
				CreditsGranted: 50,
				Outcome:        domain.PurchaseSucceeded,
				Credited:       true,
				CreatedAt:      now,
			},
		},
		{
			name: "Unknown transaction returns nil",
			txID: "pi_missing",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("pi_missing").WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			txID: "pi_123",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("pi_123").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			p, err := repo.FindByTransactionID(context.Background(), tt.txID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, p)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_MarkCredited(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`UPDATE purchases SET credited = TRUE WHERE transaction_id = $1 AND NOT credited`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		marked    bool
	}{
		{
			name: "First mark succeeds",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("pi_123").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			marked: true,
		},
		{
			name: "Already credited marks nothing",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("pi_123").WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			marked: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("pi_123").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			marked, err := repo.MarkCredited(context.Background(), "pi_123")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.marked, marked)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindUncredited(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, email, transaction_id, pack_id, amount_minor, credits_granted, outcome, reason, credited, created_at FROM purchases WHERE outcome = 'succeeded' AND NOT credited AND created_at < now() - $1::interval ORDER BY created_at LIMIT $2`)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "email", "transaction_id", "pack_id", "amount_minor", "credits_granted", "outcome", "reason", "credited", "created_at"}).
		AddRow(int64(1), "user@example.com", "pi_123", "starter", int64(500), int64(50), domain.PurchaseSucceeded, "", false, now)
	mock.ExpectQuery(query).WithArgs("1m0s", uint32(100)).WillReturnRows(rows)

	purchases, err := repo.FindUncredited(context.Background(), time.Minute, 100)
	assert.NoError(t, err)
	assert.Len(t, purchases, 1)
	assert.Equal(t, "pi_123", purchases[0].TransactionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, email, transaction_id, pack_id, amount_minor, credits_granted, outcome, reason, credited, created_at FROM purchases WHERE email = $1 ORDER BY created_at DESC`)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Purchases returned newest first",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "email", "transaction_id", "pack_id", "amount_minor", "credits_granted", "outcome", "reason", "credited", "created_at"}).
					AddRow(int64(2), "user@example.com", "pi_456", "growth", int64(2000), int64(250), domain.PurchaseSucceeded, "", true, now).
					AddRow(int64(1), "user@example.com", "pi_123", "starter", int64(500), int64(50), domain.PurchaseFailed, "card declined", false, now.Add(-time.Hour))
				mock.ExpectQuery(query).WithArgs("user@example.com").WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("user@example.com").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			purchases, err := repo.FindByEmail(context.Background(), "user@example.com")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, purchases, tt.count)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
