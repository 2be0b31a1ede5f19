package historyrepo

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DKhorkin/leadlens/internal/domain"
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

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`INSERT INTO search_history (request_id, created_at, email, operation_type, query, status, raw_response) VALUES ($1, $2, $3, $4, $5, $6, $7)`)
	now := time.Now()
	record := &domain.SearchRecord{
		RequestID:     "req-1",
		CreatedAt:     now,
		Email:         "user@example.com",
		OperationType: "verify",
		Query:         json.RawMessage(`{"email":"target@example.com"}`),
		Status:        domain.SearchStatusSuccess,
		RawResponse:   json.RawMessage(`{"valid":true}`),
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Record saved",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("req-1", now, "user@example.com", "verify", record.Query, domain.SearchStatusSuccess, record.RawResponse).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("req-1", now, "user@example.com", "verify", record.Query, domain.SearchStatusSuccess, record.RawResponse).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.Save(context.Background(), record)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT request_id, created_at, email, operation_type, query, status, raw_response FROM search_history WHERE email = $1 ORDER BY created_at DESC`)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "History returned newest first",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"request_id", "created_at", "email", "operation_type", "query", "status", "raw_response"}).
					AddRow("req-2", now, "user@example.com", "verify", json.RawMessage(`{}`), domain.SearchStatusSuccess, json.RawMessage(`{}`)).
					AddRow("req-1", now.Add(-time.Hour), "user@example.com", "enrich", json.RawMessage(`{}`), domain.SearchStatusNoCredits, nil)
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

			records, err := repo.FindByEmail(context.Background(), "user@example.com")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, records, tt.count)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
