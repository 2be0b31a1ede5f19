package historyrepo

import (
	"context"

	"github.com/DKhorkin/leadlens/internal/domain"
	"github.com/DKhorkin/leadlens/internal/pg"
	"go.uber.org/zap"
)

// Repository appends immutable search audit records. Entries are written
// once per search attempt and never updated.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, record *domain.SearchRecord) error {
	query := `
		INSERT INTO search_history (request_id, created_at, email, operation_type, query, status, raw_response)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		record.RequestID,
		record.CreatedAt,
		record.Email,
		record.OperationType,
		record.Query,
		record.Status,
		record.RawResponse,
	)
	if err != nil {
		zap.L().Error("can't save search record", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) ([]domain.SearchRecord, error) {
	query := `
        SELECT request_id, created_at, email, operation_type, query, status, raw_response
        FROM search_history
        WHERE email = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		zap.L().Error("failed to fetch search history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.SearchRecord
	for rows.Next() {
		var rec domain.SearchRecord
		err := rows.Scan(&rec.RequestID, &rec.CreatedAt, &rec.Email, &rec.OperationType, &rec.Query, &rec.Status, &rec.RawResponse)
		if err != nil {
			zap.L().Error("failed to scan search record row", zap.Error(err))
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}
