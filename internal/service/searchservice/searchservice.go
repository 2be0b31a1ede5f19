package searchservice

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/DKhorkin/leadlens/internal/domain"
	"github.com/DKhorkin/leadlens/internal/service/ledgerservice"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Ledger interface {
	Debit(ctx context.Context, email string, amount int64) (int64, error)
}

type HistoryRepo interface {
	Save(ctx context.Context, record *domain.SearchRecord) error
	FindByEmail(ctx context.Context, email string) ([]domain.SearchRecord, error)
}

type SearchClient interface {
	Search(ctx context.Context, operationType string, query json.RawMessage) ([]byte, error)
}

var (
	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidQuery     = errors.New("query is required")
	ErrPurchaseRequired = errors.New("purchase required")
)

type Result struct {
	RemainingCredits int64
	Status           string
	Raw              json.RawMessage
}

// Service runs the search debit flow: debit first, search second, one
// history entry per attempt no matter the outcome. A debited search that
// fails downstream stays debited; the credit is considered consumed by the
// attempt.
type Service struct {
	ledger Ledger
	repo   HistoryRepo
	client SearchClient
	cost   int64
}

func New(ledger Ledger, repo HistoryRepo, client SearchClient, cost int64) *Service {
	return &Service{
		ledger: ledger,
		repo:   repo,
		client: client,
		cost:   cost,
	}
}

func (s *Service) UseSearch(ctx context.Context, email, operationType string, query json.RawMessage) (*Result, error) {
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if operationType == "" || len(query) == 0 || !json.Valid(query) {
		return nil, ErrInvalidQuery
	}

	record := &domain.SearchRecord{
		RequestID:     uuid.NewString(),
		CreatedAt:     time.Now(),
		Email:         email,
		OperationType: operationType,
		Query:         query,
	}

	remaining, err := s.ledger.Debit(ctx, email, s.cost)
	if err != nil {
		if errors.Is(err, ledgerservice.ErrInsufficientCredits) {
			record.Status = domain.SearchStatusNoCredits
			s.record(ctx, record)
			return nil, ErrPurchaseRequired
		}
		zap.L().Error("failed to debit search cost", zap.Error(err))
		return nil, err
	}

	raw, err := s.client.Search(ctx, operationType, query)
	if err != nil {
		zap.L().Error("search provider call failed",
			zap.String("requestID", record.RequestID), zap.Error(err))
		record.Status = domain.SearchStatusFailed
	} else {
		record.Status = domain.SearchStatusSuccess
		record.RawResponse = raw
	}
	s.record(ctx, record)

	return &Result{
		RemainingCredits: remaining,
		Status:           record.Status,
		Raw:              record.RawResponse,
	}, nil
}

func (s *Service) GetSearches(ctx context.Context, email string) ([]domain.SearchRecord, error) {
	if email == "" {
		return nil, ErrEmptyEmail
	}
	records, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("failed to fetch search history", zap.Error(err))
		return nil, err
	}
	return records, nil
}

// record appends the audit entry. The debit already happened, so a storage
// fault here is logged rather than turned into a client-facing error.
func (s *Service) record(ctx context.Context, record *domain.SearchRecord) {
	if err := s.repo.Save(context.WithoutCancel(ctx), record); err != nil {
		zap.L().Error("failed to save search record",
			zap.String("requestID", record.RequestID), zap.Error(err))
	}
}
