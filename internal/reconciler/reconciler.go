package reconciler

import (
	"context"
	"sync"
	"time"

	"github.com/DKhorkin/leadlens/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultLimit         = 1000
	defaultWorkers       = 10
	defaultSweepInterval = time.Second * 30
	defaultGracePeriod   = time.Minute
)

type PurchaseRepo interface {
	FindUncredited(ctx context.Context, olderThan time.Duration, limit uint32) ([]domain.Purchase, error)
}

type CreditApplier interface {
	ApplyCredit(ctx context.Context, purchase *domain.Purchase) (int64, error)
}

var inFlight sync.Map

// Service sweeps succeeded purchases whose credit grant never landed
// (a crash or storage fault between charge confirmation and credit) and
// re-applies the grant. The applier flips the record's credited flag and
// increments the ledger in one transaction, so a sweep can never
// double-apply what an orchestrator already granted. The grace period
// keeps the sweeper off purchases whose orchestrator is still retrying.
type Service struct {
	repo          PurchaseRepo
	applier       CreditApplier
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
	gracePeriod   time.Duration
}

func New(repo PurchaseRepo, applier CreditApplier) *Service {
	return &Service{
		repo:          repo,
		applier:       applier,
		limit:         defaultLimit,
		workerPool:    NewWorkerPool(defaultWorkers),
		sweepInterval: defaultSweepInterval,
		gracePeriod:   defaultGracePeriod,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Credit reconciler started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	purchases, err := s.repo.FindUncredited(ctx, s.gracePeriod, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch uncredited purchases", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, purchase := range purchases {
		purchase := purchase

		if _, loaded := inFlight.LoadOrStore(purchase.TransactionID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlight.Delete(purchase.TransactionID)
				return s.handlePurchase(ctx, purchase)
			})
			if err != nil {
				inFlight.Delete(purchase.TransactionID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reconciling purchases", zap.Error(err))
	}
}

func (s *Service) handlePurchase(ctx context.Context, purchase domain.Purchase) error {
	balance, err := s.applier.ApplyCredit(ctx, &purchase)
	if err != nil {
		return err
	}
	zap.L().Info("Recovered lost credit grant",
		zap.String("transactionID", purchase.TransactionID),
		zap.String("email", purchase.Email),
		zap.Int64("credits", purchase.CreditsGranted),
		zap.Int64("balance", balance),
	)
	return nil
}
