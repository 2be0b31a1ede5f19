package repo

import (
	"github.com/DKhorkin/leadlens/internal/pg"
	"github.com/DKhorkin/leadlens/internal/reconciler"
	balancerepo "github.com/DKhorkin/leadlens/internal/repo/balance-repo"
	historyrepo "github.com/DKhorkin/leadlens/internal/repo/history-repo"
	purchaserepo "github.com/DKhorkin/leadlens/internal/repo/purchase-repo"
	"github.com/DKhorkin/leadlens/internal/service/ledgerservice"
	"github.com/DKhorkin/leadlens/internal/service/purchaseservice"
	"github.com/DKhorkin/leadlens/internal/service/searchservice"
)

// PurchaseRepo is served by a single repository: the purchase
// orchestrator writes and replays records, the reconciler sweeps the
// uncredited ones.
type PurchaseRepo interface {
	purchaseservice.Repo
	reconciler.PurchaseRepo
}

type Repositories struct {
	BalanceRepo  ledgerservice.Repo
	PurchaseRepo PurchaseRepo
	HistoryRepo  searchservice.HistoryRepo
}

func New(conn pg.Database) *Repositories {
	balanceRepo := balancerepo.New(conn)
	purchaseRepo := purchaserepo.New(conn)
	historyRepo := historyrepo.New(conn)

	return &Repositories{
		BalanceRepo:  balanceRepo,
		PurchaseRepo: purchaseRepo,
		HistoryRepo:  historyRepo,
	}
}
