package service

import (
	"github.com/DKhorkin/leadlens/internal/catalog"
	"github.com/DKhorkin/leadlens/internal/config"
	"github.com/DKhorkin/leadlens/internal/handlers/balance"
	"github.com/DKhorkin/leadlens/internal/handlers/purchase"
	"github.com/DKhorkin/leadlens/internal/handlers/search"
	"github.com/DKhorkin/leadlens/internal/pg"
	"github.com/DKhorkin/leadlens/internal/reconciler"
	"github.com/DKhorkin/leadlens/internal/repo"
	ledgerservice "github.com/DKhorkin/leadlens/internal/service/ledgerservice"
	purchaseservice "github.com/DKhorkin/leadlens/internal/service/purchaseservice"
	searchservice "github.com/DKhorkin/leadlens/internal/service/searchservice"
)

type Services struct {
	LedgerService   balance.Service
	SearchService   search.Service
	PurchaseService purchase.Service

	// The purchase service doubles as the history source for the merged
	// endpoint and as the credit applier the reconciler retries with.
	PurchaseHistory search.PurchaseHistory
	CreditApplier   reconciler.CreditApplier
}

func New(cfg *config.Config, repo *repo.Repositories, gateway purchaseservice.Gateway, searchClient searchservice.SearchClient, txManager pg.TXManager) (*Services, error) {
	packCatalog, err := catalog.New(cfg.Packs)
	if err != nil {
		return nil, err
	}

	ledgerService := ledgerservice.New(repo.BalanceRepo)
	purchaseService := purchaseservice.New(gateway, ledgerService, repo.PurchaseRepo, packCatalog, txManager, cfg.Currency)
	searchService := searchservice.New(ledgerService, repo.HistoryRepo, searchClient, cfg.SearchCost)

	return &Services{
		LedgerService:   ledgerService,
		SearchService:   searchService,
		PurchaseService: purchaseService,
		PurchaseHistory: purchaseService,
		CreditApplier:   purchaseService,
	}, nil
}
