package handlers

import (
	"net/http"

	_ "github.com/DKhorkin/leadlens/docs"
	balancehandlers "github.com/DKhorkin/leadlens/internal/handlers/balance"
	purchasehandlers "github.com/DKhorkin/leadlens/internal/handlers/purchase"
	searchhandlers "github.com/DKhorkin/leadlens/internal/handlers/search"
	"github.com/DKhorkin/leadlens/internal/service"
	"github.com/DKhorkin/leadlens/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	ResetBalance(w http.ResponseWriter, r *http.Request)
}

type SearchHandler interface {
	Search(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type PurchaseHandler interface {
	Purchase(w http.ResponseWriter, r *http.Request)
	GetPaymentMethods(w http.ResponseWriter, r *http.Request)
	SetDefaultPaymentMethod(w http.ResponseWriter, r *http.Request)
	DeletePaymentMethod(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	BalanceHandler  BalanceHandler
	SearchHandler   SearchHandler
	PurchaseHandler PurchaseHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		BalanceHandler:  balancehandlers.New(s.LedgerService),
		SearchHandler:   searchhandlers.New(s.SearchService, s.PurchaseHistory),
		PurchaseHandler: purchasehandlers.New(s.PurchaseService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router, jwtService auth.JWTServiceInterface, debug bool) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Use(auth.Middleware(jwtService))
		r.Get("/balance", h.BalanceHandler.GetBalance)
		r.Post("/search", h.SearchHandler.Search)
		r.Get("/history", h.SearchHandler.GetHistory)
		r.Post("/purchase", h.PurchaseHandler.Purchase)
		r.Route("/payment-methods", func(r chi.Router) {
			r.Get("/", h.PurchaseHandler.GetPaymentMethods)
			r.Post("/default", h.PurchaseHandler.SetDefaultPaymentMethod)
			r.Delete("/{id}", h.PurchaseHandler.DeletePaymentMethod)
		})
	})
	// Reset is a test fixture knob, never mounted in production mode.
	if debug {
		r.Post("/api/admin/balance/reset", h.BalanceHandler.ResetBalance)
	}

	return r
}
