package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/DKhorkin/leadlens/internal/domain"
	"github.com/DKhorkin/leadlens/internal/dto"
	searchservice "github.com/DKhorkin/leadlens/internal/service/searchservice"
	"github.com/DKhorkin/leadlens/pkg/auth"
	"github.com/DKhorkin/leadlens/pkg/utils"
)

type Service interface {
	UseSearch(ctx context.Context, email, operationType string, query json.RawMessage) (*searchservice.Result, error)
	GetSearches(ctx context.Context, email string) ([]domain.SearchRecord, error)
}

type PurchaseHistory interface {
	GetPurchases(ctx context.Context, email string) ([]domain.Purchase, error)
}

type SearchHandler struct {
	searchService Service
	purchases     PurchaseHistory
}

func New(searchService Service, purchases PurchaseHistory) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		purchases:     purchases,
	}
}

// Search godoc
//
//	@Summary		Run a search
//	@Description	Debit one search credit and run the requested lookup. The debit holds whatever the lookup outcome; an account without credits gets 402 and loses nothing.
//	@Tags			Search
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SearchRequestDTO	true	"Operation type and query"
//	@Success		200		{object}	dto.SearchResponseDTO	"Search outcome and remaining credits"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"No credits, purchase required"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/search [post]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(auth.EmailKey).(string)

	var req dto.SearchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.searchService.UseSearch(r.Context(), email, req.OperationType, req.Query)
	if err != nil {
		switch {
		case errors.Is(err, searchservice.ErrInvalidQuery):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, searchservice.ErrPurchaseRequired):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SearchResponseDTO{
		RemainingCredits: result.RemainingCredits,
		Status:           result.Status,
		Result:           result.Raw,
	})
}

// GetHistory godoc
//
//	@Summary		Get account history
//	@Description	Merged purchase and search history for the authenticated account, newest first.
//	@Tags			Search
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.HistoryEntryDTO	"Merged history entries"
//	@Success		204	{object}	utils.Response		"No history yet"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/user/history [get]
func (h *SearchHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(auth.EmailKey).(string)

	var (
		searches  []domain.SearchRecord
		purchases []domain.Purchase
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		searches, err = h.searchService.GetSearches(ctx, email)
		return err
	})
	g.Go(func() error {
		var err error
		purchases, err = h.purchases.GetPurchases(ctx, email)
		return err
	})
	if err := g.Wait(); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch history")
		return
	}

	entries := mergeHistory(searches, purchases)
	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "History not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, entries)
}

func mergeHistory(searches []domain.SearchRecord, purchases []domain.Purchase) []dto.HistoryEntryDTO {
	entries := make([]dto.HistoryEntryDTO, 0, len(searches)+len(purchases))
	for _, s := range searches {
		entries = append(entries, dto.HistoryEntryDTO{
			Type:          "search",
			CreatedAt:     s.CreatedAt,
			OperationType: s.OperationType,
			Status:        s.Status,
		})
	}
	for _, p := range purchases {
		entries = append(entries, dto.HistoryEntryDTO{
			Type:           "purchase",
			CreatedAt:      p.CreatedAt,
			PackID:         p.PackID,
			AmountMinor:    p.AmountMinor,
			CreditsGranted: p.CreditsGranted,
			Outcome:        p.Outcome,
			Reason:         p.Reason,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries
}
