package balance

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/DKhorkin/leadlens/internal/dto"
	"github.com/DKhorkin/leadlens/pkg/auth"
	"github.com/DKhorkin/leadlens/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, email string) (int64, error)
	Reset(ctx context.Context, email string) (int64, error)
}

type BalanceHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *BalanceHandler {
	return &BalanceHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current credit balance
//	@Description	Retrieve the remaining search credits for the authenticated account.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current credit count"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(auth.EmailKey).(string)

	credits, err := h.ledgerService.GetBalance(r.Context(), email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Credits: credits,
	})
}

// ResetBalance godoc
//
//	@Summary		Reset an account balance to zero
//	@Description	Force an account's credit count back to zero. Served only when the service runs in debug mode.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ResetRequestDTO		true	"Account to reset"
//	@Success		200		{object}	dto.BalanceResponseDTO	"Balance after reset"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/balance/reset [post]
func (h *BalanceHandler) ResetBalance(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email is required")
		return
	}

	credits, err := h.ledgerService.Reset(r.Context(), req.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Credits: credits,
	})
}
