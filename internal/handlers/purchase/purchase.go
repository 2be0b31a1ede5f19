package purchase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DKhorkin/leadlens/internal/domain"
	"github.com/DKhorkin/leadlens/internal/dto"
	purchaseservice "github.com/DKhorkin/leadlens/internal/service/purchaseservice"
	"github.com/DKhorkin/leadlens/pkg/auth"
	"github.com/DKhorkin/leadlens/pkg/utils"
)

type Service interface {
	PurchasePack(ctx context.Context, email, packID, paymentMethodID, requestID string) (*purchaseservice.Result, error)
	ListPaymentMethods(ctx context.Context, email string) ([]domain.PaymentMethod, error)
	SetDefaultPaymentMethod(ctx context.Context, email, paymentMethodID string) error
	DeletePaymentMethod(ctx context.Context, email, paymentMethodID string) error
}

type PurchaseHandler struct {
	purchaseService Service
}

func New(purchaseService Service) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

// Purchase godoc
//
//	@Summary		Buy a credit pack
//	@Description	Charge the account's payment method for a catalog pack and grant its credits. The X-Request-Id header, when present, is reused as the charge idempotency key so a retried request cannot charge twice.
//	@Tags			Purchase
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			X-Request-Id	header		string					false	"Idempotency key for the charge"
//	@Param			request			body		dto.PurchaseRequestDTO	true	"Pack to buy and optional payment method"
//	@Success		200				{object}	dto.PurchaseResponseDTO	"Credits granted"
//	@Failure		400				{object}	utils.Response			"Invalid request body"
//	@Failure		401				{object}	utils.Response			"User not authorized"
//	@Failure		402				{object}	utils.Response			"Payment failed"
//	@Failure		404				{object}	utils.Response			"Unknown credit pack"
//	@Failure		409				{object}	utils.Response			"No payment method on file"
//	@Failure		502				{object}	utils.Response			"Payment gateway unavailable"
//	@Failure		500				{object}	utils.Response			"Internal server error"
//	@Router			/api/user/purchase [post]
func (h *PurchaseHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(auth.EmailKey).(string)

	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PackID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "pack_id is required")
		return
	}

	requestID := r.Header.Get("X-Request-Id")

	result, err := h.purchaseService.PurchasePack(r.Context(), email, req.PackID, req.PaymentMethodID, requestID)
	if err != nil {
		switch {
		case errors.Is(err, purchaseservice.ErrUnknownPack):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, purchaseservice.ErrNoPaymentMethod):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, purchaseservice.ErrPaymentFailed):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, purchaseservice.ErrGateway):
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		RemainingCredits: result.RemainingCredits,
		Outcome:          result.Outcome,
		TransactionID:    result.TransactionID,
	})
}

// GetPaymentMethods godoc
//
//	@Summary		List saved payment methods
//	@Description	List the card payment methods the processor has on file for the authenticated account.
//	@Tags			Purchase
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PaymentMethodDTO	"Saved payment methods"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		502	{object}	utils.Response			"Payment gateway unavailable"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/payment-methods [get]
func (h *PurchaseHandler) GetPaymentMethods(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(auth.EmailKey).(string)

	methods, err := h.purchaseService.ListPaymentMethods(r.Context(), email)
	if err != nil {
		if errors.Is(err, purchaseservice.ErrGateway) {
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PaymentMethodDTO, len(methods))
	for i, pm := range methods {
		response[i] = dto.PaymentMethodDTO{
			ID:        pm.ID,
			Brand:     pm.Brand,
			Last4:     pm.Last4,
			ExpMonth:  pm.ExpMonth,
			ExpYear:   pm.ExpYear,
			IsDefault: pm.IsDefault,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SetDefaultPaymentMethod godoc
//
//	@Summary		Set the default payment method
//	@Description	Mark one of the account's saved payment methods as the default for future charges.
//	@Tags			Purchase
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SetDefaultPaymentMethodRequestDTO	true	"Payment method to promote"
//	@Success		200		{object}	utils.Response							"Default updated"
//	@Failure		400		{object}	utils.Response							"Invalid request body"
//	@Failure		401		{object}	utils.Response							"User not authorized"
//	@Failure		502		{object}	utils.Response							"Payment gateway unavailable"
//	@Failure		500		{object}	utils.Response							"Internal server error"
//	@Router			/api/user/payment-methods/default [post]
func (h *PurchaseHandler) SetDefaultPaymentMethod(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(auth.EmailKey).(string)

	var req dto.SetDefaultPaymentMethodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PaymentMethodID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "payment_method_id is required")
		return
	}

	if err := h.purchaseService.SetDefaultPaymentMethod(r.Context(), email, req.PaymentMethodID); err != nil {
		if errors.Is(err, purchaseservice.ErrGateway) {
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "default payment method updated"})
}

// DeletePaymentMethod godoc
//
//	@Summary		Remove a saved payment method
//	@Description	Detach a payment method from the account at the processor.
//	@Tags			Purchase
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string			true	"Payment method id"
//	@Success		200	{object}	utils.Response	"Payment method removed"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		502	{object}	utils.Response	"Payment gateway unavailable"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/payment-methods/{id} [delete]
func (h *PurchaseHandler) DeletePaymentMethod(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(auth.EmailKey).(string)
	paymentMethodID := chi.URLParam(r, "id")

	if err := h.purchaseService.DeletePaymentMethod(r.Context(), email, paymentMethodID); err != nil {
		if errors.Is(err, purchaseservice.ErrGateway) {
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "payment method removed"})
}
