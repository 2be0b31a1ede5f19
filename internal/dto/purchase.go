package dto

type PurchaseRequestDTO struct {
	PackID          string `json:"pack_id" example:"growth"`
	PaymentMethodID string `json:"payment_method_id,omitempty" example:"pm_1PqXYZ"`
}

type PurchaseResponseDTO struct {
	RemainingCredits int64  `json:"remaining_credits" example:"400"`
	Outcome          string `json:"outcome" example:"succeeded"`
	TransactionID    string `json:"transaction_id" example:"pi_3PqXYZ"`
}

type PaymentMethodDTO struct {
	ID        string `json:"id" example:"pm_1PqXYZ"`
	Brand     string `json:"brand" example:"visa"`
	Last4     string `json:"last4" example:"4242"`
	ExpMonth  int    `json:"exp_month" example:"12"`
	ExpYear   int    `json:"exp_year" example:"2027"`
	IsDefault bool   `json:"is_default" example:"true"`
}

type SetDefaultPaymentMethodRequestDTO struct {
	PaymentMethodID string `json:"payment_method_id" example:"pm_1PqXYZ"`
}
