package dto

type BalanceResponseDTO struct {
	Credits int64 `json:"credits" example:"150"`
}

type ResetRequestDTO struct {
	Email string `json:"email" example:"user@example.com"`
}
