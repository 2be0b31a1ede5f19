package dto

import (
	"encoding/json"
	"time"
)

type SearchRequestDTO struct {
	OperationType string          `json:"operation_type" example:"email_finder"`
	Query         json.RawMessage `json:"query" swaggertype:"object"`
}

type SearchResponseDTO struct {
	RemainingCredits int64           `json:"remaining_credits" example:"149"`
	Status           string          `json:"status" example:"success"`
	Result           json.RawMessage `json:"result,omitempty" swaggertype:"object"`
}

// HistoryEntryDTO is one row of the merged account history. Type is either
// "search" or "purchase"; the omitempty fields belong to one type each.
type HistoryEntryDTO struct {
	Type          string    `json:"type" example:"search"`
	CreatedAt     time.Time `json:"created_at" example:"2024-11-02T10:04:05Z"`
	OperationType string    `json:"operation_type,omitempty" example:"email_finder"`
	Status        string    `json:"status,omitempty" example:"success"`

	PackID         string `json:"pack_id,omitempty" example:"growth"`
	AmountMinor    int64  `json:"amount_minor,omitempty" example:"2000"`
	CreditsGranted int64  `json:"credits_granted,omitempty" example:"250"`
	Outcome        string `json:"outcome,omitempty" example:"succeeded"`
	Reason         string `json:"reason,omitempty" example:"card_declined"`
}
