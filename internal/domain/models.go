package domain

import (
	"encoding/json"
	"time"
)

// Balance is the authoritative credit count for one account. Accounts are
// keyed by the verified email supplied by the identity provider; a missing
// row is an implicit balance of zero.
type Balance struct {
	Email   string `db:"email"`
	Credits int64  `db:"credits"`
}

// CreditPack is a static catalog entry mapping a price to a credit grant.
type CreditPack struct {
	ID              string `json:"id"`
	PriceMinorUnits int64  `json:"price_minor_units"`
	CreditsGranted  int64  `json:"credits_granted"`
}

// PaymentMethod is the processor-owned card reference. Only the opaque id
// and display metadata ever reach this service.
type PaymentMethod struct {
	ID        string
	Brand     string
	Last4     string
	ExpMonth  int
	ExpYear   int
	IsDefault bool
}

type ChargeRequest struct {
	CustomerID      string
	PaymentMethodID string
	AmountMinor     int64
	Currency        string
	IdempotencyKey  string
}

const (
	ChargeSucceeded string = "succeeded"
	ChargeFailed    string = "failed"
)

// Charge is the processor's answer to a charge submission. A transport-level
// failure is reported as an error instead; a decline comes back as a Charge
// with status failed and the processor's reason attached.
type Charge struct {
	TransactionID string
	Status        string
	AmountMinor   int64
	FailureReason string
}

const (
	PurchaseSucceeded string = "succeeded"
	PurchaseFailed    string = "failed"
)

// Purchase is the append-only record of one purchase attempt. TransactionID
// doubles as the idempotency key: at most one record exists per confirmed
// charge, and Credited flips exactly once when the grant is applied.
type Purchase struct {
	ID             int64     `db:"id"`
	Email          string    `db:"email"`
	TransactionID  string    `db:"transaction_id"`
	PackID         string    `db:"pack_id"`
	AmountMinor    int64     `db:"amount_minor"`
	CreditsGranted int64     `db:"credits_granted"`
	Outcome        string    `db:"outcome"`
	Reason         string    `db:"reason"`
	Credited       bool      `db:"credited"`
	CreatedAt      time.Time `db:"created_at"`
}

const (
	SearchStatusSuccess   string = "success"
	SearchStatusFailed    string = "failed"
	SearchStatusNoCredits string = "no_credits"
)

// SearchRecord is the immutable audit entry written once per search attempt.
type SearchRecord struct {
	RequestID     string          `db:"request_id"`
	CreatedAt     time.Time       `db:"created_at"`
	Email         string          `db:"email"`
	OperationType string          `db:"operation_type"`
	Query         json.RawMessage `db:"query"`
	Status        string          `db:"status"`
	RawResponse   json.RawMessage `db:"raw_response"`
}
