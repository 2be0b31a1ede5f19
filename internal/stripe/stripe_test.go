package stripe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DKhorkin/leadlens/internal/config"
	"github.com/DKhorkin/leadlens/internal/domain"
	"github.com/stretchr/testify/assert"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *Adapter {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(&config.Config{
		StripeAPIKey:  "sk_test_123",
		StripeAddress: server.URL,
	})
}

func TestEnsureCustomer(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		expectedID string
		expectErr  bool
	}{
		{
			name: "Existing customer found by email",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/v1/customers", r.URL.Path)
				assert.Equal(t, "user@example.com", r.URL.Query().Get("email"))
				assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
				w.Write([]byte(`{"data":[{"id":"cus_1","email":"user@example.com"}]}`))
			},
			expectedID: "cus_1",
		},
		{
			name: "Customer created when absent",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.Method == http.MethodGet {
					w.Write([]byte(`{"data":[]}`))
					return
				}
				assert.Equal(t, http.MethodPost, r.Method)
				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "user@example.com", r.PostForm.Get("email"))
				w.Write([]byte(`{"id":"cus_new","email":"user@example.com"}`))
			},
			expectedID: "cus_new",
		},
		{
			name: "API error surfaces",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Invalid API Key"}}`))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := newTestAdapter(t, tt.handler)

			id, err := adapter.EnsureCustomer(context.Background(), "user@example.com")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}
		})
	}
}

func TestListPaymentMethods(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/customers/cus_1":
			w.Write([]byte(`{"id":"cus_1","invoice_settings":{"default_payment_method":"pm_2"}}`))
		case "/v1/customers/cus_1/payment_methods":
			w.Write([]byte(`{"data":[
				{"id":"pm_1","card":{"brand":"visa","last4":"4242","exp_month":12,"exp_year":2030}},
				{"id":"pm_2","card":{"brand":"mastercard","last4":"4444","exp_month":6,"exp_year":2031}}
			]}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	methods, err := adapter.ListPaymentMethods(context.Background(), "cus_1")
	assert.NoError(t, err)
	assert.Equal(t, []domain.PaymentMethod{
		{ID: "pm_1", Brand: "visa", Last4: "4242", ExpMonth: 12, ExpYear: 2030, IsDefault: false},
		{ID: "pm_2", Brand: "mastercard", Last4: "4444", ExpMonth: 6, ExpYear: 2031, IsDefault: true},
	}, methods)
}

func TestSetDefaultPaymentMethod(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/customers/cus_1", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "pm_1", r.PostForm.Get("invoice_settings[default_payment_method]"))
		w.Write([]byte(`{"id":"cus_1"}`))
	})

	err := adapter.SetDefaultPaymentMethod(context.Background(), "cus_1", "pm_1")
	assert.NoError(t, err)
}

func TestDetachPaymentMethod(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_methods/pm_1/detach", r.URL.Path)
		w.Write([]byte(`{"id":"pm_1"}`))
	})

	err := adapter.DetachPaymentMethod(context.Background(), "pm_1")
	assert.NoError(t, err)
}

func TestCharge(t *testing.T) {
	req := domain.ChargeRequest{
		CustomerID:      "cus_1",
		PaymentMethodID: "pm_1",
		AmountMinor:     500,
		Currency:        "usd",
		IdempotencyKey:  "req-1",
	}

	tests := []struct {
		name      string
		handler   http.HandlerFunc
		expected  *domain.Charge
		expectErr bool
	}{
		{
			name: "Confirmed charge succeeds",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/payment_intents", r.URL.Path)
				assert.Equal(t, "req-1", r.Header.Get("Idempotency-Key"))
				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "500", r.PostForm.Get("amount"))
				assert.Equal(t, "usd", r.PostForm.Get("currency"))
				assert.Equal(t, "true", r.PostForm.Get("confirm"))
				w.Write([]byte(`{"id":"pi_1","status":"succeeded","amount":500,"currency":"usd"}`))
			},
			expected: &domain.Charge{TransactionID: "pi_1", Status: domain.ChargeSucceeded, AmountMinor: 500},
		},
		{
			name: "Card decline becomes failed charge",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusPaymentRequired)
				w.Write([]byte(`{"error":{"type":"card_error","message":"Your card was declined.","decline_code":"insufficient_funds","payment_intent":{"id":"pi_2"}}}`))
			},
			expected: &domain.Charge{TransactionID: "pi_2", Status: domain.ChargeFailed, AmountMinor: 500, FailureReason: "insufficient_funds"},
		},
		{
			name: "Unconfirmed intent becomes failed charge",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"id":"pi_3","status":"requires_action","amount":500}`))
			},
			expected: &domain.Charge{TransactionID: "pi_3", Status: domain.ChargeFailed, AmountMinor: 500, FailureReason: "requires_action"},
		},
		{
			name: "API fault surfaces as error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":{"type":"api_error","message":"something went wrong"}}`))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := newTestAdapter(t, tt.handler)

			charge, err := adapter.Charge(context.Background(), req)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, charge)
			}
		})
	}
}
