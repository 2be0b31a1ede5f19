package searchservice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DKhorkin/leadlens/internal/domain"
	"github.com/DKhorkin/leadlens/internal/service/ledgerservice"
	"github.com/DKhorkin/leadlens/pkg/clients"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

const searchCost = int64(1)

func NewMock(t *testing.T) (*Service, *MockLedger, *MockHistoryRepo, *MockSearchClient) {
	ctrl := gomock.NewController(t)
	ledger := NewMockLedger(ctrl)
	repo := NewMockHistoryRepo(ctrl)
	client := NewMockSearchClient(ctrl)
	service := New(ledger, repo, client, searchCost)
	defer ctrl.Finish()
	return service, ledger, repo, client
}

func TestUseSearch(t *testing.T) {
	query := json.RawMessage(`{"email":"target@example.com"}`)
	rawResponse := []byte(`{"valid":true}`)

	tests := []struct {
		name           string
		email          string
		operationType  string
		query          json.RawMessage
		prepareMock    func(ledger *MockLedger, repo *MockHistoryRepo, client *MockSearchClient)
		expectedResult *Result
		expectedError  error
	}{
		{
			name:          "Successful search records success entry",
			email:         "user@example.com",
			operationType: "verify",
			query:         query,
			prepareMock: func(ledger *MockLedger, repo *MockHistoryRepo, client *MockSearchClient) {
				ledger.EXPECT().Debit(gomock.Any(), "user@example.com", searchCost).Return(int64(4), nil)
				client.EXPECT().Search(gomock.Any(), "verify", query).Return(rawResponse, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, rec *domain.SearchRecord) error {
						assert.Equal(t, domain.SearchStatusSuccess, rec.Status)
						assert.Equal(t, "user@example.com", rec.Email)
						assert.NotEmpty(t, rec.RequestID)
						assert.JSONEq(t, string(rawResponse), string(rec.RawResponse))
						return nil
					})
			},
			expectedResult: &Result{RemainingCredits: 4, Status: domain.SearchStatusSuccess, Raw: rawResponse},
		},
		{
			name:          "Insufficient credits records no_credits entry",
			email:         "user@example.com",
			operationType: "verify",
			query:         query,
			prepareMock: func(ledger *MockLedger, repo *MockHistoryRepo, client *MockSearchClient) {
				ledger.EXPECT().Debit(gomock.Any(), "user@example.com", searchCost).Return(int64(0), ledgerservice.ErrInsufficientCredits)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, rec *domain.SearchRecord) error {
						assert.Equal(t, domain.SearchStatusNoCredits, rec.Status)
						assert.Nil(t, rec.RawResponse)
						return nil
					})
			},
			expectedError: ErrPurchaseRequired,
		},
		{
			name:          "Downstream failure keeps the debit and records failed entry",
			email:         "user@example.com",
			operationType: "verify",
			query:         query,
			prepareMock: func(ledger *MockLedger, repo *MockHistoryRepo, client *MockSearchClient) {
				ledger.EXPECT().Debit(gomock.Any(), "user@example.com", searchCost).Return(int64(4), nil)
				client.EXPECT().Search(gomock.Any(), "verify", query).Return(nil, errors.New("provider down"))
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, rec *domain.SearchRecord) error {
						assert.Equal(t, domain.SearchStatusFailed, rec.Status)
						return nil
					})
			},
			expectedResult: &Result{RemainingCredits: 4, Status: domain.SearchStatusFailed},
		},
		{
			name:          "Empty email rejected before side effects",
			email:         "",
			operationType: "verify",
			query:         query,
			expectedError: ErrEmptyEmail,
		},
		{
			name:          "Empty query rejected before side effects",
			email:         "user@example.com",
			operationType: "verify",
			query:         nil,
			expectedError: ErrInvalidQuery,
		},
		{
			name:          "Malformed query rejected before side effects",
			email:         "user@example.com",
			operationType: "verify",
			query:         json.RawMessage(`{broken`),
			expectedError: ErrInvalidQuery,
		},
		{
			name:          "Missing operation type rejected",
			email:         "user@example.com",
			operationType: "",
			query:         query,
			expectedError: ErrInvalidQuery,
		},
		{
			name:          "Ledger storage error surfaces",
			email:         "user@example.com",
			operationType: "verify",
			query:         query,
			prepareMock: func(ledger *MockLedger, repo *MockHistoryRepo, client *MockSearchClient) {
				ledger.EXPECT().Debit(gomock.Any(), "user@example.com", searchCost).Return(int64(0), errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, ledger, repo, client := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(ledger, repo, client)
			}

			result, err := service.UseSearch(context.Background(), tt.email, tt.operationType, tt.query)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult.RemainingCredits, result.RemainingCredits)
				assert.Equal(t, tt.expectedResult.Status, result.Status)
			}
		})
	}
}

func TestGetSearches(t *testing.T) {
	service, _, repo, _ := NewMock(t)

	records := []domain.SearchRecord{{RequestID: "req-1", Status: domain.SearchStatusSuccess}}
	repo.EXPECT().FindByEmail(gomock.Any(), "user@example.com").Return(records, nil)

	got, err := service.GetSearches(context.Background(), "user@example.com")
	assert.NoError(t, err)
	assert.Equal(t, records, got)

	_, err = service.GetSearches(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyEmail)
}

func TestClient_Search(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.HandlerFunc
		expectErr bool
	}{
		{
			name: "Provider success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/verify", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				w.Write([]byte(`{"valid":true}`))
			},
			expectErr: false,
		},
		{
			name: "Provider non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL, clients.NewHTTPClient())
			raw, err := client.Search(context.Background(), "verify", json.RawMessage(`{"email":"x@y.z"}`))
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.JSONEq(t, `{"valid":true}`, string(raw))
			}
		})
	}
}
