package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/DKhorkin/leadlens/internal/config"
	"github.com/DKhorkin/leadlens/internal/domain"
	"go.uber.org/zap"
)

const timeout = time.Second * 12

// ErrNoSuchPaymentMethod is returned when the processor rejects a payment
// method reference the caller supplied.
var ErrNoSuchPaymentMethod = errors.New("no such payment method")

// Adapter translates purchase intents into calls against the payment
// processor's REST API. Card data never passes through this service; the
// adapter only moves opaque customer and payment-method references.
type Adapter struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func New(cfg *config.Config) *Adapter {
	return &Adapter{
		apiKey:  cfg.StripeAPIKey,
		baseURL: strings.TrimSuffix(cfg.StripeAddress, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type apiError struct {
	Message     string `json:"message"`
	Type        string `json:"type"`
	Code        string `json:"code"`
	DeclineCode string `json:"decline_code"`
	PaymentIntent struct {
		ID string `json:"id"`
	} `json:"payment_intent"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

type customer struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	InvoiceSettings struct {
		DefaultPaymentMethod string `json:"default_payment_method"`
	} `json:"invoice_settings"`
}

type customerList struct {
	Data []customer `json:"data"`
}

type paymentMethod struct {
	ID   string `json:"id"`
	Card struct {
		Brand    string `json:"brand"`
		Last4    string `json:"last4"`
		ExpMonth int    `json:"exp_month"`
		ExpYear  int    `json:"exp_year"`
	} `json:"card"`
}

type paymentMethodList struct {
	Data []paymentMethod `json:"data"`
}

type paymentIntent struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	LastPaymentError *apiError `json:"last_payment_error"`
}

// EnsureCustomer resolves the processor customer for an email, creating one
// on first contact.
func (a *Adapter) EnsureCustomer(ctx context.Context, email string) (string, error) {
	var list customerList
	query := url.Values{}
	query.Set("email", email)
	query.Set("limit", "1")
	if err := a.doRequest(ctx, http.MethodGet, "/v1/customers?"+query.Encode(), nil, "", &list); err != nil {
		return "", err
	}
	if len(list.Data) > 0 {
		return list.Data[0].ID, nil
	}

	values := url.Values{}
	values.Set("email", email)
	var created customer
	if err := a.doRequest(ctx, http.MethodPost, "/v1/customers", values, "", &created); err != nil {
		return "", err
	}
	zap.L().Info("created processor customer", zap.String("email", email), zap.String("customerID", created.ID))
	return created.ID, nil
}

func (a *Adapter) ListPaymentMethods(ctx context.Context, customerID string) ([]domain.PaymentMethod, error) {
	var cust customer
	if err := a.doRequest(ctx, http.MethodGet, "/v1/customers/"+customerID, nil, "", &cust); err != nil {
		return nil, err
	}

	var list paymentMethodList
	if err := a.doRequest(ctx, http.MethodGet, "/v1/customers/"+customerID+"/payment_methods?type=card", nil, "", &list); err != nil {
		return nil, err
	}

	methods := make([]domain.PaymentMethod, 0, len(list.Data))
	for _, pm := range list.Data {
		methods = append(methods, domain.PaymentMethod{
			ID:        pm.ID,
			Brand:     pm.Card.Brand,
			Last4:     pm.Card.Last4,
			ExpMonth:  pm.Card.ExpMonth,
			ExpYear:   pm.Card.ExpYear,
			IsDefault: pm.ID == cust.InvoiceSettings.DefaultPaymentMethod,
		})
	}
	return methods, nil
}

func (a *Adapter) SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	values := url.Values{}
	values.Set("invoice_settings[default_payment_method]", paymentMethodID)
	var cust customer
	return a.doRequest(ctx, http.MethodPost, "/v1/customers/"+customerID, values, "", &cust)
}

func (a *Adapter) DetachPaymentMethod(ctx context.Context, paymentMethodID string) error {
	var pm paymentMethod
	return a.doRequest(ctx, http.MethodPost, "/v1/payment_methods/"+paymentMethodID+"/detach", url.Values{}, "", &pm)
}

// Charge submits a synchronous off-session charge. A decline comes back as
// a Charge with status failed and the processor's reason; only transport
// and API faults are reported as errors.
func (a *Adapter) Charge(ctx context.Context, req domain.ChargeRequest) (*domain.Charge, error) {
	values := url.Values{}
	values.Set("amount", strconv.FormatInt(req.AmountMinor, 10))
	values.Set("currency", strings.ToLower(req.Currency))
	values.Set("customer", req.CustomerID)
	values.Set("payment_method", req.PaymentMethodID)
	values.Set("confirm", "true")
	values.Set("off_session", "true")

	var intent paymentIntent
	err := a.doRequest(ctx, http.MethodPost, "/v1/payment_intents", values, req.IdempotencyKey, &intent)
	if err != nil {
		var declined *declineError
		if errors.As(err, &declined) {
			return &domain.Charge{
				TransactionID: declined.transactionID,
				Status:        domain.ChargeFailed,
				AmountMinor:   req.AmountMinor,
				FailureReason: declined.reason,
			}, nil
		}
		return nil, err
	}

	if intent.Status != "succeeded" {
		reason := intent.Status
		if intent.LastPaymentError != nil && intent.LastPaymentError.Message != "" {
			reason = intent.LastPaymentError.Message
		}
		return &domain.Charge{
			TransactionID: intent.ID,
			Status:        domain.ChargeFailed,
			AmountMinor:   req.AmountMinor,
			FailureReason: reason,
		}, nil
	}

	return &domain.Charge{
		TransactionID: intent.ID,
		Status:        domain.ChargeSucceeded,
		AmountMinor:   intent.Amount,
	}, nil
}

// declineError carries a card decline out of doRequest so Charge can turn
// it into a failed Charge instead of an error.
type declineError struct {
	reason        string
	transactionID string
}

func (e *declineError) Error() string {
	return "card declined: " + e.reason
}

func (a *Adapter) doRequest(ctx context.Context, method, path string, values url.Values, idempotencyKey string, out any) error {
	var body *strings.Reader
	if values != nil {
		body = strings.NewReader(values.Encode())
	} else {
		body = strings.NewReader("")
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	if values != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("processor request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var errResp errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr != nil {
			return fmt.Errorf("processor returned status %d", resp.StatusCode)
		}
		if errResp.Error.Type == "card_error" {
			reason := errResp.Error.Message
			if errResp.Error.DeclineCode != "" {
				reason = errResp.Error.DeclineCode
			}
			return &declineError{reason: reason, transactionID: errResp.Error.PaymentIntent.ID}
		}
		if errResp.Error.Code == "resource_missing" && strings.Contains(errResp.Error.Message, "payment_method") {
			return ErrNoSuchPaymentMethod
		}
		zap.L().Error("processor API error",
			zap.Int("status", resp.StatusCode),
			zap.String("type", errResp.Error.Type),
			zap.String("message", errResp.Error.Message),
		)
		return fmt.Errorf("processor error: %s", errResp.Error.Message)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
