package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service talks to the Stripe Checkout REST API. Only two operations are
// needed: create a hosted session and retrieve its outcome.
type Service struct {
	Client    *http.Client
	SecretKey string
	BaseURL   string
}

func NewService(secretKey string) *Service {
	return &Service{
		Client:    &http.Client{Timeout: 15 * time.Second},
		SecretKey: secretKey,
		BaseURL:   "https://api.stripe.com",
	}
}

// Session is the subset of Stripe's checkout.session object the app reads.
type Session struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency"`
	PaymentStatus string `json:"payment_status"`
	PaymentIntent string `json:"payment_intent"`
	CustomerEmail string `json:"customer_email"`

	CustomerDetails struct {
		Email string `json:"email"`
	} `json:"customer_details"`
}

// DonorEmail prefers the email Stripe collected during checkout over the one
// the session was created with.
func (s *Session) DonorEmail() string {
	if s.CustomerDetails.Email != "" {
		return s.CustomerDetails.Email
	}
	return s.CustomerEmail
}

// Paid reports whether the gateway considers the session settled.
func (s *Session) Paid() bool {
	return s.PaymentStatus == "paid"
}

type CheckoutParams struct {
	AmountMinor int64
	Currency    string
	DonorName   string
	Email       string
	SuccessURL  string
	CancelURL   string
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Service) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", p.SuccessURL)
	form.Set("cancel_url", p.CancelURL)
	form.Set("customer_email", p.Email)
	form.Set("metadata[donor_name]", p.DonorName)
	form.Set("payment_intent_data[receipt_email]", p.Email)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", p.Currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(p.AmountMinor, 10))
	form.Set("line_items[0][price_data][product_data][name]", "Blood donation fund")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.BaseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	return s.do(req)
}

func (s *Service) RetrieveSession(ctx context.Context, id string) (*Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.BaseURL+"/v1/checkout/sessions/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return s.do(req)
}

func (s *Service) do(req *http.Request) (*Session, error) {
	req.Header.Set("Authorization", "Bearer "+s.SecretKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("stripe error: %s", apiErr.Error.Message)
		}
		return nil, fmt.Errorf("stripe error: status %d", resp.StatusCode)
	}

	var sess Session
	if err := json.Unmarshal(body, &sess); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v", err)
	}
	return &sess, nil
}
