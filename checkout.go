package payflow

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CheckoutCustomer pre-fills the payer on a hosted checkout page.
type CheckoutCustomer struct {
	Email string `json:"email"`
}

// CheckoutRequest opens a hosted checkout session for a product.
type CheckoutRequest struct {
	ProductID string `json:"productId"`

	// RequestID deduplicates retried submissions. When empty the client
	// fills in a random UUID before dispatch.
	RequestID string `json:"requestId,omitempty"`

	// Units is a string-encoded integer >= 1. The server rejects anything
	// else.
	Units string `json:"units,omitempty"`

	Customer *CheckoutCustomer      `json:"customer,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Checkout is the server's view of a checkout session. CheckoutURL is where
// the payer completes the purchase; the session is gone after ExpiresAt.
type Checkout struct {
	CheckoutID  string                 `json:"checkoutId"`
	ProductID   string                 `json:"productId"`
	RequestID   string                 `json:"requestId,omitempty"`
	PaymentID   string                 `json:"paymentId,omitempty"`
	CheckoutURL string                 `json:"checkoutUrl"`
	Status      string                 `json:"status,omitempty"`
	Units       string                 `json:"units,omitempty"`
	Customer    *CheckoutCustomer      `json:"customer,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	ExpiresAt   time.Time              `json:"expiresAt,omitempty"`
}

// CreateCheckout opens a checkout session.
func (c *Client) CreateCheckout(ctx context.Context, req *CheckoutRequest) (*Checkout, error) {
	if req != nil && req.RequestID == "" {
		req = &CheckoutRequest{
			ProductID: req.ProductID,
			RequestID: uuid.NewString(),
			Units:     req.Units,
			Customer:  req.Customer,
			Metadata:  req.Metadata,
		}
	}

	payload, err := c.do(ctx, http.MethodPost, "/api/payments/checkouts", nil, req)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Checkout](payload)
}
