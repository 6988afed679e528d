package payflow

import (
	"context"
	"net/http"
	"time"
)

// Customer identifies a payer.
type Customer struct {
	CustomerID string    `json:"customerId"`
	Email      string    `json:"email"`
	Name       string    `json:"name,omitempty"`
	Country    string    `json:"country,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// CustomerData is a customer plus lifetime aggregates. TotalSpend is in
// minor currency units.
type CustomerData struct {
	Customer
	Subscriptions int   `json:"subscriptions"`
	Payments      int   `json:"payments"`
	TotalSpend    int64 `json:"totalSpend"`
}

// ListCustomers returns one page of customers with their aggregates.
func (c *Client) ListCustomers(ctx context.Context, opts *ListOptions) (*List[CustomerData], error) {
	payload, err := c.do(ctx, http.MethodGet, "/api/customers/list", opts.query(), nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[List[CustomerData]](payload)
}
