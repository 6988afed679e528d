package payflow

import (
	"context"
	"net/http"
	"time"
)

// Transaction is an immutable record of a completed monetary event. All
// amount fields are integer minor currency units (cents for USD).
type Transaction struct {
	TransactionID string    `json:"transactionId"`
	ProductID     string    `json:"productId,omitempty"`
	CustomerID    string    `json:"customerId,omitempty"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	Amount        int64     `json:"amount"`
	Tax           int64     `json:"tax,omitempty"`
	Discount      int64     `json:"discount,omitempty"`
	NetAmount     int64     `json:"netAmount,omitempty"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// ListTransactions returns one page of transactions.
func (c *Client) ListTransactions(ctx context.Context, opts *ListOptions) (*List[Transaction], error) {
	payload, err := c.do(ctx, http.MethodGet, "/api/transactions/list", opts.query(), nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[List[Transaction]](payload)
}
