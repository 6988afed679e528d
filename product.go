package payflow

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// BillingType distinguishes recurring products from one-off purchases.
type BillingType string

const (
	BillingTypeSubscription  BillingType = "subscription"
	BillingTypeSinglePayment BillingType = "single_payment"
)

// RecurringInterval is the billing period of a subscription product.
type RecurringInterval string

const (
	IntervalDay   RecurringInterval = "day"
	IntervalWeek  RecurringInterval = "week"
	IntervalMonth RecurringInterval = "month"
	IntervalYear  RecurringInterval = "year"
)

// Product is a sellable item as the API reports it. RecurringInterval is
// only meaningful when BillingType is subscription.
type Product struct {
	ProductID         string            `json:"productId"`
	Name              string            `json:"name"`
	Description       string            `json:"description,omitempty"`
	Price             decimal.Decimal   `json:"price"`
	Currency          string            `json:"currency"`
	BillingType       BillingType       `json:"billingType"`
	RecurringInterval RecurringInterval `json:"recurringInterval,omitempty"`
	TrialDays         int               `json:"trialDays,omitempty"`
	TaxInclusive      bool              `json:"taxInclusive,omitempty"`
	TaxCategory       string            `json:"taxCategory,omitempty"`
	Archived          bool              `json:"archived,omitempty"`
	CreatedAt         time.Time         `json:"createdAt,omitempty"`
	UpdatedAt         time.Time         `json:"updatedAt,omitempty"`
}

// CreateProductRequest describes a product to create. The server performs
// all domain validation (price bounds, currency codes); failures surface as
// validation-kind API errors.
type CreateProductRequest struct {
	Name              string            `json:"name"`
	Description       string            `json:"description,omitempty"`
	Price             decimal.Decimal   `json:"price"`
	Currency          string            `json:"currency"`
	BillingType       BillingType       `json:"billingType"`
	RecurringInterval RecurringInterval `json:"recurringInterval,omitempty"`
	TrialDays         int               `json:"trialDays,omitempty"`
	TaxInclusive      bool              `json:"taxInclusive,omitempty"`
	TaxCategory       string            `json:"taxCategory,omitempty"`
}

// UpdateProductRequest replaces the mutable fields of an existing product.
type UpdateProductRequest struct {
	ProductID         string            `json:"productId"`
	Name              string            `json:"name,omitempty"`
	Description       string            `json:"description,omitempty"`
	Price             decimal.Decimal   `json:"price"`
	Currency          string            `json:"currency,omitempty"`
	BillingType       BillingType       `json:"billingType,omitempty"`
	RecurringInterval RecurringInterval `json:"recurringInterval,omitempty"`
	TrialDays         int               `json:"trialDays,omitempty"`
	TaxInclusive      bool              `json:"taxInclusive,omitempty"`
	TaxCategory       string            `json:"taxCategory,omitempty"`
}

// CreateProduct creates a product and returns the server's snapshot of it.
func (c *Client) CreateProduct(ctx context.Context, req *CreateProductRequest) (*Product, error) {
	payload, err := c.do(ctx, http.MethodPost, "/api/products/create", nil, req)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Product](payload)
}

// GetProduct fetches a single product by ID.
func (c *Client) GetProduct(ctx context.Context, productID string) (*Product, error) {
	payload, err := c.do(ctx, http.MethodGet, "/api/products/"+productID, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Product](payload)
}

// ListProducts returns one page of products.
func (c *Client) ListProducts(ctx context.Context, opts *ListOptions) (*List[Product], error) {
	payload, err := c.do(ctx, http.MethodGet, "/api/products/list", opts.query(), nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[List[Product]](payload)
}

// UpdateProduct applies req server-side and returns the fresh snapshot.
func (c *Client) UpdateProduct(ctx context.Context, req *UpdateProductRequest) (*Product, error) {
	payload, err := c.do(ctx, http.MethodPost, "/api/products/update", nil, req)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Product](payload)
}

// ArchiveProduct hides a product from sale. Archived products remain
// readable.
func (c *Client) ArchiveProduct(ctx context.Context, productID string) (*Product, error) {
	payload, err := c.do(ctx, http.MethodPost, "/api/products/"+productID+"/archive", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Product](payload)
}

// UnarchiveProduct restores an archived product.
func (c *Client) UnarchiveProduct(ctx context.Context, productID string) (*Product, error) {
	payload, err := c.do(ctx, http.MethodPost, "/api/products/"+productID+"/unarchive", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Product](payload)
}
