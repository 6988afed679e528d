package payflow

import (
	"context"
	"net/http"
	"time"
)

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusTrialing SubscriptionStatus = "trialing"
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusPaused   SubscriptionStatus = "paused"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusExpired  SubscriptionStatus = "expired"
)

// Subscription links a customer to a recurring product. CancelAt is set
// when a cancellation is scheduled for the end of the current period.
type Subscription struct {
	SubscriptionID     string             `json:"subscriptionId"`
	ProductID          string             `json:"productId"`
	CustomerID         string             `json:"customerId,omitempty"`
	CustomerEmail      string             `json:"customerEmail,omitempty"`
	Status             SubscriptionStatus `json:"status"`
	CurrentPeriodStart time.Time          `json:"currentPeriodStart,omitempty"`
	CurrentPeriodEnd   time.Time          `json:"currentPeriodEnd,omitempty"`
	TrialStart         *time.Time         `json:"trialStart,omitempty"`
	TrialEnd           *time.Time         `json:"trialEnd,omitempty"`
	CancelAt           *time.Time         `json:"cancelAt,omitempty"`
	CreatedAt          time.Time          `json:"createdAt,omitempty"`
	UpdatedAt          time.Time          `json:"updatedAt,omitempty"`
}

// GetSubscription fetches a single subscription by ID.
func (c *Client) GetSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	payload, err := c.do(ctx, http.MethodGet, "/api/subscriptions/"+subscriptionID, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Subscription](payload)
}

// ListSubscriptions returns one page of subscriptions.
func (c *Client) ListSubscriptions(ctx context.Context, opts *ListOptions) (*List[Subscription], error) {
	payload, err := c.do(ctx, http.MethodGet, "/api/subscriptions/list", opts.query(), nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[List[Subscription]](payload)
}

// CancelSubscription cancels a subscription server-side and returns the
// resulting snapshot. Whether the cancellation is immediate or scheduled
// for period end is the server's policy; inspect Status and CancelAt.
func (c *Client) CancelSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	payload, err := c.do(ctx, http.MethodPost, "/api/subscriptions/"+subscriptionID+"/cancel", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeEntity[Subscription](payload)
}
