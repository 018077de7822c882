package backend

import (
	"context"
	"net/http"

	"github.com/gharseva/provider-portal/internal/models"
)

// MySubscription fetches the provider's current subscription. A 404 means no
// subscription exists yet and is not an error.
func (c *Client) MySubscription(ctx context.Context, cookies []*http.Cookie) (*models.Subscription, error) {
	var payload struct {
		Subscription *models.Subscription `json:"subscription"`
	}
	if _, err := c.get(ctx, "/subscriptions/my", cookies, &payload); err != nil {
		if StatusCode(err) == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return payload.Subscription, nil
}

// Plans fetches the purchasable plan catalog. The endpoint is public.
func (c *Client) Plans(ctx context.Context) ([]models.Plan, error) {
	var payload struct {
		Plans []models.Plan `json:"plans"`
	}
	if _, err := c.get(ctx, "/subscriptions/plans", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Plans, nil
}

// CreateOrder asks the backend to create a payment order for the plan.
func (c *Client) CreateOrder(ctx context.Context, cookies []*http.Cookie, planKey string) (*models.Order, error) {
	body := map[string]string{"planKey": planKey}
	var order models.Order
	if _, err := c.post(ctx, "/subscriptions/create-order", cookies, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// VerifyPayment forwards the checkout callback identifiers verbatim for
// server-side verification. A client-reported payment counts for nothing
// until this succeeds.
func (c *Client) VerifyPayment(ctx context.Context, cookies []*http.Cookie, cb models.PaymentCallback) error {
	_, err := c.post(ctx, "/subscriptions/verify", cookies, cb, nil)
	return err
}
