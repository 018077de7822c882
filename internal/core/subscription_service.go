package core

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/gharseva/provider-portal/internal/backend"
	"github.com/gharseva/provider-portal/internal/models"
)

type subscriptionService struct {
	api    *backend.Client
	logger *zap.Logger
}

// NewSubscriptionService creates the SubscriptionService backed by the
// marketplace API.
func NewSubscriptionService(api *backend.Client, logger *zap.Logger) SubscriptionService {
	return &subscriptionService{api: api, logger: logger}
}

func (s *subscriptionService) Current(ctx context.Context, cookies []*http.Cookie) (*models.Subscription, error) {
	return s.api.MySubscription(ctx, cookies)
}

func (s *subscriptionService) Plans(ctx context.Context) ([]models.Plan, error) {
	return s.api.Plans(ctx)
}

func (s *subscriptionService) CreateOrder(ctx context.Context, cookies []*http.Cookie, planKey string) (*models.Order, error) {
	order, err := s.api.CreateOrder(ctx, cookies, planKey)
	if err != nil {
		if backend.StatusCode(err) == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %q", ErrPlanNotFound, planKey)
		}
		return nil, err
	}
	s.logger.Info("payment order created",
		zap.String("plan", planKey),
		zap.String("order_id", order.OrderID),
		zap.Int64("amount", order.Amount),
	)
	return order, nil
}

func (s *subscriptionService) Verify(ctx context.Context, cookies []*http.Cookie, cb models.PaymentCallback) error {
	return s.api.VerifyPayment(ctx, cookies, cb)
}
