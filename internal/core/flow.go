package core

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/gharseva/provider-portal/internal/models"
)

// FlowState names the stages of the plan-selection/purchase flow. A selected
// plan survives authentication in the state cookie; the dashboard is the
// single place that inspects the pending plan and decides what happens next.
type FlowState int

const (
	NoPlanSelected FlowState = iota
	PlanSelectedUnauthenticated
	PlanSelectedAuthenticated
	ProfileIncomplete
	PaymentPending
	PaymentVerifying
	Subscribed
	Failed
)

func (s FlowState) String() string {
	switch s {
	case NoPlanSelected:
		return "no-plan-selected"
	case PlanSelectedUnauthenticated:
		return "plan-selected-unauthenticated"
	case PlanSelectedAuthenticated:
		return "plan-selected-authenticated"
	case ProfileIncomplete:
		return "profile-incomplete"
	case PaymentPending:
		return "payment-pending"
	case PaymentVerifying:
		return "payment-verifying"
	case Subscribed:
		return "subscribed"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// DeriveState computes the flow state from what the portal knows. Profile
// completion gates independently of the plan flow: an incomplete profile
// wins over any pending payment intent and over whatever the subscription
// says.
func DeriveState(loggedIn bool, pending *models.SelectedPlan, profile *models.Provider, sub *models.Subscription) FlowState {
	if pending != nil && !loggedIn {
		return PlanSelectedUnauthenticated
	}
	if loggedIn && profile == nil {
		return ProfileIncomplete
	}
	if sub.Active() {
		return Subscribed
	}
	if pending != nil {
		return PlanSelectedAuthenticated
	}
	return NoPlanSelected
}

// SelectAction is what the UI should do after a plan is selected.
type SelectAction int

const (
	// ShowSignup opens the signup modal; the plan waits in the state cookie.
	ShowSignup SelectAction = iota
	// GoToDashboard sends the user to the dashboard, which owns resumption.
	GoToDashboard
)

// Dashboard is everything the dashboard view renders, assembled in one shot.
type Dashboard struct {
	Profile      *models.Provider
	Subscription *models.Subscription
	Plans        []models.Plan
	PendingPlan  *models.SelectedPlan
	State        FlowState
}

// ProfileGated reports whether the overview, leads, and earnings tabs must
// render the completion prompt instead of their content.
func (d *Dashboard) ProfileGated() bool { return d.Profile == nil }

// Flow coordinates plan selection, profile gating, and purchase against the
// backend and the checkout gateway.
type Flow struct {
	profiles ProfileService
	subs     SubscriptionService
	gateway  CheckoutGateway
	logger   *zap.Logger
}

// NewFlow wires the purchase orchestrator.
func NewFlow(profiles ProfileService, subs SubscriptionService, gateway CheckoutGateway, logger *zap.Logger) *Flow {
	return &Flow{profiles: profiles, subs: subs, gateway: gateway, logger: logger}
}

// CheckoutAvailable reports whether the payment gateway can be invoked.
func (f *Flow) CheckoutAvailable() bool { return f.gateway.Available() }

// SelectPlan records the purchase intent, overwriting any previous selection,
// and reports where the UI should go. Selecting while unauthenticated opens
// signup; otherwise the dashboard takes over.
func (f *Flow) SelectPlan(loggedIn bool, plan models.SelectedPlan) (models.SelectedPlan, SelectAction) {
	if !loggedIn {
		return plan, ShowSignup
	}
	return plan, GoToDashboard
}

// LoadDashboard fetches the profile and the current subscription
// concurrently, then the plan catalog when no active subscription exists.
// The two fetches are independent; neither order is assumed. Fetch failures
// degrade the view (no profile, no subscription) rather than abort it,
// matching the shipped behavior.
func (f *Flow) LoadDashboard(ctx context.Context, cookies []*http.Cookie, pending *models.SelectedPlan) (*Dashboard, error) {
	var (
		wg      sync.WaitGroup
		profile *models.Provider
		sub     *models.Subscription
		profErr error
		subErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		profile, profErr = f.profiles.Get(ctx, cookies)
	}()
	go func() {
		defer wg.Done()
		sub, subErr = f.subs.Current(ctx, cookies)
	}()
	wg.Wait()

	if profErr != nil {
		f.logger.Warn("profile fetch failed", zap.Error(profErr))
	}
	if subErr != nil {
		f.logger.Warn("subscription fetch failed", zap.Error(subErr))
	}

	d := &Dashboard{
		Profile:      profile,
		Subscription: sub,
		PendingPlan:  pending,
		State:        DeriveState(true, pending, profile, sub),
	}

	// The catalog is fetched only when the backend does not report an active
	// subscription; status "active" suppresses it entirely.
	if !sub.Active() {
		plans, err := f.subs.Plans(ctx)
		if err != nil {
			f.logger.Warn("plan catalog fetch failed", zap.Error(err))
		} else {
			d.Plans = plans
		}
	}
	return d, nil
}

// BeginCheckout starts a purchase: it refuses immediately when the gateway is
// unavailable (no order is created server-side in that case), otherwise it
// creates an order with the backend and returns the checkout configuration
// for the gateway's client-side checkout. The flow is in PaymentPending once
// this returns.
func (f *Flow) BeginCheckout(ctx context.Context, cookies []*http.Cookie, planKey, planName, prefillName, prefillEmail string) (*CheckoutOptions, error) {
	if !f.gateway.Available() {
		return nil, ErrCheckoutUnavailable
	}

	order, err := f.subs.CreateOrder(ctx, cookies, planKey)
	if err != nil {
		return nil, err
	}

	opts := f.gateway.CheckoutOptions(*order, planName, prefillName, prefillEmail)
	f.logger.Info("checkout started",
		zap.String("plan", planKey),
		zap.String("order_id", order.OrderID),
		zap.String("state", PaymentPending.String()),
	)
	return &opts, nil
}

// CompleteCheckout handles the gateway's success callback: the identifiers
// are forwarded verbatim to the backend for verification. Success moves the
// flow to Subscribed (callers refetch profile and subscription so the UI
// reflects server state, not the callback). Failure is terminal and
// manually-recoverable: money may have moved, so no automatic retry is
// attempted and local subscription state is left untouched.
func (f *Flow) CompleteCheckout(ctx context.Context, cookies []*http.Cookie, cb models.PaymentCallback) error {
	f.logger.Info("payment callback received",
		zap.String("order_id", cb.OrderID),
		zap.String("payment_id", cb.PaymentID),
		zap.String("state", PaymentVerifying.String()),
	)
	if err := f.subs.Verify(ctx, cookies, cb); err != nil {
		f.logger.Error("payment verification failed",
			zap.String("order_id", cb.OrderID),
			zap.String("state", Failed.String()),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}
	f.logger.Info("subscription activated",
		zap.String("order_id", cb.OrderID),
		zap.String("state", Subscribed.String()),
	)
	return nil
}
