package core

import (
	"context"
	"net/http"

	"github.com/gharseva/provider-portal/internal/backend"
	"github.com/gharseva/provider-portal/internal/models"
)

// AuthService wraps the backend's authentication endpoints. The cookies
// arguments are the browser's backend session cookies, forwarded per request.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*backend.AuthResult, error)
	Signup(ctx context.Context, name, email, password string) (*backend.AuthResult, error)
	// Logout invalidates the remote session. Callers clear local state
	// regardless of the outcome.
	Logout(ctx context.Context, cookies []*http.Cookie) error
	// Probe is the "who am I" check performed to restore a session. ok is
	// false for any failure; an unreachable backend and an expired cookie are
	// deliberately indistinguishable.
	Probe(ctx context.Context, cookies []*http.Cookie) (*backend.Session, bool)
}

// ProfileService owns the provider profile flow.
type ProfileService interface {
	Get(ctx context.Context, cookies []*http.Cookie) (*models.Provider, error)
	// Submit validates locally (identity document attached, category known)
	// and then upserts the profile through the backend.
	Submit(ctx context.Context, cookies []*http.Cookie, sub backend.ProfileSubmission) (*models.Provider, error)
	// Suggestions returns bio openers for the category, personalised with the
	// provider's name.
	Suggestions(category models.ServiceCategory, name string) []string
}

// SubscriptionService owns subscription reads and the purchase endpoints.
type SubscriptionService interface {
	Current(ctx context.Context, cookies []*http.Cookie) (*models.Subscription, error)
	Plans(ctx context.Context) ([]models.Plan, error)
	CreateOrder(ctx context.Context, cookies []*http.Cookie, planKey string) (*models.Order, error)
	Verify(ctx context.Context, cookies []*http.Cookie, cb models.PaymentCallback) error
}

// CheckoutGateway is the injected payment-checkout capability. Availability
// is a synchronous check so a purchase can be refused before any order is
// created server-side.
type CheckoutGateway interface {
	Available() bool
	CheckoutOptions(order models.Order, planName, prefillName, prefillEmail string) CheckoutOptions
}

// CheckoutPrefill pre-populates the checkout form.
type CheckoutPrefill struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CheckoutTheme styles the hosted checkout.
type CheckoutTheme struct {
	Color string `json:"color"`
}

// CheckoutOptions is the configuration handed to the gateway's client-side
// checkout. Field names follow the gateway's wire contract.
type CheckoutOptions struct {
	Key         string          `json:"key"`
	Amount      int64           `json:"amount"`
	Currency    string          `json:"currency"`
	OrderID     string          `json:"order_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Prefill     CheckoutPrefill `json:"prefill"`
	Theme       CheckoutTheme   `json:"theme"`
}
