// Package razorpay implements the checkout capability against Razorpay's
// hosted checkout. The portal never talks to Razorpay servers itself; it
// builds the configuration the hosted checkout consumes and lets the backend
// verify the result.
package razorpay

import (
	"fmt"

	"github.com/gharseva/provider-portal/internal/core"
	"github.com/gharseva/provider-portal/internal/models"
)

const (
	displayName = "GharSeva"
	themeColor  = "#ea580c"
)

// Gateway builds Razorpay checkout configurations.
type Gateway struct {
	keyID string
}

// New creates the gateway. An empty key id produces an unavailable gateway,
// which makes purchase attempts abort before any order is created.
func New(keyID string) *Gateway {
	return &Gateway{keyID: keyID}
}

// Available reports whether checkout can be invoked at all.
func (g *Gateway) Available() bool {
	return g.keyID != ""
}

// CheckoutOptions assembles the hosted-checkout configuration from the
// backend's order. The backend may return its own publishable key with the
// order; it wins over the configured one so key rotation on the backend does
// not require a portal redeploy.
func (g *Gateway) CheckoutOptions(order models.Order, planName, prefillName, prefillEmail string) core.CheckoutOptions {
	key := order.Key
	if key == "" {
		key = g.keyID
	}
	return core.CheckoutOptions{
		Key:         key,
		Amount:      order.Amount,
		Currency:    order.Currency,
		OrderID:     order.OrderID,
		Name:        displayName,
		Description: fmt.Sprintf("%s Subscription", planName),
		Prefill:     core.CheckoutPrefill{Name: prefillName, Email: prefillEmail},
		Theme:       core.CheckoutTheme{Color: themeColor},
	}
}
