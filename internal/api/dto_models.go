package api

import "github.com/gharseva/provider-portal/internal/core"

// ErrorResponse is the JSON error body for the portal's XHR endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// CreateOrderRequest starts a purchase for a catalog plan.
type CreateOrderRequest struct {
	PlanKey  string `json:"planKey" binding:"required"`
	PlanName string `json:"planName"`
}

// CreateOrderResponse hands the page the checkout configuration to open the
// hosted checkout with.
type CreateOrderResponse struct {
	Options core.CheckoutOptions `json:"options"`
}

// VerifyRequest is the checkout success callback relayed by the page. The
// field names are the gateway's own and are forwarded verbatim.
type VerifyRequest struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

// VerifyResponse acknowledges a verified payment.
type VerifyResponse struct {
	Status string `json:"status"`
}
