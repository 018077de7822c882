package models

import "time"

// User is the authenticated account as the backend reports it.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Provider is the service-provider profile owned by the backend. The portal
// holds a read-only copy for display; completion and verification are the
// backend's call.
type Provider struct {
	Name               string `json:"name"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	PrimaryService     string `json:"primaryService"`
	PrimaryServiceArea string `json:"primaryServiceArea"`
	Description        string `json:"description"`
	ProfilePhotoURL    string `json:"profilePhotoUrl"`
	AadhaarURL         string `json:"aadhaarUrl"`
	IsVerified         bool   `json:"isVerified"`
	ProfileCompleted   bool   `json:"profileCompleted"`

	// Coarse dashboard stats, aggregated server-side.
	Rating          float64 `json:"rating"`
	JobsCompleted   int     `json:"jobsCompleted"`
	MonthlyEarnings int     `json:"monthlyEarnings"`
}

// SubscriptionStatusActive is the only status the portal treats as an active
// subscription; anything else (or no subscription at all) sends the user to
// the plan catalog.
const SubscriptionStatusActive = "active"

// Subscription is the provider's current plan as the backend reports it.
type Subscription struct {
	PlanName string    `json:"planName"`
	Status   string    `json:"status"`
	EndDate  time.Time `json:"endDate"`
}

// Active reports whether the backend considers this subscription live.
func (s *Subscription) Active() bool {
	return s != nil && s.Status == SubscriptionStatusActive
}

// PlanDuration is a billing period, e.g. {1 month}.
type PlanDuration struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

// Plan is a purchasable subscription tier from the backend catalog. Amount is
// in paise. SortOrder 1 marks the highlighted ("most popular") tier.
type Plan struct {
	Key       string       `json:"key"`
	Name      string       `json:"name"`
	Amount    int64        `json:"amount"`
	Duration  PlanDuration `json:"duration"`
	Features  []string     `json:"features"`
	SortOrder int          `json:"sortOrder"`
}

// SelectedPlan is the purchase intent a visitor expresses by clicking a plan,
// possibly before authenticating. It is persisted in the state cookie so the
// flow survives the login/signup round trip.
type SelectedPlan struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Price  string `json:"price"`
	Period string `json:"period"`
}

// Order is the payment order the backend creates ahead of checkout.
type Order struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Key      string `json:"key"`
}

// PaymentCallback carries the identifiers the checkout handler reports on a
// successful payment. They are forwarded verbatim to the backend for
// verification.
type PaymentCallback struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}
