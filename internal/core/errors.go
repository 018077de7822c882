package core

import "errors"

var (
	// ErrIdentityDocumentRequired rejects a profile submission locally,
	// before any network call, when no identity document is attached.
	ErrIdentityDocumentRequired = errors.New("identity document is required")

	// ErrUnknownCategory rejects a profile submission naming a service
	// category outside the enumerated set.
	ErrUnknownCategory = errors.New("unknown service category")

	// ErrCheckoutUnavailable aborts a purchase before any order is created
	// when the payment gateway is not usable.
	ErrCheckoutUnavailable = errors.New("payment gateway is unavailable")

	// ErrVerificationFailed marks the worst failure class: the gateway
	// reported a successful payment but the backend could not verify it.
	// Manual follow-up is required; the portal does not retry.
	ErrVerificationFailed = errors.New("payment verification failed")

	// ErrPlanNotFound is returned when a purchase names a plan the catalog
	// does not contain.
	ErrPlanNotFound = errors.New("plan not found")
)
