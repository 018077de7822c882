package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gharseva/provider-portal/internal/backend"
	"github.com/gharseva/provider-portal/internal/core"
	"github.com/gharseva/provider-portal/internal/middleware"
	"github.com/gharseva/provider-portal/internal/models"
	"github.com/gharseva/provider-portal/internal/session"
)

const (
	checkoutUnavailableMsg = "Payment gateway is unavailable. Please try again later."
	verifyFailedMsg        = "Payment successful but verification failed"
	orderFallbackMsg       = "Payment failed. Try again."
)

// SubscriptionHandler serves plan selection and the purchase endpoints.
type SubscriptionHandler struct {
	flow     *core.Flow
	profiles core.ProfileService
	store    *session.Store
	logger   *zap.Logger
}

// NewSubscriptionHandler creates the SubscriptionHandler.
func NewSubscriptionHandler(flow *core.Flow, profiles core.ProfileService, store *session.Store, logger *zap.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{flow: flow, profiles: profiles, store: store, logger: logger}
}

// SelectPlan handles POST /plans/select from the landing page. The selection
// is persisted before authentication is required, overwriting any previous
// pending plan. Logged-out visitors get the signup modal; logged-in ones go
// straight to the dashboard, which owns resumption.
func (h *SubscriptionHandler) SelectPlan(c *gin.Context) {
	plan, ok := models.FindMarketingPlan(c.PostForm("plan"))
	if !ok {
		h.store.SetFlash(c.Writer, session.Flash{Kind: "error", Message: "Unknown plan."})
		c.Redirect(http.StatusFound, "/")
		return
	}

	st := middleware.State(c)
	selected, action := h.flow.SelectPlan(st.LoggedIn(), models.SelectedPlan{
		Key:    plan.Key,
		Name:   plan.Name,
		Price:  plan.Price,
		Period: plan.Period,
	})
	st.SelectedPlan = &selected
	middleware.SetState(c, h.store, st)

	if action == core.ShowSignup {
		c.Redirect(http.StatusFound, "/?signup=1")
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

// CreateOrder handles POST /subscriptions/create-order. The gateway
// availability check runs first so an unusable checkout aborts before any
// order exists server-side.
func (h *SubscriptionHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	prefillName, prefillEmail := h.prefill(c)

	opts, err := h.flow.BeginCheckout(c.Request.Context(), c.Request.Cookies(), req.PlanKey, req.PlanName, prefillName, prefillEmail)
	if err != nil {
		if errors.Is(err, core.ErrCheckoutUnavailable) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: checkoutUnavailableMsg})
			return
		}
		if errors.Is(err, core.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Unknown plan."})
			return
		}
		h.logger.Warn("create order failed", zap.String("plan", req.PlanKey), zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: backend.Message(err, orderFallbackMsg)})
		return
	}

	c.JSON(http.StatusOK, CreateOrderResponse{Options: *opts})
}

// prefill resolves the checkout's prefilled name and email, preferring the
// provider profile over the cached account identity.
func (h *SubscriptionHandler) prefill(c *gin.Context) (string, string) {
	st := middleware.State(c)
	name, email := "", ""
	if st.User != nil {
		name, email = st.User.Name, st.User.Email
	}
	if profile, err := h.profiles.Get(c.Request.Context(), c.Request.Cookies()); err == nil && profile != nil {
		if profile.Name != "" {
			name = profile.Name
		}
		if profile.Email != "" {
			email = profile.Email
		}
	}
	return name, email
}

// Verify handles POST /subscriptions/verify, the relay of the checkout
// success callback. On success the pending plan is consumed and the page
// refetches profile and subscription so the UI shows server state. On
// failure nothing local changes: the subscription is not marked active and
// the user is told to follow up.
func (h *SubscriptionHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	cb := models.PaymentCallback{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	}
	if err := h.flow.CompleteCheckout(c.Request.Context(), c.Request.Cookies(), cb); err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: verifyFailedMsg})
		return
	}

	st := middleware.State(c)
	st.SelectedPlan = nil
	middleware.SetState(c, h.store, st)

	h.store.SetFlash(c.Writer, session.Flash{Kind: "success", Message: "Subscription activated 🎉"})
	c.JSON(http.StatusOK, VerifyResponse{Status: "ok"})
}
