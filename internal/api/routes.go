package api

import (
	"github.com/gin-gonic/gin"

	"github.com/gharseva/provider-portal/internal/core"
	"github.com/gharseva/provider-portal/internal/middleware"
	"github.com/gharseva/provider-portal/internal/session"
)

// Handlers bundles the route handlers for registration.
type Handlers struct {
	Pages         *PageHandler
	Auth          *AuthHandler
	Profile       *ProfileHandler
	Subscriptions *SubscriptionHandler
}

// SetupRoutes registers all portal routes. Pages that need an identity use
// the redirecting session guard; the purchase endpoints are called from page
// scripts and get the JSON variant instead.
func SetupRoutes(r *gin.Engine, h Handlers, store *session.Store, auth core.AuthService) {
	r.GET("/", h.Pages.Landing)
	r.GET("/healthz", Health)

	r.POST("/plans/select", h.Subscriptions.SelectPlan)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/signup", h.Auth.Signup)
		authGroup.POST("/logout", h.Auth.Logout)
	}

	pages := r.Group("/", middleware.RequireSession(store, auth, false))
	{
		pages.GET("/dashboard", h.Pages.Dashboard)
		pages.POST("/profile", h.Profile.Submit)
	}

	subs := r.Group("/subscriptions", middleware.RequireSession(store, auth, true))
	{
		subs.POST("/create-order", h.Subscriptions.CreateOrder)
		subs.POST("/verify", h.Subscriptions.Verify)
	}
}
