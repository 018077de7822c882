package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gharseva/provider-portal/internal/core"
	"github.com/gharseva/provider-portal/internal/middleware"
	"github.com/gharseva/provider-portal/internal/models"
	"github.com/gharseva/provider-portal/internal/session"
)

// PageHandler renders the landing page and the provider dashboard.
type PageHandler struct {
	flow     *core.Flow
	profiles core.ProfileService
	store    *session.Store
	logger   *zap.Logger
}

// NewPageHandler creates the PageHandler.
func NewPageHandler(flow *core.Flow, profiles core.ProfileService, store *session.Store, logger *zap.Logger) *PageHandler {
	return &PageHandler{flow: flow, profiles: profiles, store: store, logger: logger}
}

// Landing handles GET /. The page is public; the cached identity only
// changes the nav buttons and whether the signup modal opens pre-seeded with
// a just-selected plan.
func (h *PageHandler) Landing(c *gin.Context) {
	st := middleware.State(c)
	flash := h.store.PopFlash(c.Writer, c.Request)

	c.HTML(http.StatusOK, "landing.html", gin.H{
		"Title":            "GharSeva - Home Service Platform",
		"Flash":            flash,
		"User":             st.User,
		"ProfileCompleted": st.ProfileCompleted,
		"SelectedPlan":     st.SelectedPlan,
		"Services":         models.LandingServices,
		"Locations":        models.LandingLocations,
		"Reviews":          models.LandingReviews,
		"Plans":            models.LandingPlans,
		"Stats":            models.LandingStats,
		"OpenLogin":        c.Query("login") == "1",
		"OpenSignup":       c.Query("signup") == "1",
	})
}

// Tabs that require a provider profile before their content renders.
var gatedTabs = map[string]bool{
	"overview": true,
	"leads":    true,
	"earnings": true,
}

// Dashboard handles GET /dashboard. The profile and subscription are fetched
// concurrently; the view renders once both complete. This is the single
// place that inspects a pending selected plan and decides whether to prompt
// for payment.
func (h *PageHandler) Dashboard(c *gin.Context) {
	st := middleware.State(c)
	flash := h.store.PopFlash(c.Writer, c.Request)

	d, err := h.flow.LoadDashboard(c.Request.Context(), c.Request.Cookies(), st.SelectedPlan)
	if err != nil {
		c.HTML(http.StatusBadGateway, "error.html", gin.H{
			"Title":   "Dashboard unavailable",
			"Message": "Could not load your dashboard. Please try again.",
		})
		return
	}

	// Reconcile the optimistic completed flag with the fetched truth; the
	// confirmed value always wins.
	confirmed := d.Profile != nil
	if st.ProfileCompleted != confirmed {
		st.ProfileCompleted = confirmed
		middleware.SetState(c, h.store, st)
	}

	tab := c.DefaultQuery("tab", "profile")
	if _, known := map[string]bool{"profile": true, "overview": true, "leads": true, "earnings": true}[tab]; !known {
		tab = "profile"
	}

	name := ""
	if st.User != nil {
		name = st.User.Name
	}
	if d.Profile != nil {
		name = d.Profile.Name
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":             "GharSeva Pro",
		"Flash":             flash,
		"User":              st.User,
		"Dash":              d,
		"Tab":               tab,
		"Gated":             d.ProfileGated() && gatedTabs[tab],
		"PendingPlan":       d.PendingPlan,
		"FlowState":         d.State.String(),
		"CheckoutAvailable": h.flow.CheckoutAvailable(),
		"Categories":        models.ProfileCategories,
		"Areas":             models.ServiceAreas,
		"Suggestions":       h.suggestionIndex(name),
		"OpenProfileModal":  c.Query("profile") == "1",
	})
}

// suggestionIndex builds the per-category bio suggestions the profile form
// switches between as the category select changes.
func (h *PageHandler) suggestionIndex(name string) map[string][]string {
	out := make(map[string][]string, len(models.ProfileCategories))
	for _, cat := range models.ProfileCategories {
		out[string(cat)] = h.profiles.Suggestions(cat, name)
	}
	return out
}

// Health handles GET /healthz.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}
