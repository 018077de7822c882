package models

// Static landing-page content. This is marketing copy, not data the backend
// owns, so it lives with the portal.

// ServiceListing is a service tile on the landing page.
type ServiceListing struct {
	Name      ServiceCategory
	Icon      string
	Providers int
}

// Review is a customer testimonial.
type Review struct {
	Name     string
	Location string
	Rating   int
	Service  string
	Text     string
	Date     string
}

// MarketingPlan is a subscription tier as advertised on the landing page.
// The purchasable catalog with live pricing comes from the backend; these
// mirror it for visitors who have not signed up yet.
type MarketingPlan struct {
	Key      string
	Name     string
	Price    string
	Period   string
	Features []string
	Popular  bool
}

// Stat is a headline figure in the hero section.
type Stat struct {
	Number string
	Label  string
}

var LandingServices = []ServiceListing{
	{Name: CategoryPlumbing, Icon: "zap", Providers: 234},
	{Name: CategoryElectrical, Icon: "zap", Providers: 189},
	{Name: CategoryCleaning, Icon: "home", Providers: 456},
	{Name: CategoryCarpentry, Icon: "zap", Providers: 167},
	{Name: CategoryPainting, Icon: "paintbrush", Providers: 203},
	{Name: CategoryACRepair, Icon: "snowflake", Providers: 145},
	{Name: CategoryPestControl, Icon: "bug", Providers: 98},
	{Name: CategoryApplianceRepair, Icon: "plug", Providers: 176},
}

var LandingLocations = []string{
	"Wakad", "Hinjewadi", "Baner / Pashan", "Bavdhan", "Hadapsar", "Kalewadi", "Pimple Nilakh",
}

var LandingReviews = []Review{
	{
		Name: "Priya Sharma", Location: "Wakad", Rating: 5, Service: "Plumbing",
		Text: "Found an excellent plumber within minutes. Professional service and reasonable pricing. GharSeva made it so easy!",
		Date: "2 days ago",
	},
	{
		Name: "Rajesh Kumar", Location: "Hinjewadi", Rating: 5, Service: "Electrical Work",
		Text: "The electrician was prompt, skilled, and fixed all issues quickly. Great platform for finding reliable service providers.",
		Date: "1 week ago",
	},
	{
		Name: "Anjali Patel", Location: "Baner", Rating: 4, Service: "House Cleaning",
		Text: "Very satisfied with the cleaning service. The team was thorough and professional. Will definitely use again.",
		Date: "3 days ago",
	},
}

var LandingPlans = []MarketingPlan{
	{
		Key: "basic", Name: "Basic", Price: "₹499", Period: "month",
		Features: []string{
			"Profile listing on platform",
			"Up to 20 leads per month",
			"Basic customer support",
			"Mobile app access",
		},
	},
	{
		Key: "professional", Name: "Professional", Price: "₹999", Period: "month", Popular: true,
		Features: []string{
			"Featured profile listing",
			"Unlimited leads",
			"Priority customer support",
			"Advanced analytics dashboard",
			"Payment gateway integration",
			"Marketing tools & promotions",
		},
	},
	{
		Key: "enterprise", Name: "Enterprise", Price: "₹1,999", Period: "month",
		Features: []string{
			"Premium placement",
			"Unlimited leads",
			"24/7 dedicated support",
			"Advanced analytics & insights",
			"Full marketing suite",
			"Verified & Premium badge",
			"Team management (up to 5 members)",
		},
	},
}

var LandingStats = []Stat{
	{Number: "5,000+", Label: "Local Providers"},
	{Number: "50K+", Label: "Happy Customers"},
	{Number: "7", Label: "Areas in Pune Covered"},
	{Number: "4.9★", Label: "Average Rating"},
}

// FindMarketingPlan resolves a landing-page plan by key.
func FindMarketingPlan(key string) (MarketingPlan, bool) {
	for _, p := range LandingPlans {
		if p.Key == key {
			return p, true
		}
	}
	return MarketingPlan{}, false
}
