package models

import "strings"

// ServiceCategory enumerates the professions the platform lists. Keeping this
// a closed type means every category has a defined (possibly empty) bio
// suggestion set instead of a lookup keyed by free text.
type ServiceCategory string

const (
	CategoryPlumbing        ServiceCategory = "Plumbing"
	CategoryElectrical      ServiceCategory = "Electrical"
	CategoryCleaning        ServiceCategory = "Cleaning"
	CategoryCarpentry       ServiceCategory = "Carpentry"
	CategoryPainting        ServiceCategory = "Painting"
	CategoryACRepair        ServiceCategory = "AC Repair"
	CategoryPestControl     ServiceCategory = "Pest Control"
	CategoryApplianceRepair ServiceCategory = "Appliance Repair"
)

// ServiceCategories lists every category in display order.
var ServiceCategories = []ServiceCategory{
	CategoryPlumbing,
	CategoryElectrical,
	CategoryCleaning,
	CategoryCarpentry,
	CategoryPainting,
	CategoryACRepair,
	CategoryPestControl,
	CategoryApplianceRepair,
}

// ProfileCategories are the categories a provider may register under.
var ProfileCategories = []ServiceCategory{
	CategoryPlumbing,
	CategoryElectrical,
	CategoryCarpentry,
	CategoryACRepair,
}

// ServiceAreas are the localities a provider may register for.
var ServiceAreas = []string{"Wakad", "Hinjewadi", "Baner", "Hadapsar"}

// ParseServiceCategory maps a submitted value onto the enumerated type.
func ParseServiceCategory(s string) (ServiceCategory, bool) {
	for _, c := range ServiceCategories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// bioTemplates maps each category to curated bio openers. "{name}" is
// replaced with the provider's name before display.
var bioTemplates = map[ServiceCategory][]string{
	CategoryPlumbing: {
		"Hi, I am {name}, a skilled plumber with experience in leak repairs and fittings.",
		"{name} here! I specialize in bathroom, kitchen, and pipeline plumbing services.",
		"Reliable and quick plumbing service by {name} for homes and offices.",
	},
	CategoryElectrical: {
		"Hello, I'm {name}, an experienced electrician for home wiring and repairs.",
		"{name} provides safe and efficient electrical services at affordable prices.",
		"Expert in electrical installation, maintenance, and fault fixing - {name}.",
	},
	CategoryCarpentry: {
		"I'm {name}, a professional carpenter specializing in furniture and fittings.",
		"{name} offers quality woodwork, repairs, and custom carpentry solutions.",
		"Trusted carpentry services for homes and offices by {name}.",
	},
	CategoryACRepair: {
		"Hi, I'm {name}, providing AC repair, servicing, and installation.",
		"{name} ensures fast and reliable AC maintenance and cooling solutions.",
		"Expert AC technician {name} for all cooling needs.",
	},
}

// Suggestions returns the bio suggestion texts for the category with the
// provider's name substituted in. Categories without curated templates return
// an empty slice. A blank name falls back to "I", matching the templates'
// grammar.
func (c ServiceCategory) Suggestions(name string) []string {
	templates := bioTemplates[c]
	if len(templates) == 0 {
		return nil
	}
	if strings.TrimSpace(name) == "" {
		name = "I"
	}
	out := make([]string, len(templates))
	for i, t := range templates {
		out[i] = strings.ReplaceAll(t, "{name}", name)
	}
	return out
}
