package registry

import (
	"strings"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Fallback ids used when a lookup misses.
const (
	DefaultNicheID      = "general"
	DefaultTimePeriodID = "monthly"
)

func region(id, name string, revenue, rpm float64) domain.Region {
	return domain.Region{
		ID:                id,
		Name:              name,
		RevenueMultiplier: decimal.NewFromFloat(revenue),
		RPMMultiplier:     decimal.NewFromFloat(rpm),
	}
}

func niche(id, name string, rpm float64) domain.Niche {
	return domain.Niche{ID: id, Name: name, RPMMultiplier: decimal.NewFromFloat(rpm)}
}

// regions[0] is the fallback for unknown region ids.
var regions = []domain.Region{
	region("us", "United States", 1.00, 1.00),
	region("ca", "Canada", 0.90, 0.90),
	region("uk", "United Kingdom", 0.85, 0.90),
	region("au", "Australia", 0.85, 0.90),
	region("de", "Germany", 0.80, 0.85),
	region("fr", "France", 0.75, 0.80),
	region("jp", "Japan", 0.70, 0.75),
	region("br", "Brazil", 0.35, 0.40),
	region("mx", "Mexico", 0.35, 0.40),
	region("in", "India", 0.25, 0.30),
	region("ph", "Philippines", 0.20, 0.25),
	region("global", "Global Mix", 0.60, 0.60),
}

var niches = []domain.Niche{
	niche("general", "General", 1.0),
	niche("finance", "Finance & Investing", 2.0),
	niche("business", "Business & Marketing", 1.8),
	niche("tech", "Technology", 1.6),
	niche("education", "Education", 1.4),
	niche("health", "Health & Wellness", 1.3),
	niche("fitness", "Fitness", 1.2),
	niche("travel", "Travel", 1.2),
	niche("beauty", "Beauty & Fashion", 1.1),
	niche("food", "Food & Cooking", 1.0),
	niche("lifestyle", "Lifestyle", 1.0),
	niche("entertainment", "Entertainment", 0.9),
	niche("gaming", "Gaming", 0.8),
	niche("music", "Music", 0.7),
}

var timePeriods = []domain.TimePeriod{
	{ID: "daily", Name: "Daily", Multiplier: decimal.NewFromInt(12).Div(decimal.NewFromInt(365))},
	{ID: "weekly", Name: "Weekly", Multiplier: decimal.NewFromInt(12).Div(decimal.NewFromInt(52))},
	{ID: "monthly", Name: "Monthly", Multiplier: decimal.NewFromInt(1)},
	{ID: "yearly", Name: "Yearly", Multiplier: decimal.NewFromInt(12)},
}

func normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Regions returns the region table.
func Regions() []domain.Region {
	return append([]domain.Region(nil), regions...)
}

// LookupRegion returns the region with the given id and whether it exists.
func LookupRegion(id string) (domain.Region, bool) {
	id = normalize(id)
	for _, r := range regions {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Region{}, false
}

// Region returns the region with the given id, falling back to the first region.
func Region(id string) domain.Region {
	if r, ok := LookupRegion(id); ok {
		return r
	}
	return regions[0]
}

// Niches returns the niche table.
func Niches() []domain.Niche {
	return append([]domain.Niche(nil), niches...)
}

// LookupNiche returns the niche with the given id and whether it exists.
func LookupNiche(id string) (domain.Niche, bool) {
	id = normalize(id)
	for _, n := range niches {
		if n.ID == id {
			return n, true
		}
	}
	return domain.Niche{}, false
}

// Niche returns the niche with the given id, falling back to general.
func Niche(id string) domain.Niche {
	if n, ok := LookupNiche(id); ok {
		return n
	}
	n, _ := LookupNiche(DefaultNicheID)
	return n
}

// TimePeriods returns the reporting windows.
func TimePeriods() []domain.TimePeriod {
	return append([]domain.TimePeriod(nil), timePeriods...)
}

// LookupTimePeriod returns the period with the given id and whether it exists.
func LookupTimePeriod(id string) (domain.TimePeriod, bool) {
	id = normalize(id)
	for _, tp := range timePeriods {
		if tp.ID == id {
			return tp, true
		}
	}
	return domain.TimePeriod{}, false
}

// TimePeriod returns the period with the given id, falling back to monthly.
func TimePeriod(id string) domain.TimePeriod {
	if tp, ok := LookupTimePeriod(id); ok {
		return tp
	}
	tp, _ := LookupTimePeriod(DefaultTimePeriodID)
	return tp
}
