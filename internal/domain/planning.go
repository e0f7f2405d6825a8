package domain

import (
	"github.com/shopspring/decimal"
)

// SponsorshipInput holds the audience metrics a brand deal is priced from
type SponsorshipInput struct {
	Followers      float64 `yaml:"followers" json:"followers"`
	AvgViews       float64 `yaml:"avg_views" json:"avgViews"`
	EngagementRate float64 `yaml:"engagement_rate" json:"engagementRate"` // percent
	CPM            float64 `yaml:"cpm" json:"cpm"`
}

// SponsorshipQuote is the price estimate for one sponsored deliverable
type SponsorshipQuote struct {
	CPMBased        decimal.Decimal `yaml:"cpm_based" json:"cpmBased"`
	FollowerBased   decimal.Decimal `yaml:"follower_based" json:"followerBased"`
	EngagementBased decimal.Decimal `yaml:"engagement_based" json:"engagementBased"`
	Blended         decimal.Decimal `yaml:"blended" json:"blended"`
	Low             decimal.Decimal `yaml:"low" json:"low"`
	High            decimal.Decimal `yaml:"high" json:"high"`
	Region          string          `yaml:"region" json:"region"`
	Niche           string          `yaml:"niche" json:"niche"`
}

// PlanInput describes a creator business for the month-by-month planner
type PlanInput struct {
	StartingMonthlyRevenue decimal.Decimal `yaml:"starting_monthly_revenue" json:"startingMonthlyRevenue"`
	MonthlyGrowthPercent   decimal.Decimal `yaml:"monthly_growth_percent" json:"monthlyGrowthPercent"`
	MonthlyExpenses        decimal.Decimal `yaml:"monthly_expenses" json:"monthlyExpenses"`
	TaxRatePercent         decimal.Decimal `yaml:"tax_rate_percent" json:"taxRatePercent"`
	UpfrontInvestment      decimal.Decimal `yaml:"upfront_investment" json:"upfrontInvestment"`
	Months                 int             `yaml:"months" json:"months"`
}

// PlanMonth is one row of a business plan projection
type PlanMonth struct {
	Month      int             `yaml:"month" json:"month"`
	Revenue    decimal.Decimal `yaml:"revenue" json:"revenue"`
	Expenses   decimal.Decimal `yaml:"expenses" json:"expenses"`
	Profit     decimal.Decimal `yaml:"profit" json:"profit"`
	Tax        decimal.Decimal `yaml:"tax" json:"tax"`
	Net        decimal.Decimal `yaml:"net" json:"net"`
	Cumulative decimal.Decimal `yaml:"cumulative" json:"cumulative"`
}

// PlanProjection is the complete output of the business planner
type PlanProjection struct {
	Input          PlanInput       `yaml:"input" json:"input"`
	Months         []PlanMonth     `yaml:"months" json:"months"`
	TotalRevenue   decimal.Decimal `yaml:"total_revenue" json:"totalRevenue"`
	TotalExpenses  decimal.Decimal `yaml:"total_expenses" json:"totalExpenses"`
	TotalTax       decimal.Decimal `yaml:"total_tax" json:"totalTax"`
	TotalNet       decimal.Decimal `yaml:"total_net" json:"totalNet"`
	BreakEvenMonth int             `yaml:"break_even_month" json:"breakEvenMonth"` // 0 when never reached
}

// MixEntry is a platform in the content mix simulator with the share of effort spent on it
type MixEntry struct {
	Platform          string      `yaml:"platform" json:"platform"`
	Inputs            InputValues `yaml:"inputs" json:"inputs"`
	AllocationPercent float64     `yaml:"allocation_percent" json:"allocationPercent"`
}

// MixInput is the request for a content mix simulation
type MixInput struct {
	Region  string     `yaml:"region,omitempty" json:"region,omitempty"`
	Niche   string     `yaml:"niche,omitempty" json:"niche,omitempty"`
	Entries []MixEntry `yaml:"entries" json:"entries"`
}

// MixContribution is one platform's share of a simulated content mix
type MixContribution struct {
	Platform          string          `yaml:"platform" json:"platform"`
	Allocation        decimal.Decimal `yaml:"allocation" json:"allocation"` // fraction of effort, 0..1
	FullEffortMonthly decimal.Decimal `yaml:"full_effort_monthly" json:"fullEffortMonthly"`
	Monthly           decimal.Decimal `yaml:"monthly" json:"monthly"`
	Share             decimal.Decimal `yaml:"share" json:"share"` // fraction of mix revenue, 0..1
}

// MixResult is the outcome of a content mix simulation
type MixResult struct {
	Contributions        []MixContribution `yaml:"contributions" json:"contributions"`
	TotalMonthly         decimal.Decimal   `yaml:"total_monthly" json:"totalMonthly"`
	TotalYearly          decimal.Decimal   `yaml:"total_yearly" json:"totalYearly"`
	TopPlatform          string            `yaml:"top_platform,omitempty" json:"topPlatform,omitempty"`
	DiversificationScore decimal.Decimal   `yaml:"diversification_score" json:"diversificationScore"`
	Normalized           bool              `yaml:"normalized" json:"normalized"`
}

// SensitivityPoint is one sample of a parameter sweep
type SensitivityPoint struct {
	Value   decimal.Decimal `yaml:"value" json:"value"`
	Monthly decimal.Decimal `yaml:"monthly" json:"monthly"`
}

// SensitivityAnalysis is the result of sweeping a single input
type SensitivityAnalysis struct {
	Platform    string             `yaml:"platform" json:"platform"`
	Input       string             `yaml:"input" json:"input"`
	BaseValue   decimal.Decimal    `yaml:"base_value" json:"baseValue"`
	BaseMonthly decimal.Decimal    `yaml:"base_monthly" json:"baseMonthly"`
	Points      []SensitivityPoint `yaml:"points" json:"points"`
	Elasticity  decimal.Decimal    `yaml:"elasticity" json:"elasticity"`
	MinMonthly  decimal.Decimal    `yaml:"min_monthly" json:"minMonthly"`
	MaxMonthly  decimal.Decimal    `yaml:"max_monthly" json:"maxMonthly"`
}
