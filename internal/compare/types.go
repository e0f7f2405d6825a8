package compare

import (
	"fmt"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single scenario comparison with calculated metrics
type ComparisonResult struct {
	ScenarioName string                  `json:"scenarioName"`
	Description  string                  `json:"description"`
	Summary      *domain.ScenarioSummary `json:"-"`

	// Key Metrics
	MonthlyRevenue  decimal.Decimal `json:"monthlyRevenue"`
	YearlyRevenue   decimal.Decimal `json:"yearlyRevenue"`
	PlatformCount   int             `json:"platformCount"`
	TopPlatform     string          `json:"topPlatform,omitempty"`
	Diversification decimal.Decimal `json:"diversification"`

	// Comparison to Base
	MonthlyDiffFromBase decimal.Decimal `json:"monthlyDiffFromBase"`
	MonthlyPctFromBase  decimal.Decimal `json:"monthlyPctFromBase"`
	PlatformCountDiff   int             `json:"platformCountDiff"`

	Region string `json:"region,omitempty"`
	Niche  string `json:"niche,omitempty"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath,omitempty"`
}

// MetricsCalculator extracts key metrics from scenario summaries
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the comparison metrics for a scenario summary
func (mc *MetricsCalculator) CalculateMetrics(summary *domain.ScenarioSummary) ComparisonResult {
	return ComparisonResult{
		ScenarioName:    summary.Name,
		Description:     summary.Description,
		Summary:         summary,
		MonthlyRevenue:  summary.TotalMonthly,
		YearlyRevenue:   summary.TotalYearly,
		PlatformCount:   earningPlatforms(summary),
		TopPlatform:     summary.TopPlatform,
		Diversification: summary.DiversificationScore,
		Region:          summary.Region.ID,
		Niche:           summary.Niche.ID,
	}
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.MonthlyDiffFromBase = scenario.MonthlyRevenue.Sub(base.MonthlyRevenue)
	scenario.MonthlyPctFromBase = percentChange(base.MonthlyRevenue, scenario.MonthlyRevenue)
	scenario.PlatformCountDiff = scenario.PlatformCount - base.PlatformCount
	return scenario
}

// earningPlatforms counts platforms with positive adjusted revenue.
func earningPlatforms(summary *domain.ScenarioSummary) int {
	count := 0
	for _, r := range summary.Results {
		if r.Adjusted.MonthlyRevenue.IsPositive() {
			count++
		}
	}
	return count
}

// percentChange is (to-from)/from*100, or zero when from is zero.
func percentChange(from, to decimal.Decimal) decimal.Decimal {
	if from.IsZero() {
		return decimal.Zero
	}
	return to.Sub(from).Div(from).Mul(decimal.NewFromInt(100))
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	base := compSet.BaseResult
	bestRevenue := base
	mostDiverse := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.MonthlyRevenue.GreaterThan(bestRevenue.MonthlyRevenue) {
			bestRevenue = alt
		}
		if alt.Diversification.GreaterThan(mostDiverse.Diversification) {
			mostDiverse = alt
		}
	}

	if bestRevenue != base {
		diff := bestRevenue.MonthlyRevenue.Sub(base.MonthlyRevenue)
		recommendations = append(recommendations,
			fmt.Sprintf("Best Revenue: %s earns $%s more per month than %s",
				bestRevenue.ScenarioName, diff.StringFixed(0), base.ScenarioName))
	}

	if mostDiverse != base {
		recommendations = append(recommendations,
			fmt.Sprintf("Most Diversified: %s spreads revenue across %d platforms (score %s vs %s)",
				mostDiverse.ScenarioName, mostDiverse.PlatformCount,
				mostDiverse.Diversification.StringFixed(2), base.Diversification.StringFixed(2)))
	}

	if bestRevenue == base && mostDiverse == base {
		recommendations = append(recommendations,
			fmt.Sprintf("Keep %s: no alternative earns more or spreads revenue further", base.ScenarioName))
	}

	return recommendations
}
