package calculation

import (
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/registry"
	"github.com/shopspring/decimal"
)

// SimulateMix estimates revenue when effort is split across platforms. Each platform
// earns its full-effort revenue times its share of effort. Allocations that add up to
// more than 100% are scaled down proportionally.
func (ce *CalculationEngine) SimulateMix(in domain.MixInput) *domain.MixResult {
	result := &domain.MixResult{
		Contributions: make([]domain.MixContribution, 0, len(in.Entries)),
		TotalMonthly:  decimal.Zero,
	}

	totalAllocation := decimal.Zero
	for _, entry := range in.Entries {
		totalAllocation = totalAllocation.Add(allocation(entry))
	}
	scale := one
	if totalAllocation.GreaterThan(hundred) {
		scale = hundred.Div(totalAllocation)
		result.Normalized = true
	}

	region := registry.Region(in.Region)
	niche := registry.Niche(in.Niche)
	best := decimal.Zero
	for _, entry := range in.Entries {
		calculated := ce.Calculate(Request{
			Platform: entry.Platform,
			Inputs:   entry.Inputs,
			Region:   region.ID,
			Niche:    niche.ID,
		})
		full := calculated.Adjusted.MonthlyRevenue
		share := allocation(entry).Mul(scale).Div(hundred)
		monthly := full.Mul(share)

		result.Contributions = append(result.Contributions, domain.MixContribution{
			Platform:          calculated.Platform,
			Allocation:        share,
			FullEffortMonthly: full,
			Monthly:           monthly,
		})
		result.TotalMonthly = result.TotalMonthly.Add(monthly)
		if monthly.GreaterThan(best) {
			best = monthly
			result.TopPlatform = calculated.Platform
		}
	}
	result.TotalYearly = result.TotalMonthly.Mul(domain.MonthsPerYear)

	amounts := make([]decimal.Decimal, len(result.Contributions))
	for i := range result.Contributions {
		c := &result.Contributions[i]
		amounts[i] = c.Monthly
		if result.TotalMonthly.IsPositive() {
			c.Share = c.Monthly.Div(result.TotalMonthly)
		}
	}
	result.DiversificationScore = DiversificationScore(amounts)
	return result
}

func allocation(entry domain.MixEntry) decimal.Decimal {
	return domain.InputValues{"allocation": entry.AllocationPercent}.Decimal("allocation")
}
