package calculation

import (
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ApplyMultipliers returns a new result with every revenue figure scaled by
// regionMultiplier*nicheMultiplier. Yearly revenue is scaled rather than recomputed so
// the two figures stay consistent. The input result is left untouched.
func ApplyMultipliers(result domain.CalculationResult, regionMultiplier, nicheMultiplier decimal.Decimal) domain.CalculationResult {
	return result.Scale(regionMultiplier.Mul(nicheMultiplier))
}

// ApplyRegionNiche applies the revenue multiplier of region and the rpm multiplier of niche.
func ApplyRegionNiche(result domain.CalculationResult, region domain.Region, niche domain.Niche) domain.CalculationResult {
	return ApplyMultipliers(result, region.RevenueMultiplier, niche.RPMMultiplier)
}

// ForPeriod converts the monthly revenue of a result into the given reporting window.
// It is meant for display only.
func ForPeriod(result domain.CalculationResult, period domain.TimePeriod) decimal.Decimal {
	return result.MonthlyRevenue.Mul(period.Multiplier)
}
