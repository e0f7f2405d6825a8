package domain

import (
	"github.com/shopspring/decimal"
)

// MonthsPerYear converts monthly revenue to yearly revenue.
var MonthsPerYear = decimal.NewFromInt(12)

// BreakdownItem is one labelled revenue stream inside a CalculationResult
type BreakdownItem struct {
	Label  string          `yaml:"label" json:"label"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// CalculationResult is the output of a single platform calculation.
// Results are value objects: every operation that adjusts a result returns a new one.
type CalculationResult struct {
	MonthlyRevenue decimal.Decimal  `yaml:"monthly_revenue" json:"monthlyRevenue"`
	YearlyRevenue  decimal.Decimal  `yaml:"yearly_revenue" json:"yearlyRevenue"`
	EngagementRate *decimal.Decimal `yaml:"engagement_rate,omitempty" json:"engagementRate,omitempty"`
	Breakdown      []BreakdownItem  `yaml:"breakdown,omitempty" json:"breakdown,omitempty"`
}

// NewResult builds a result whose monthly revenue is the sum of the given streams
// and whose yearly revenue is twelve times that.
func NewResult(items ...BreakdownItem) CalculationResult {
	monthly := decimal.Zero
	for _, item := range items {
		monthly = monthly.Add(item.Amount)
	}
	return CalculationResult{
		MonthlyRevenue: monthly,
		YearlyRevenue:  monthly.Mul(MonthsPerYear),
		Breakdown:      items,
	}
}

// ZeroResult returns the result used for unknown platforms and empty input.
func ZeroResult() CalculationResult {
	return CalculationResult{
		MonthlyRevenue: decimal.Zero,
		YearlyRevenue:  decimal.Zero,
	}
}

// WithEngagementRate returns a copy of the result carrying the given engagement rate (percent)
func (r CalculationResult) WithEngagementRate(rate decimal.Decimal) CalculationResult {
	r.Breakdown = r.CopyBreakdown()
	r.EngagementRate = &rate
	return r
}

// CopyBreakdown returns a copy of the breakdown slice so callers can modify it freely.
func (r CalculationResult) CopyBreakdown() []BreakdownItem {
	if r.Breakdown == nil {
		return nil
	}
	out := make([]BreakdownItem, len(r.Breakdown))
	copy(out, r.Breakdown)
	return out
}

// Amount returns the breakdown amount for label, or zero when the stream is absent.
func (r CalculationResult) Amount(label string) decimal.Decimal {
	for _, item := range r.Breakdown {
		if item.Label == label {
			return item.Amount
		}
	}
	return decimal.Zero
}

// Scale returns a new result with every revenue figure multiplied by factor.
// The engagement rate is not a revenue figure and is carried over unchanged.
func (r CalculationResult) Scale(factor decimal.Decimal) CalculationResult {
	out := CalculationResult{
		MonthlyRevenue: r.MonthlyRevenue.Mul(factor),
		YearlyRevenue:  r.YearlyRevenue.Mul(factor),
	}
	if r.EngagementRate != nil {
		rate := *r.EngagementRate
		out.EngagementRate = &rate
	}
	if r.Breakdown != nil {
		out.Breakdown = make([]BreakdownItem, len(r.Breakdown))
		for i, item := range r.Breakdown {
			out.Breakdown[i] = BreakdownItem{Label: item.Label, Amount: item.Amount.Mul(factor)}
		}
	}
	return out
}

// IsZero reports whether the result carries no revenue at all.
func (r CalculationResult) IsZero() bool {
	return r.MonthlyRevenue.IsZero() && r.YearlyRevenue.IsZero()
}
