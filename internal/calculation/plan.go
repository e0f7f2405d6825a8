package calculation

import (
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Plan horizon bounds, in months
const (
	MinPlanMonths     = 1
	MaxPlanMonths     = 120
	DefaultPlanMonths = 12
)

// ProjectPlan projects a creator business month by month. Revenue compounds at the
// monthly growth rate, tax is charged only on positive profit, and the cumulative
// balance starts at minus the upfront investment.
func ProjectPlan(in domain.PlanInput) *domain.PlanProjection {
	months := in.Months
	switch {
	case months == 0:
		months = DefaultPlanMonths
	case months < MinPlanMonths:
		months = MinPlanMonths
	case months > MaxPlanMonths:
		months = MaxPlanMonths
	}
	in.Months = months

	growth := one.Add(nonNegative(in.MonthlyGrowthPercent).Div(hundred))
	taxRate := nonNegative(in.TaxRatePercent).Div(hundred)
	expenses := nonNegative(in.MonthlyExpenses)

	projection := &domain.PlanProjection{
		Input:  in,
		Months: make([]domain.PlanMonth, 0, months),
	}

	revenue := nonNegative(in.StartingMonthlyRevenue)
	cumulative := nonNegative(in.UpfrontInvestment).Neg()
	for m := 1; m <= months; m++ {
		if m > 1 {
			revenue = revenue.Mul(growth)
		}
		profit := revenue.Sub(expenses)
		tax := decimal.Zero
		if profit.IsPositive() {
			tax = profit.Mul(taxRate)
		}
		net := profit.Sub(tax)
		cumulative = cumulative.Add(net)

		projection.Months = append(projection.Months, domain.PlanMonth{
			Month:      m,
			Revenue:    revenue,
			Expenses:   expenses,
			Profit:     profit,
			Tax:        tax,
			Net:        net,
			Cumulative: cumulative,
		})
		projection.TotalRevenue = projection.TotalRevenue.Add(revenue)
		projection.TotalExpenses = projection.TotalExpenses.Add(expenses)
		projection.TotalTax = projection.TotalTax.Add(tax)
		projection.TotalNet = projection.TotalNet.Add(net)

		if projection.BreakEvenMonth == 0 && !cumulative.IsNegative() {
			projection.BreakEvenMonth = m
		}
	}
	return projection
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
