package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
)

// PlanFormatter defines a formatter for business plan projections
type PlanFormatter interface {
	FormatPlan(plan *domain.PlanProjection) (string, error)
	Name() string
}

// NewPlanFormatter creates a plan formatter based on the format name
func NewPlanFormatter(format string) PlanFormatter {
	switch strings.ToLower(format) {
	case "json":
		return &PlanJSONFormatter{}
	default:
		return &PlanTableFormatter{}
	}
}

// PlanTableFormatter formats plans as a month-by-month table
type PlanTableFormatter struct{}

func (f *PlanTableFormatter) Name() string {
	return "table"
}

func (f *PlanTableFormatter) FormatPlan(plan *domain.PlanProjection) (string, error) {
	if plan == nil {
		return "", fmt.Errorf("plan cannot be nil")
	}

	var output strings.Builder
	in := plan.Input
	row := "%-6s %14s %14s %14s %12s %14s %16s\n"

	output.WriteString("CREATOR BUSINESS PLAN\n")
	output.WriteString("=================================================================\n")
	output.WriteString(fmt.Sprintf("Starting Revenue:   %s/month\n", FormatCurrency(in.StartingMonthlyRevenue)))
	output.WriteString(fmt.Sprintf("Monthly Growth:     %s\n", FormatPercentage(in.MonthlyGrowthPercent)))
	output.WriteString(fmt.Sprintf("Monthly Expenses:   %s\n", FormatCurrency(in.MonthlyExpenses)))
	output.WriteString(fmt.Sprintf("Tax Rate:           %s\n", FormatPercentage(in.TaxRatePercent)))
	output.WriteString(fmt.Sprintf("Upfront Investment: %s\n\n", FormatCurrency(in.UpfrontInvestment)))

	output.WriteString(fmt.Sprintf(row, "Month", "Revenue", "Expenses", "Profit", "Tax", "Net", "Cumulative"))
	output.WriteString(strings.Repeat("-", 96) + "\n")
	for _, m := range plan.Months {
		output.WriteString(fmt.Sprintf(row, fmt.Sprint(m.Month),
			FormatCurrency(m.Revenue), FormatCurrency(m.Expenses), FormatCurrency(m.Profit),
			FormatCurrency(m.Tax), FormatCurrency(m.Net), FormatCurrency(m.Cumulative)))
	}
	output.WriteString(strings.Repeat("-", 96) + "\n")
	output.WriteString(fmt.Sprintf(row, "TOTAL",
		FormatCurrency(plan.TotalRevenue), FormatCurrency(plan.TotalExpenses), "",
		FormatCurrency(plan.TotalTax), FormatCurrency(plan.TotalNet), ""))
	output.WriteString("\n")

	if plan.BreakEvenMonth > 0 {
		output.WriteString(fmt.Sprintf("Break-even: month %d\n", plan.BreakEvenMonth))
	} else {
		output.WriteString(fmt.Sprintf("Break-even: not reached within %d months\n", len(plan.Months)))
	}

	return output.String(), nil
}

// PlanJSONFormatter formats plans as JSON
type PlanJSONFormatter struct{}

func (f *PlanJSONFormatter) Name() string {
	return "json"
}

func (f *PlanJSONFormatter) FormatPlan(plan *domain.PlanProjection) (string, error) {
	if plan == nil {
		return "", fmt.Errorf("plan cannot be nil")
	}
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
