package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

const ruleWidth = 80

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("CREATOR REVENUE SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 28
	numWidth := 12

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Monthly",
		numWidth, "Yearly",
		numWidth, "Platforms",
		numWidth, "Top"))
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Description))
			}
			sb.WriteString(fmt.Sprintf("  Monthly Revenue:  %s$%s (%s%%)\n",
				tf.deltaSymbol(alt.MonthlyDiffFromBase),
				tf.formatDecimal(alt.MonthlyDiffFromBase.Abs()),
				alt.MonthlyPctFromBase.StringFixed(1)))
			if alt.PlatformCountDiff != 0 {
				sb.WriteString(fmt.Sprintf("  Platforms:        %+d\n", alt.PlatformCountDiff))
			}
			sb.WriteString(fmt.Sprintf("  Diversification:  %s\n", alt.Diversification.StringFixed(2)))
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("* %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatSwitch renders a platform switch comparison
func (tf *TableFormatter) FormatSwitch(result *SwitchResult) string {
	var sb strings.Builder

	sb.WriteString("PLATFORM SWITCH\n")
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	sb.WriteString(fmt.Sprintf("%s -> %s (audience retention %s%%)\n\n",
		result.From.Name, result.To.Name, result.Retention.Mul(decimal.NewFromInt(100)).StringFixed(0)))

	sb.WriteString(fmt.Sprintf("%-20s %14s %14s\n", "", result.From.Name, result.To.Name))
	sb.WriteString(strings.Repeat("-", 50) + "\n")
	sb.WriteString(fmt.Sprintf("%-20s %14s %14s\n", "Monthly",
		"$"+result.From.Adjusted.MonthlyRevenue.StringFixed(2),
		"$"+result.To.Adjusted.MonthlyRevenue.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("%-20s %14s %14s\n", "Yearly",
		"$"+result.From.Adjusted.YearlyRevenue.StringFixed(2),
		"$"+result.To.Adjusted.YearlyRevenue.StringFixed(2)))
	sb.WriteString(strings.Repeat("-", 50) + "\n")

	if len(result.Carried) > 0 {
		sb.WriteString(fmt.Sprintf("Carried over: %s\n", strings.Join(result.Carried, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Change: %s$%s/month (%s%%)\n",
		tf.deltaSymbol(result.MonthlyDiff), result.MonthlyDiff.Abs().StringFixed(2), result.PctChange.StringFixed(1)))
	sb.WriteString(fmt.Sprintf("Verdict: %s\n", strings.ToUpper(result.Verdict)))

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	top := result.TopPlatform
	if top == "" {
		top = "-"
	}

	return fmt.Sprintf("%-*s %*s %*s %*d %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, "$"+tf.formatDecimal(result.MonthlyRevenue),
		numWidth, "$"+tf.formatDecimal(result.YearlyRevenue),
		numWidth, result.PlatformCount,
		numWidth, tf.truncate(top, numWidth))
}

// formatDecimal formats a decimal for display (K and M suffixes)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		return d.Div(decimal.NewFromInt(1000000)).StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		return d.Div(decimal.NewFromInt(1000)).StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns + for gains, - for losses and a space for no change
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if alt.MonthlyDiffFromBase.IsPositive() {
			change = fmt.Sprintf("+$%s/mo", tf.formatDecimal(alt.MonthlyDiffFromBase))
		} else if alt.MonthlyDiffFromBase.IsNegative() {
			change = fmt.Sprintf("-$%s/mo", tf.formatDecimal(alt.MonthlyDiffFromBase.Abs()))
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}

	return sb.String()
}
