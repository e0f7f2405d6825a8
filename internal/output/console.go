package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/creatorcalc/internal/calculation"
	"github.com/rgehrsitz/creatorcalc/internal/domain"
)

// ConsoleFormatter renders a plain-text report for the terminal
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioResults) ([]byte, error) {
	var buf bytes.Buffer
	period := periodOf(results)
	rule := strings.Repeat("=", 80)
	row := "%-24s %16s %16s %16s\n"

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "CREATOR REVENUE REPORT")
	fmt.Fprintln(&buf, rule)
	if results.CreatorName != "" {
		fmt.Fprintf(&buf, "Creator: %s\n", results.CreatorName)
	}
	fmt.Fprintf(&buf, "Time Period: %s\n\n", period.Name)

	for i, s := range results.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, s.Name)
		fmt.Fprintln(&buf, strings.Repeat("-", 80))
		if s.Description != "" {
			fmt.Fprintln(&buf, s.Description)
		}
		fmt.Fprintf(&buf, "Region: %s | Niche: %s\n\n", s.Region.Name, s.Niche.Name)

		fmt.Fprintf(&buf, row, "Platform", "Monthly", "Yearly", period.Name)
		for _, r := range s.Results {
			fmt.Fprintf(&buf, row, truncate(r.Name, 24),
				FormatCurrency(r.Adjusted.MonthlyRevenue),
				FormatCurrency(r.Adjusted.YearlyRevenue),
				FormatCurrency(calculation.ForPeriod(r.Adjusted, period)))
			for _, item := range r.Adjusted.Breakdown {
				if item.Amount.IsZero() {
					continue
				}
				fmt.Fprintf(&buf, "  %-22s %16s\n", truncate(item.Label, 22), FormatCurrency(item.Amount))
			}
			if r.Adjusted.EngagementRate != nil {
				fmt.Fprintf(&buf, "  %-22s %16s\n", "Engagement Rate", FormatPercentage(*r.Adjusted.EngagementRate))
			}
		}
		fmt.Fprintln(&buf, strings.Repeat("-", 80))
		fmt.Fprintf(&buf, row, "TOTAL",
			FormatCurrency(s.TotalMonthly),
			FormatCurrency(s.TotalYearly),
			FormatCurrency(s.TotalMonthly.Mul(period.Multiplier)))
		fmt.Fprintln(&buf)
		if s.TopPlatform != "" {
			fmt.Fprintf(&buf, "Top Platform:    %s\n", platformName(s.TopPlatform))
		}
		fmt.Fprintf(&buf, "Diversification: %s\n\n", s.DiversificationScore.StringFixed(2))
	}

	if len(results.Scenarios) > 1 {
		best := bestScenario(results)
		fmt.Fprintln(&buf, "SUMMARY")
		fmt.Fprintln(&buf, strings.Repeat("-", 80))
		fmt.Fprintf(&buf, "Highest Revenue: %s (%s/month)\n\n", best.Name, FormatCurrency(best.TotalMonthly))
	}

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}

	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
