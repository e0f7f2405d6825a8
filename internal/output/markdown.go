package output

import (
	"bytes"
	"fmt"

	"github.com/rgehrsitz/creatorcalc/internal/calculation"
	"github.com/rgehrsitz/creatorcalc/internal/domain"
)

// MarkdownFormatter renders the report as a markdown document with one table per scenario
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(results *domain.ScenarioResults) ([]byte, error) {
	var buf bytes.Buffer
	period := periodOf(results)

	fmt.Fprintln(&buf, "# Creator Revenue Report")
	fmt.Fprintln(&buf)
	if results.CreatorName != "" {
		fmt.Fprintf(&buf, "**Creator:** %s  \n", results.CreatorName)
	}
	fmt.Fprintf(&buf, "**Time period:** %s\n\n", period.Name)

	for _, s := range results.Scenarios {
		fmt.Fprintf(&buf, "## %s\n\n", s.Name)
		if s.Description != "" {
			fmt.Fprintf(&buf, "%s\n\n", s.Description)
		}
		fmt.Fprintf(&buf, "**Region:** %s | **Niche:** %s\n\n", s.Region.Name, s.Niche.Name)

		fmt.Fprintf(&buf, "| Platform | Monthly | Yearly | %s |\n", period.Name)
		fmt.Fprintln(&buf, "|---|---:|---:|---:|")
		for _, r := range s.Results {
			fmt.Fprintf(&buf, "| %s | %s | %s | %s |\n", r.Name,
				FormatCurrency(r.Adjusted.MonthlyRevenue),
				FormatCurrency(r.Adjusted.YearlyRevenue),
				FormatCurrency(calculation.ForPeriod(r.Adjusted, period)))
		}
		fmt.Fprintf(&buf, "| **Total** | **%s** | **%s** | **%s** |\n\n",
			FormatCurrency(s.TotalMonthly),
			FormatCurrency(s.TotalYearly),
			FormatCurrency(s.TotalMonthly.Mul(period.Multiplier)))

		if s.TopPlatform != "" {
			fmt.Fprintf(&buf, "**Top platform:** %s  \n", platformName(s.TopPlatform))
		}
		fmt.Fprintf(&buf, "**Diversification:** %s\n\n", s.DiversificationScore.StringFixed(2))
	}

	if len(results.Scenarios) > 1 {
		best := bestScenario(results)
		fmt.Fprintf(&buf, "## Summary\n\nHighest revenue: **%s** at %s per month.\n\n", best.Name, FormatCurrency(best.TotalMonthly))
	}

	fmt.Fprintln(&buf, "## Assumptions")
	fmt.Fprintln(&buf)
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "- %s\n", a)
	}

	return buf.Bytes(), nil
}
