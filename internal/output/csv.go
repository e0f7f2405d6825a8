package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rgehrsitz/creatorcalc/internal/calculation"
	"github.com/rgehrsitz/creatorcalc/internal/domain"
)

// CSVFormatter writes one row per platform per scenario plus a TOTAL row per scenario.
// Scenarios are sorted by name.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results *domain.ScenarioResults) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	period := periodOf(results)

	header := []string{"Scenario", "Region", "Niche", "Platform", "Name", "MonthlyRevenue", "YearlyRevenue", "PeriodRevenue", "Period"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.SliceStable(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		for _, r := range sc.Results {
			row := []string{
				sc.Name,
				sc.Region.ID,
				sc.Niche.ID,
				r.Platform,
				r.Name,
				r.Adjusted.MonthlyRevenue.StringFixed(2),
				r.Adjusted.YearlyRevenue.StringFixed(2),
				calculation.ForPeriod(r.Adjusted, period).StringFixed(2),
				period.ID,
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
		total := []string{
			sc.Name,
			sc.Region.ID,
			sc.Niche.ID,
			"TOTAL",
			"",
			sc.TotalMonthly.StringFixed(2),
			sc.TotalYearly.StringFixed(2),
			sc.TotalMonthly.Mul(period.Multiplier).StringFixed(2),
			period.ID,
		}
		if err := w.Write(total); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
