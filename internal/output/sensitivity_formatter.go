package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/registry"
)

// SensitivityFormatter defines a formatter for input sweeps
type SensitivityFormatter interface {
	FormatSensitivityAnalysis(analysis *domain.SensitivityAnalysis) (string, error)
	Name() string
}

// NewSensitivityFormatter returns the formatter for a format name, defaulting to console
func NewSensitivityFormatter(format string) SensitivityFormatter {
	switch strings.ToLower(format) {
	case "csv":
		return SensitivityCSVFormatter{}
	case "json":
		return SensitivityJSONFormatter{}
	default:
		return SensitivityConsoleFormatter{}
	}
}

// SensitivityConsoleFormatter formats sensitivity analysis output for console
type SensitivityConsoleFormatter struct{}

func (scf SensitivityConsoleFormatter) Name() string { return "console" }

func (scf SensitivityConsoleFormatter) FormatSensitivityAnalysis(analysis *domain.SensitivityAnalysis) (string, error) {
	if analysis == nil || len(analysis.Points) == 0 {
		return "", fmt.Errorf("no sweep points in analysis")
	}
	var buf bytes.Buffer

	label := analysis.Input
	if p, ok := registry.Platform(analysis.Platform); ok {
		if in, ok := p.Input(analysis.Input); ok {
			label = in.Label
		}
	}
	first, last := analysis.Points[0], analysis.Points[len(analysis.Points)-1]

	fmt.Fprintf(&buf, "SENSITIVITY ANALYSIS: %s %s\n", strings.ToUpper(platformName(analysis.Platform)), strings.ToUpper(label))
	fmt.Fprintln(&buf, strings.Repeat("=", 65))
	fmt.Fprintf(&buf, "Base Case: %s = %s (%s/month)\n", analysis.Input, analysis.BaseValue.String(), FormatCurrency(analysis.BaseMonthly))
	fmt.Fprintf(&buf, "Range: %s to %s (%d steps)\n\n", first.Value.String(), last.Value.String(), len(analysis.Points))

	fmt.Fprintf(&buf, "%-20s %-16s %-16s\n", analysis.Input, "Monthly", "vs Base")
	fmt.Fprintln(&buf, strings.Repeat("-", 65))
	for _, p := range analysis.Points {
		value := p.Value.StringFixed(2)
		if p.Value.Equal(analysis.BaseValue) {
			value += " ← BASE"
		}
		fmt.Fprintf(&buf, "%-20s %-16s %-16s\n", value, FormatCurrency(p.Monthly), FormatCurrency(p.Monthly.Sub(analysis.BaseMonthly)))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SENSITIVITY:")
	fmt.Fprintf(&buf, "  Revenue range: %s to %s per month\n", FormatCurrency(analysis.MinMonthly), FormatCurrency(analysis.MaxMonthly))
	if analysis.Elasticity.IsZero() {
		fmt.Fprintln(&buf, "  Elasticity: n/a at the base value")
	} else {
		fmt.Fprintf(&buf, "  Elasticity: %s (a 1%% change in %s moves revenue %s%%)\n",
			analysis.Elasticity.StringFixed(2), analysis.Input, analysis.Elasticity.StringFixed(2))
	}

	return buf.String(), nil
}

// SensitivityCSVFormatter formats sensitivity analysis output as CSV
type SensitivityCSVFormatter struct{}

func (scf SensitivityCSVFormatter) Name() string { return "csv" }

func (scf SensitivityCSVFormatter) FormatSensitivityAnalysis(analysis *domain.SensitivityAnalysis) (string, error) {
	if analysis == nil {
		return "", fmt.Errorf("analysis cannot be nil")
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Platform", "Input", "Value", "MonthlyRevenue", "DiffFromBase"}); err != nil {
		return "", err
	}
	for _, p := range analysis.Points {
		row := []string{
			analysis.Platform,
			analysis.Input,
			p.Value.String(),
			p.Monthly.StringFixed(2),
			p.Monthly.Sub(analysis.BaseMonthly).StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

// SensitivityJSONFormatter formats sensitivity analysis output as JSON
type SensitivityJSONFormatter struct{}

func (sjf SensitivityJSONFormatter) Name() string { return "json" }

func (sjf SensitivityJSONFormatter) FormatSensitivityAnalysis(analysis *domain.SensitivityAnalysis) (string, error) {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
