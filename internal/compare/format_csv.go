package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Region",
		"Niche",
		"Monthly Revenue",
		"Yearly Revenue",
		"Platforms",
		"Top Platform",
		"Diversification",
		"Monthly Diff from Base",
		"Monthly % Change",
		"Platform Count Diff",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// FormatSwitch writes a two-row CSV for a platform switch
func (cf *CSVFormatter) FormatSwitch(result *SwitchResult) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	rows := [][]string{
		{"Side", "Platform", "Monthly Revenue", "Yearly Revenue", "Monthly Diff", "% Change", "Verdict"},
		{"from", result.From.Platform, result.From.Adjusted.MonthlyRevenue.StringFixed(2), result.From.Adjusted.YearlyRevenue.StringFixed(2), "", "", ""},
		{"to", result.To.Platform, result.To.Adjusted.MonthlyRevenue.StringFixed(2), result.To.Adjusted.YearlyRevenue.StringFixed(2),
			result.MonthlyDiff.StringFixed(2), result.PctChange.StringFixed(2), result.Verdict},
	}
	if err := writer.WriteAll(rows); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.Region,
		result.Niche,
		result.MonthlyRevenue.StringFixed(2),
		result.YearlyRevenue.StringFixed(2),
		strconv.Itoa(result.PlatformCount),
		result.TopPlatform,
		result.Diversification.StringFixed(4),
		result.MonthlyDiffFromBase.StringFixed(2),
		result.MonthlyPctFromBase.StringFixed(2),
		strconv.Itoa(result.PlatformCountDiff),
	}
}
