package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/rgehrsitz/creatorcalc/internal/calculation"
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func buildTestResults(t *testing.T) *domain.ScenarioResults {
	t.Helper()
	youtube := domain.PlatformEntry{
		Platform: "youtube",
		Inputs:   domain.InputValues{"subscribers": 10000, "monthlyViews": 500000, "cpm": 4},
	}
	config := &domain.Configuration{
		CreatorName: "Ava",
		Region:      "us",
		Niche:       "general",
		TimePeriod:  "yearly",
		Scenarios: []domain.Scenario{
			{Name: "A", Description: "YouTube only", Platforms: []domain.PlatformEntry{youtube}},
			{Name: "B", Platforms: []domain.PlatformEntry{
				youtube,
				{Platform: "patreon", Inputs: domain.InputValues{"patrons": 100, "avgPledge": 5}},
			}},
		},
	}
	results, err := calculation.NewCalculationEngine().RunScenarios(config)
	require.NoError(t, err)
	return results
}

func TestFormatterFunc(t *testing.T) {
	called := false
	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(results *domain.ScenarioResults) ([]byte, error) {
			called = true
			return []byte("test output"), nil
		},
	}

	out, err := formatter.Format(&domain.ScenarioResults{})
	assert.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "test-formatter", formatter.Name())
	assert.Equal(t, []byte("test output"), out)
}

func TestWriteFormatted(t *testing.T) {
	t.Chdir(t.TempDir())

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(results *domain.ScenarioResults) ([]byte, error) {
			return []byte("test output content"), nil
		},
	}

	filename, err := WriteFormatted(formatter, &domain.ScenarioResults{}, "txt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "creatorcalc_report_"))
	assert.True(t, strings.HasSuffix(filename, ".txt"))

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "test output content", string(content))
}

func TestWriteFormatted_FormatterError(t *testing.T) {
	formatter := FormatterFunc{
		ID: "error-formatter",
		F: func(results *domain.ScenarioResults) ([]byte, error) {
			return nil, fmt.Errorf("formatter error")
		},
	}

	filename, err := WriteFormatted(formatter, &domain.ScenarioResults{}, "txt")
	assert.ErrorContains(t, err, "formatter error")
	assert.Empty(t, filename)
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "json", "yaml", "markdown", "html"}, AvailableFormatterNames())
	assert.Equal(t, []string{"md", "table", "text", "yml"}, AvailableFormatAliases())
}

func TestGetFormatterByName(t *testing.T) {
	tests := map[string]string{
		"console": "console",
		"TEXT":    "console",
		" md ":    "markdown",
		"yml":     "yaml",
		"html":    "html",
	}
	for name, want := range tests {
		formatter := GetFormatterByName(name)
		require.NotNil(t, formatter, name)
		assert.Equal(t, want, formatter.Name())
	}

	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestGenerateReport(t *testing.T) {
	results := buildTestResults(t)

	var buf bytes.Buffer
	require.NoError(t, GenerateReport(&buf, results, "console"))
	assert.Contains(t, buf.String(), "CREATOR REVENUE REPORT")

	err := GenerateReport(&buf, results, "pdf")
	assert.ErrorContains(t, err, "unsupported format: pdf")
}

func TestConsoleFormatter_Format(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestResults(t))
	require.NoError(t, err)

	content := string(out)
	for _, want := range []string{
		"CREATOR REVENUE REPORT",
		"Creator: Ava",
		"Time Period: Yearly",
		"SCENARIO 1: A",
		"YouTube only",
		"Region: United States | Niche: General",
		"SCENARIO 2: B",
		"$14400.00",
		"Top Platform:    YouTube",
		"Highest Revenue: B ($1650.00/month)",
		"KEY ASSUMPTIONS:",
	} {
		assert.Contains(t, content, want)
	}
}

func TestConsoleFormatter_EmptyScenarios(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(&domain.ScenarioResults{})
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "Time Period: Monthly", "results without a period default to monthly")
	assert.NotContains(t, content, "SCENARIO")
	assert.NotContains(t, content, "Highest Revenue")
}

func TestCSVFormatter_Format(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestResults(t))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)

	assert.Equal(t, "Scenario", records[0][0])
	assert.Equal(t, []string{"A", "us", "general", "youtube", "YouTube", "1200.00", "14400.00", "14400.00", "yearly"}, records[1])
	assert.Equal(t, "TOTAL", records[2][3])
	assert.Equal(t, "patreon", records[4][3])
	assert.Equal(t, []string{"B", "us", "general", "TOTAL", "", "1650.00", "19800.00", "19800.00", "yearly"}, records[5])
}

func TestJSONFormatter_Format(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestResults(t))
	require.NoError(t, err)

	var decoded struct {
		CreatorName string `json:"creatorName"`
		Scenarios   []struct {
			Name         string `json:"name"`
			TotalMonthly string `json:"totalMonthly"`
		} `json:"scenarios"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Ava", decoded.CreatorName)
	require.Len(t, decoded.Scenarios, 2)
	assert.Equal(t, "B", decoded.Scenarios[1].Name)
	assert.Equal(t, "1650", decoded.Scenarios[1].TotalMonthly)
}

func TestYAMLFormatter_Format(t *testing.T) {
	out, err := YAMLFormatter{}.Format(buildTestResults(t))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "Ava", decoded["creator_name"])
	assert.Len(t, decoded["scenarios"], 2)
}

func TestMarkdownFormatter_Format(t *testing.T) {
	out, err := MarkdownFormatter{}.Format(buildTestResults(t))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "# Creator Revenue Report")
	assert.Contains(t, content, "| Platform | Monthly | Yearly | Yearly |")
	assert.Contains(t, content, "| YouTube | $1200.00 | $14400.00 | $14400.00 |")
	assert.Contains(t, content, "| **Total** | **$1650.00** | **$19800.00** | **$19800.00** |")
	assert.Contains(t, content, "Highest revenue: **B** at $1650.00 per month.")
}

func TestHTMLFormatter_Format(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestResults(t))
	require.NoError(t, err)

	content := string(out)
	assert.True(t, strings.HasPrefix(content, "<!DOCTYPE html>"))
	assert.Contains(t, content, "<title>Ava - Creator Revenue Report</title>")
	assert.Contains(t, content, "<h1>Creator Revenue Report</h1>")
	assert.Contains(t, content, "<h2>B</h2>")
	assert.Contains(t, content, "<table>")
	assert.Contains(t, content, "<td>YouTube</td>")
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1200.50", FormatCurrency(decimal.RequireFromString("1200.5")))
	assert.Equal(t, "-$45.00", FormatCurrency(decimal.NewFromInt(-45)))
	assert.Equal(t, "12.35%", FormatPercentage(decimal.RequireFromString("12.345")))
}
