package compare

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/shopspring/decimal"
)

func sampleSet() *ComparisonSet {
	return &ComparisonSet{
		BaseScenarioName: "Base Scenario",
		ConfigPath:       "/path/to/creator.yaml",
		BaseResult: &ComparisonResult{
			ScenarioName:   "Base Scenario",
			MonthlyRevenue: decimal.NewFromInt(1200),
			YearlyRevenue:  decimal.NewFromInt(14400),
			PlatformCount:  1,
			TopPlatform:    "youtube",
			Region:         "us",
			Niche:          "general",
		},
		AlternativeResults: []ComparisonResult{
			{
				ScenarioName:        "Alternative 1",
				Description:         "Launch a Patreon",
				MonthlyRevenue:      decimal.NewFromInt(1650),
				YearlyRevenue:       decimal.NewFromInt(19800),
				PlatformCount:       2,
				TopPlatform:         "youtube",
				Diversification:     decimal.NewFromFloat(0.3967),
				MonthlyDiffFromBase: decimal.NewFromInt(450),
				MonthlyPctFromBase:  decimal.NewFromFloat(37.5),
				PlatformCountDiff:   1,
				Region:              "us",
				Niche:               "general",
			},
		},
		Recommendations: []string{
			"Best Revenue: Alternative 1 earns $450 more per month than Base Scenario",
		},
	}
}

func TestTableFormatter_Format(t *testing.T) {
	formatter := &TableFormatter{}

	result := formatter.Format(sampleSet())

	for _, want := range []string{
		"CREATOR REVENUE SCENARIO COMPARISON",
		"Base Scenario: Base Scenario",
		"Configuration: /path/to/creator.yaml",
		"Base Scenario (base)",
		"Alternative 1",
		"$1.2K",
		"Monthly Revenue:  +$450 (37.5%)",
		"Platforms:        +1",
		"RECOMMENDATIONS",
		"* Best Revenue: Alternative 1",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected %q in output:\n%s", want, result)
		}
	}
}

func TestTableFormatter_Format_EmptyAlternatives(t *testing.T) {
	formatter := &TableFormatter{}

	set := sampleSet()
	set.ConfigPath = ""
	set.AlternativeResults = nil
	set.Recommendations = nil

	result := formatter.Format(set)

	if !strings.Contains(result, "Base Scenario (base)") {
		t.Error("Expected base scenario in table")
	}
	if strings.Contains(result, "COMPARISON TO BASE") {
		t.Error("Should not have a comparison section without alternatives")
	}
	if strings.Contains(result, "Configuration:") {
		t.Error("Should not print an empty configuration path")
	}
}

func TestTableFormatter_formatRow(t *testing.T) {
	formatter := &TableFormatter{}

	result := &ComparisonResult{
		ScenarioName:   "A Very Long Scenario Name That Overflows",
		MonthlyRevenue: decimal.NewFromInt(2_500_000),
		YearlyRevenue:  decimal.NewFromInt(30_000_000),
		PlatformCount:  3,
	}

	row := formatter.formatRow(result, 20, 12, false)
	if !strings.Contains(row, "A Very Long Scena...") {
		t.Errorf("Expected truncated name, got %q", row)
	}
	if !strings.Contains(row, "$2.50M") || !strings.Contains(row, "$30.00M") {
		t.Errorf("Expected millions formatting, got %q", row)
	}
	if !strings.Contains(row, " - ") && !strings.HasSuffix(strings.TrimSpace(row), "-") {
		t.Errorf("Expected placeholder for missing top platform, got %q", row)
	}
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	formatter := &TableFormatter{}

	set := sampleSet()
	set.AlternativeResults = append(set.AlternativeResults, ComparisonResult{
		ScenarioName:        "Alternative 2",
		MonthlyDiffFromBase: decimal.NewFromInt(-2000),
	}, ComparisonResult{ScenarioName: "Alternative 3"})

	got := formatter.FormatCompact(set)
	want := "Base: Base Scenario | Alternative 1: +$450/mo | Alternative 2: -$2.0K/mo | Alternative 3: ="
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func sampleSwitch() *SwitchResult {
	return &SwitchResult{
		From: domain.PlatformResult{
			Platform: "youtube", Name: "YouTube",
			Adjusted: domain.NewResult(domain.BreakdownItem{Label: "adRevenue", Amount: decimal.NewFromInt(1200)}),
		},
		To: domain.PlatformResult{
			Platform: "twitch", Name: "Twitch",
			Adjusted: domain.NewResult(domain.BreakdownItem{Label: "subRevenue", Amount: decimal.NewFromInt(900)}),
		},
		Carried:     []string{"subscribers"},
		Retention:   decimal.NewFromFloat(0.6),
		MonthlyDiff: decimal.NewFromInt(-300),
		PctChange:   decimal.NewFromInt(-25),
		Verdict:     VerdictStay,
	}
}

func TestTableFormatter_FormatSwitch(t *testing.T) {
	formatter := &TableFormatter{}

	result := formatter.FormatSwitch(sampleSwitch())

	for _, want := range []string{
		"YouTube -> Twitch (audience retention 60%)",
		"$1200.00",
		"$900.00",
		"Carried over: subscribers",
		"Change: -$300.00/month (-25.0%)",
		"Verdict: STAY",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected %q in output:\n%s", want, result)
		}
	}
}

func TestCSVFormatter_Format(t *testing.T) {
	formatter := &CSVFormatter{}

	result, err := formatter.Format(sampleSet())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(result)).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d", len(records))
	}
	if records[0][0] != "Scenario" || records[1][1] != "base" || records[2][1] != "alternative" {
		t.Errorf("Unexpected row layout: %v", records)
	}
	if records[2][4] != "1650.00" || records[2][9] != "450.00" || records[2][10] != "37.50" {
		t.Errorf("Unexpected alternative values: %v", records[2])
	}
}

func TestCSVFormatter_FormatSwitch(t *testing.T) {
	formatter := &CSVFormatter{}

	result, err := formatter.FormatSwitch(sampleSwitch())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(result)).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}
	if len(records) != 3 || records[2][1] != "twitch" || records[2][6] != VerdictStay {
		t.Errorf("Unexpected switch CSV: %v", records)
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		formatter := &JSONFormatter{Pretty: pretty}

		result, err := formatter.Format(sampleSet())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if pretty != strings.Contains(result, "\n  ") {
			t.Errorf("Pretty=%v produced unexpected indentation", pretty)
		}

		var decoded map[string]any
		if err := json.Unmarshal([]byte(result), &decoded); err != nil {
			t.Fatalf("Output is not valid JSON: %v", err)
		}
		for _, key := range []string{"baseScenarioName", "baseResult", "alternativeResults", "recommendations"} {
			if _, ok := decoded[key]; !ok {
				t.Errorf("Expected %s field in JSON", key)
			}
		}
	}
}

func TestJSONFormatter_FormatSwitch(t *testing.T) {
	formatter := &JSONFormatter{Pretty: true}

	result, err := formatter.FormatSwitch(sampleSwitch())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(result, `"verdict": "stay"`) {
		t.Errorf("Expected verdict in JSON, got %s", result)
	}
}
