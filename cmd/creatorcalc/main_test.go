package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioYAML = `creator_name: Test Creator
region: us
niche: general
scenarios:
  - name: base
    platforms:
      - platform: patreon
        inputs:
          patrons: 100
          avgPledge: 5
  - name: bigger
    platforms:
      - platform: patreon
        inputs:
          patrons: 200
          avgPledge: 5
`

const profileYAML = `creator_name: Jordan Lee
niche: travel
platforms:
  - platform: instagram
    handle: "@jordantravels"
    followers: 85000
    avg_views: 22000
    engagement_rate: 4.2
`

const mixYAML = `entries:
  - platform: patreon
    allocation_percent: 50
    inputs: {patrons: 100, avgPledge: 5}
  - platform: newsletter
    allocation_percent: 50
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// run executes the CLI with args and returns what it wrote to stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "creatorcalc", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestRootCommand_Help(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "creatorcalc")
	assert.Contains(t, out, "calculate")
}

func TestCommandSubcommands(t *testing.T) {
	expected := []string{
		"calculate", "validate", "platforms", "regions", "niches",
		"compare", "switch", "goal", "sponsorship", "ratecard",
		"mediakit", "pitch", "plan", "mix", "sensitivity", "serve", "version",
	}
	registered := map[string]bool{}
	for _, c := range newRootCmd().Commands() {
		registered[c.Name()] = true
	}
	for _, name := range expected {
		assert.True(t, registered[name], "command %s should be registered", name)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "creatorcalc dev")
}

func TestCalculate_Platform(t *testing.T) {
	out, err := run(t, "calculate", "--platform", "patreon")
	require.NoError(t, err)
	assert.Contains(t, out, "Patreon")
	assert.Contains(t, out, "$450.00")
	assert.Contains(t, out, "$5400.00")
}

func TestCalculate_PlatformWithInputsAndPeriod(t *testing.T) {
	out, err := run(t, "calculate", "-p", "patreon", "--inputs", "patrons=200", "--period", "weekly")
	require.NoError(t, err)
	assert.Contains(t, out, "$900.00")
	assert.Contains(t, out, "Weekly revenue")
}

func TestCalculate_ScenarioFile(t *testing.T) {
	path := writeFile(t, "scenarios.yaml", scenarioYAML)

	out, err := run(t, "calculate", path, "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "Test Creator")
	assert.Contains(t, out, "bigger")
}

func TestCalculate_Save(t *testing.T) {
	path := writeFile(t, "scenarios.yaml", scenarioYAML)
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := run(t, "calculate", path, "-f", "csv", "--save")
	require.NoError(t, err)
	assert.Contains(t, out, "Report saved to creatorcalc_report_")

	matches, err := filepath.Glob(filepath.Join(dir, "creatorcalc_report_*.csv"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestCalculate_Errors(t *testing.T) {
	path := writeFile(t, "scenarios.yaml", scenarioYAML)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no source", []string{"calculate"}, "a scenario file or --platform is required"},
		{"both sources", []string{"calculate", path, "-p", "patreon"}, "not both"},
		{"unknown platform", []string{"calculate", "-p", "myspace"}, "unknown platform"},
		{"unknown input", []string{"calculate", "-p", "patreon", "-i", "fans=3"}, `no input "fans"`},
		{"bad number", []string{"calculate", "-p", "patreon", "-i", "patrons=lots"}, "is not a number"},
		{"negative input", []string{"calculate", "-p", "patreon", "-i", "patrons=-1"}, "cannot be negative"},
		{"unknown region", []string{"calculate", "-p", "patreon", "--region", "mars"}, "unknown region"},
		{"bad format", []string{"calculate", path, "-f", "pdf"}, "unsupported format"},
		{"missing file", []string{"calculate", filepath.Join(t.TempDir(), "nope.yaml")}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	path := writeFile(t, "scenarios.yaml", scenarioYAML)
	out, err := run(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 scenario(s)")
	assert.Contains(t, out, "- bigger (1 platform(s))")

	bad := writeFile(t, "bad.yaml", "scenarios: []\n")
	_, err = run(t, "validate", bad)
	assert.Error(t, err)
}

func TestCatalogCommands(t *testing.T) {
	out, err := run(t, "platforms", "--category", "subscription")
	require.NoError(t, err)
	assert.Contains(t, out, "SUBSCRIPTION")
	assert.Contains(t, out, "patreon")
	assert.NotContains(t, out, "youtube")

	out, err = run(t, "platforms", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "avgPledge")

	out, err = run(t, "platforms", "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "youtube"`)

	_, err = run(t, "platforms", "--category", "radio")
	assert.Error(t, err)

	out, err = run(t, "regions")
	require.NoError(t, err)
	assert.Contains(t, out, "global")

	out, err = run(t, "niches", "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "finance"`)
}

func TestCompare(t *testing.T) {
	path := writeFile(t, "scenarios.yaml", scenarioYAML)

	out, err := run(t, "compare", path, "--base", "base", "--scenarios", "bigger", "-t", "prices_plus_10")
	require.NoError(t, err)
	assert.Contains(t, out, "bigger")
	assert.Contains(t, out, "base_prices_plus_10")

	out, err = run(t, "compare", path, "--transform", "scale_input:platform=patreon,input=patrons,factor=3", "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "base_custom")

	out, err = run(t, "compare", "--list-templates")
	require.NoError(t, err)
	assert.Contains(t, out, "audience_x2")
	assert.Contains(t, out, "scale_input")

	_, err = run(t, "compare", path)
	assert.ErrorContains(t, err, "at least one of")

	_, err = run(t, "compare", path, "--base", "missing", "-t", "audience_x2")
	assert.ErrorContains(t, err, "not found")
}

func TestSwitch(t *testing.T) {
	out, err := run(t, "switch", "--from", "patreon", "--from-inputs", "patrons=100,avgPledge=5",
		"--to", "newsletter", "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"verdict"`)

	_, err = run(t, "switch", "--from", "patreon", "--to", "newsletter", "--retention", "120")
	assert.ErrorContains(t, err, "retention")

	_, err = run(t, "switch", "--from", "patreon")
	assert.Error(t, err)
}

func TestGoal(t *testing.T) {
	out, err := run(t, "goal", "-p", "patreon", "--target", "900", "--solve-for", "patrons", "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"success": true`)
	assert.Contains(t, out, `"requiredValue": 200`)

	out, err = run(t, "goal", "-p", "patreon", "--target", "900")
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	_, err = run(t, "goal", "-p", "patreon", "--target", "900", "-f", "xml")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestSponsorshipAndRateCard(t *testing.T) {
	out, err := run(t, "sponsorship", "--followers", "80000", "--avg-views", "25000", "--engagement", "4.5")
	require.NoError(t, err)
	assert.Contains(t, out, "SPONSORSHIP PRICE ESTIMATE")

	_, err = run(t, "sponsorship", "--followers", "-5")
	assert.ErrorContains(t, err, "cannot be negative")

	out, err = run(t, "ratecard", "--followers", "80000", "--avg-views", "25000", "--engagement", "4.5", "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"lines"`)
	assert.Contains(t, out, "instagram_reel")
}

func TestPlan(t *testing.T) {
	out, err := run(t, "plan", "--starting", "1000", "--growth", "5", "--expenses", "200", "--months", "6", "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "breakEvenMonth")

	_, err = run(t, "plan", "--months", "0")
	assert.ErrorContains(t, err, "months must be at least 1")

	_, err = run(t, "plan", "--tax", "150")
	assert.ErrorContains(t, err, "tax rate")
}

func TestMix(t *testing.T) {
	path := writeFile(t, "mix.yaml", mixYAML)
	out, err := run(t, "mix", path, "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"platform": "newsletter"`)

	mixedCase := writeFile(t, "case.yaml", "entries:\n  - platform: Patreon\n    allocation_percent: 100\n")
	out, err = run(t, "mix", mixedCase, "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"platform": "patreon"`)
	assert.NotContains(t, out, `"totalMonthly": "0"`)

	bad := writeFile(t, "bad.yaml", "entries:\n  - platform: myspace\n    allocation_percent: 10\n")
	_, err = run(t, "mix", bad)
	assert.ErrorContains(t, err, "unknown platform")

	empty := writeFile(t, "empty.yaml", "entries: []\n")
	_, err = run(t, "mix", empty)
	assert.ErrorContains(t, err, "at least one mix entry")
}

func TestSensitivity(t *testing.T) {
	out, err := run(t, "sensitivity", "-p", "patreon", "--input", "avgPledge", "--min", "1", "--max", "10", "--steps", "10", "-f", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Platform,Input,Value,MonthlyRevenue,DiffFromBase")
	assert.Contains(t, out, "patreon,avgPledge,")

	_, err = run(t, "sensitivity", "-p", "patreon", "--input", "fans")
	assert.Error(t, err)
}

func TestMediaKitAndPitch(t *testing.T) {
	profile := writeFile(t, "profile.yaml", profileYAML)

	out, err := run(t, "mediakit", profile)
	require.NoError(t, err)
	assert.Contains(t, out, "Jordan Lee")

	target := filepath.Join(t.TempDir(), "kit.html")
	out, err = run(t, "mediakit", profile, "-f", "html", "-o", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Media kit saved to")
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<html")

	out, err = run(t, "pitch", profile, "--brand", "Acme", "--contact", "Sam", "--deliverable", "instagram_reel")
	require.NoError(t, err)
	assert.Contains(t, out, "Hi Sam")
	assert.Contains(t, out, "Acme")

	_, err = run(t, "pitch", profile, "--brand", "Acme", "--deliverable", "billboard")
	assert.ErrorContains(t, err, "unknown deliverable")
}
