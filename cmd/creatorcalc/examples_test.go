package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/creatorcalc/internal/calculation"
	"github.com/rgehrsitz/creatorcalc/internal/config"
	"github.com/rgehrsitz/creatorcalc/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	examplesDir   = filepath.Join("..", "..", "examples")
	decimalTwelve = decimal.NewFromInt(12)
)

// TestExamples runs the shipped example files end to end
func TestExamples(t *testing.T) {
	scenarioFile := filepath.Join(examplesDir, "creator.yaml")

	t.Run("scenarios_calculate", func(t *testing.T) {
		cfg, err := config.NewInputParser().LoadFromFile(scenarioFile)
		require.NoError(t, err)

		results, err := calculation.NewCalculationEngine().RunScenarios(cfg)
		require.NoError(t, err)
		require.Len(t, results.Scenarios, len(cfg.Scenarios))

		for _, s := range results.Scenarios {
			assert.NotEmpty(t, s.Name)
			assert.True(t, s.TotalMonthly.IsPositive(), "%s should earn something", s.Name)
			assert.InDelta(t, s.TotalMonthly.Mul(decimalTwelve).InexactFloat64(), s.TotalYearly.InexactFloat64(), 0.01, "%s yearly is twelve months", s.Name)
		}
	})

	t.Run("calculation_consistency", func(t *testing.T) {
		cfg, err := config.NewInputParser().LoadFromFile(scenarioFile)
		require.NoError(t, err)

		engine := calculation.NewCalculationEngine()
		first, err := engine.RunScenarios(cfg)
		require.NoError(t, err)
		second, err := engine.RunScenarios(cfg)
		require.NoError(t, err)

		for i := range first.Scenarios {
			assert.True(t, first.Scenarios[i].TotalMonthly.Equal(second.Scenarios[i].TotalMonthly))
		}
	})

	t.Run("every_format", func(t *testing.T) {
		cfg, err := config.NewInputParser().LoadFromFile(scenarioFile)
		require.NoError(t, err)
		results, err := calculation.NewCalculationEngine().RunScenarios(cfg)
		require.NoError(t, err)

		for _, format := range output.AvailableFormatterNames() {
			t.Run(fmt.Sprintf("format_%s", format), func(t *testing.T) {
				var buf bytes.Buffer
				require.NoError(t, output.GenerateReport(&buf, results, format))
				assert.NotEmpty(t, buf.String())
			})
		}
	})

	t.Run("cli", func(t *testing.T) {
		_, err := run(t, "calculate", scenarioFile)
		assert.NoError(t, err)

		_, err = run(t, "compare", scenarioFile, "-t", "audience_x2,region_global")
		assert.NoError(t, err)

		out, err := run(t, "mix", filepath.Join(examplesDir, "mix.yaml"))
		require.NoError(t, err)
		assert.NotEmpty(t, out)

		out, err = run(t, "mediakit", filepath.Join(examplesDir, "profile.yaml"))
		require.NoError(t, err)
		assert.Contains(t, out, "Jordan Lee")
	})
}
