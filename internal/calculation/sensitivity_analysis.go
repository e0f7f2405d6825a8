package calculation

import (
	"fmt"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/registry"
	"github.com/shopspring/decimal"
)

// SensitivityParameter defines the sweep of a single platform input.
// A zero MinValue and MaxValue sweeps the input's full descriptor range.
type SensitivityParameter struct {
	Input    string          `yaml:"input" json:"input"`
	MinValue decimal.Decimal `yaml:"min_value" json:"minValue"`
	MaxValue decimal.Decimal `yaml:"max_value" json:"maxValue"`
	Steps    int             `yaml:"steps" json:"steps"`
}

// DefaultSweepSteps is used when a parameter does not name a step count.
const DefaultSweepSteps = 11

// SensitivityAnalyzer performs parameter sweep analysis
type SensitivityAnalyzer struct {
	calculationEngine *CalculationEngine
}

// NewSensitivityAnalyzer creates a new sensitivity analyzer
func NewSensitivityAnalyzer(engine *CalculationEngine) *SensitivityAnalyzer {
	if engine == nil {
		engine = NewCalculationEngine()
	}
	return &SensitivityAnalyzer{calculationEngine: engine}
}

// SweepInput recalculates entry for evenly spaced values of one input, holding every other
// input fixed, and reports the elasticity of revenue at the entry's current value.
func (sa *SensitivityAnalyzer) SweepInput(entry domain.PlatformEntry, parameter SensitivityParameter, region, niche string) (*domain.SensitivityAnalysis, error) {
	platform, ok := registry.Platform(entry.Platform)
	if !ok {
		return nil, fmt.Errorf("unknown platform %q", entry.Platform)
	}
	input, ok := platform.Input(parameter.Input)
	if !ok {
		return nil, fmt.Errorf("platform %s has no input %q", platform.ID, parameter.Input)
	}

	minValue, maxValue := parameter.MinValue, parameter.MaxValue
	if minValue.IsZero() && maxValue.IsZero() {
		minValue = decimal.NewFromFloat(input.Min)
		maxValue = decimal.NewFromFloat(input.Max)
	}
	if minValue.IsNegative() {
		return nil, fmt.Errorf("sweep minimum cannot be negative: %s", minValue)
	}
	if !maxValue.GreaterThan(minValue) {
		return nil, fmt.Errorf("sweep maximum %s must exceed minimum %s", maxValue, minValue)
	}
	steps := parameter.Steps
	if steps == 0 {
		steps = DefaultSweepSteps
	}
	if steps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", steps)
	}

	run := func(value decimal.Decimal) decimal.Decimal {
		inputs := entry.Inputs.Clone()
		if inputs == nil {
			inputs = domain.InputValues{}
		}
		inputs[input.ID] = value.InexactFloat64()
		return sa.calculationEngine.Calculate(Request{
			Platform: platform.ID,
			Inputs:   inputs,
			Region:   region,
			Niche:    niche,
		}).Adjusted.MonthlyRevenue
	}

	baseValue := entry.Inputs.Decimal(input.ID)
	analysis := &domain.SensitivityAnalysis{
		Platform:    platform.ID,
		Input:       input.ID,
		BaseValue:   baseValue,
		BaseMonthly: run(baseValue),
		Points:      make([]domain.SensitivityPoint, 0, steps),
	}

	stepSize := maxValue.Sub(minValue).Div(decimal.NewFromInt(int64(steps - 1)))
	for i := 0; i < steps; i++ {
		value := minValue.Add(stepSize.Mul(decimal.NewFromInt(int64(i))))
		if i == steps-1 {
			value = maxValue
		}
		monthly := run(value)
		analysis.Points = append(analysis.Points, domain.SensitivityPoint{Value: value, Monthly: monthly})

		if i == 0 || monthly.LessThan(analysis.MinMonthly) {
			analysis.MinMonthly = monthly
		}
		if i == 0 || monthly.GreaterThan(analysis.MaxMonthly) {
			analysis.MaxMonthly = monthly
		}
	}

	analysis.Elasticity = elasticity(analysis)
	return analysis, nil
}

// elasticity is the percent change in revenue per percent change in the input, measured
// from the base value to the next sweep point above it. It is zero when either base is zero
// or no point lies above the base value.
func elasticity(a *domain.SensitivityAnalysis) decimal.Decimal {
	if !a.BaseValue.IsPositive() || !a.BaseMonthly.IsPositive() {
		return decimal.Zero
	}
	for _, p := range a.Points {
		if p.Value.GreaterThan(a.BaseValue) {
			revenueChange := p.Monthly.Sub(a.BaseMonthly).Div(a.BaseMonthly)
			inputChange := p.Value.Sub(a.BaseValue).Div(a.BaseValue)
			return revenueChange.Div(inputChange)
		}
	}
	return decimal.Zero
}
