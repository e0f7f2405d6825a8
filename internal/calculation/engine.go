package calculation

import (
	"fmt"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/registry"
	"github.com/shopspring/decimal"
)

// CalculationEngine runs platform calculations and whole scenarios
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger. Passing nil installs a no-op logger.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Request is a single platform calculation with the region and niche it should be adjusted for
type Request struct {
	Platform string             `yaml:"platform" json:"platform"`
	Inputs   domain.InputValues `yaml:"inputs" json:"inputs"`
	Region   string             `yaml:"region,omitempty" json:"region,omitempty"`
	Niche    string             `yaml:"niche,omitempty" json:"niche,omitempty"`
}

// Calculate runs one platform formula and applies the region and niche multipliers.
// Unknown platform, region and niche ids fall back to their defaults instead of failing.
func (ce *CalculationEngine) Calculate(req Request) domain.PlatformResult {
	region := registry.Region(req.Region)
	niche := registry.Niche(req.Niche)

	name := req.Platform
	if p, ok := registry.Platform(req.Platform); ok {
		// dispatch is keyed on the canonical id
		req.Platform = p.ID
		name = p.Name
	} else {
		ce.Logger.Warnf("unknown platform %q, using zero result", req.Platform)
	}

	raw := Calculate(req.Platform, req.Inputs)
	adjusted := ApplyRegionNiche(raw, region, niche)
	ce.Logger.Debugf("%s: raw monthly %s, adjusted monthly %s (region %s, niche %s)",
		req.Platform, raw.MonthlyRevenue.StringFixed(2), adjusted.MonthlyRevenue.StringFixed(2), region.ID, niche.ID)

	return domain.PlatformResult{
		Platform: req.Platform,
		Name:     name,
		Inputs:   req.Inputs.Clone(),
		Raw:      raw,
		Adjusted: adjusted,
	}
}

// RunScenario calculates every platform entry of a scenario and totals the adjusted results
func (ce *CalculationEngine) RunScenario(config *domain.Configuration, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if config == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if scenario == nil {
		return nil, fmt.Errorf("scenario is required")
	}

	region := registry.Region(config.RegionFor(scenario))
	niche := registry.Niche(config.NicheFor(scenario))

	summary := &domain.ScenarioSummary{
		Name:         scenario.Name,
		Description:  scenario.Description,
		Region:       region,
		Niche:        niche,
		Results:      make([]domain.PlatformResult, 0, len(scenario.Platforms)),
		TotalMonthly: decimal.Zero,
		TotalYearly:  decimal.Zero,
	}

	best := decimal.Zero
	monthly := make([]decimal.Decimal, 0, len(scenario.Platforms))
	for _, entry := range scenario.Platforms {
		result := ce.Calculate(Request{
			Platform: entry.Platform,
			Inputs:   entry.Inputs,
			Region:   region.ID,
			Niche:    niche.ID,
		})
		summary.Results = append(summary.Results, result)
		summary.TotalMonthly = summary.TotalMonthly.Add(result.Adjusted.MonthlyRevenue)
		summary.TotalYearly = summary.TotalYearly.Add(result.Adjusted.YearlyRevenue)
		monthly = append(monthly, result.Adjusted.MonthlyRevenue)

		if result.Adjusted.MonthlyRevenue.GreaterThan(best) {
			best = result.Adjusted.MonthlyRevenue
			summary.TopPlatform = result.Platform
		}
	}
	summary.DiversificationScore = DiversificationScore(monthly)

	ce.Logger.Infof("scenario %q: %d platforms, %s/month", scenario.Name, len(summary.Results), summary.TotalMonthly.StringFixed(2))
	return summary, nil
}

// RunScenarios runs every scenario in the configuration in file order
func (ce *CalculationEngine) RunScenarios(config *domain.Configuration) (*domain.ScenarioResults, error) {
	if config == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("configuration has no scenarios")
	}

	results := &domain.ScenarioResults{
		CreatorName: config.CreatorName,
		TimePeriod:  registry.TimePeriod(config.TimePeriod),
		Scenarios:   make([]domain.ScenarioSummary, 0, len(config.Scenarios)),
	}
	for i := range config.Scenarios {
		summary, err := ce.RunScenario(config, &config.Scenarios[i])
		if err != nil {
			return nil, fmt.Errorf("failed to run scenario %q: %w", config.Scenarios[i].Name, err)
		}
		results.Scenarios = append(results.Scenarios, *summary)
	}
	return results, nil
}

// DiversificationScore returns 1 - Σ share² over the given revenue streams: 0 when all
// revenue comes from one stream, approaching 1 as it spreads evenly over many.
// It is zero when there is no revenue.
func DiversificationScore(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		if a.IsPositive() {
			total = total.Add(a)
		}
	}
	if !total.IsPositive() {
		return decimal.Zero
	}
	concentration := decimal.Zero
	for _, a := range amounts {
		if a.IsPositive() {
			share := a.Div(total)
			concentration = concentration.Add(share.Mul(share))
		}
	}
	return one.Sub(concentration)
}
