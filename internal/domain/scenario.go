package domain

import (
	"github.com/shopspring/decimal"
)

// PlatformEntry is one platform a creator is active on, together with their metrics
type PlatformEntry struct {
	Platform string      `yaml:"platform" json:"platform"`
	Inputs   InputValues `yaml:"inputs" json:"inputs"`
}

// Scenario is a named set of platform entries, optionally overriding the file-wide region and niche
type Scenario struct {
	ID          string          `yaml:"id,omitempty" json:"id,omitempty"`
	Name        string          `yaml:"name" json:"name"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	Region      string          `yaml:"region,omitempty" json:"region,omitempty"`
	Niche       string          `yaml:"niche,omitempty" json:"niche,omitempty"`
	Platforms   []PlatformEntry `yaml:"platforms" json:"platforms"`
}

// Configuration is the content of a scenario file
type Configuration struct {
	CreatorName string     `yaml:"creator_name,omitempty" json:"creatorName,omitempty"`
	Region      string     `yaml:"region,omitempty" json:"region,omitempty"`
	Niche       string     `yaml:"niche,omitempty" json:"niche,omitempty"`
	TimePeriod  string     `yaml:"time_period,omitempty" json:"timePeriod,omitempty"`
	Scenarios   []Scenario `yaml:"scenarios" json:"scenarios"`
}

// FindScenario returns the scenario with the given name.
func (c *Configuration) FindScenario(name string) (*Scenario, bool) {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i], true
		}
	}
	return nil, false
}

// RegionFor returns the region id in effect for a scenario.
func (c *Configuration) RegionFor(s *Scenario) string {
	if s != nil && s.Region != "" {
		return s.Region
	}
	return c.Region
}

// NicheFor returns the niche id in effect for a scenario.
func (c *Configuration) NicheFor(s *Scenario) string {
	if s != nil && s.Niche != "" {
		return s.Niche
	}
	return c.Niche
}

// DeepCopy returns a scenario that shares no mutable state with s.
func (s *Scenario) DeepCopy() *Scenario {
	if s == nil {
		return nil
	}
	out := *s
	out.Platforms = make([]PlatformEntry, len(s.Platforms))
	for i, entry := range s.Platforms {
		out.Platforms[i] = PlatformEntry{
			Platform: entry.Platform,
			Inputs:   entry.Inputs.Clone(),
		}
	}
	return &out
}

// Entry returns the index of the entry for platform, or -1.
func (s *Scenario) Entry(platform string) int {
	for i, entry := range s.Platforms {
		if entry.Platform == platform {
			return i
		}
	}
	return -1
}

// PlatformResult pairs the raw engine output for one platform with its region/niche adjusted form
type PlatformResult struct {
	Platform string            `yaml:"platform" json:"platform"`
	Name     string            `yaml:"name" json:"name"`
	Inputs   InputValues       `yaml:"inputs" json:"inputs"`
	Raw      CalculationResult `yaml:"raw" json:"raw"`
	Adjusted CalculationResult `yaml:"adjusted" json:"adjusted"`
}

// ScenarioSummary holds the totals of one scenario run
type ScenarioSummary struct {
	Name                 string           `yaml:"name" json:"name"`
	Description          string           `yaml:"description,omitempty" json:"description,omitempty"`
	Region               Region           `yaml:"region" json:"region"`
	Niche                Niche            `yaml:"niche" json:"niche"`
	Results              []PlatformResult `yaml:"results" json:"results"`
	TotalMonthly         decimal.Decimal  `yaml:"total_monthly" json:"totalMonthly"`
	TotalYearly          decimal.Decimal  `yaml:"total_yearly" json:"totalYearly"`
	TopPlatform          string           `yaml:"top_platform,omitempty" json:"topPlatform,omitempty"`
	DiversificationScore decimal.Decimal  `yaml:"diversification_score" json:"diversificationScore"`
}

// ScenarioResults is the output of running every scenario of a configuration
type ScenarioResults struct {
	CreatorName string            `yaml:"creator_name,omitempty" json:"creatorName,omitempty"`
	TimePeriod  TimePeriod        `yaml:"time_period" json:"timePeriod"`
	Scenarios   []ScenarioSummary `yaml:"scenarios" json:"scenarios"`
}
