package domain

import "github.com/shopspring/decimal"

// Region adjusts revenue for audience geography
type Region struct {
	ID                string          `yaml:"id" json:"id"`
	Name              string          `yaml:"name" json:"name"`
	RevenueMultiplier decimal.Decimal `yaml:"revenue_multiplier" json:"revenueMultiplier"`
	RPMMultiplier     decimal.Decimal `yaml:"rpm_multiplier" json:"rpmMultiplier"`
}

// Niche adjusts revenue for content category
type Niche struct {
	ID            string          `yaml:"id" json:"id"`
	Name          string          `yaml:"name" json:"name"`
	RPMMultiplier decimal.Decimal `yaml:"rpm_multiplier" json:"rpmMultiplier"`
}

// TimePeriod converts a monthly figure into the reporting window the user is viewing.
// It is a display concern and is never folded back into stored inputs.
type TimePeriod struct {
	ID         string          `yaml:"id" json:"id"`
	Name       string          `yaml:"name" json:"name"`
	Multiplier decimal.Decimal `yaml:"multiplier" json:"multiplier"`
}
