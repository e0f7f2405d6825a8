package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// InputType controls how an input is presented to the user
type InputType string

const (
	InputSlider InputType = "slider"
	InputNumber InputType = "number"
)

// InputKind classifies what an input measures. Transforms and the platform switch
// comparator use it to decide which inputs follow the audience.
type InputKind string

const (
	KindAudience InputKind = "audience" // followers, subscribers, patrons, members
	KindVolume   InputKind = "volume"   // views, downloads, sales, clicks, hours
	KindPrice    InputKind = "price"    // pledge, subscription price, order value
	KindRate     InputKind = "rate"     // CPM, RPM
	KindPercent  InputKind = "percent"  // conversion, paid share, tips, margin
)

// Category groups platforms by how they monetize
type Category string

const (
	CategoryVideo        Category = "video"
	CategorySocial       Category = "social"
	CategorySubscription Category = "subscription"
	CategoryLivestream   Category = "livestream"
	CategoryCommerce     Category = "commerce"
)

// PlatformInput describes one user-editable metric for a platform
type PlatformInput struct {
	ID      string    `yaml:"id" json:"id"`
	Label   string    `yaml:"label" json:"label"`
	Type    InputType `yaml:"type" json:"type"`
	Kind    InputKind `yaml:"kind" json:"kind"`
	Min     float64   `yaml:"min" json:"min"`
	Max     float64   `yaml:"max" json:"max"`
	Step    float64   `yaml:"step" json:"step"`
	Default float64   `yaml:"default" json:"default"`
	Tooltip string    `yaml:"tooltip,omitempty" json:"tooltip,omitempty"`
}

// Clamp limits v to the input's [Min, Max] range.
func (in PlatformInput) Clamp(v float64) float64 {
	return math.Max(in.Min, math.Min(in.Max, v))
}

// Platform is the static metadata for one monetization platform
type Platform struct {
	ID       string          `yaml:"id" json:"id"`
	Name     string          `yaml:"name" json:"name"`
	Category Category        `yaml:"category" json:"category"`
	Inputs   []PlatformInput `yaml:"inputs" json:"inputs"`
}

// Input returns the descriptor with the given id.
func (p Platform) Input(id string) (PlatformInput, bool) {
	for _, in := range p.Inputs {
		if in.ID == id {
			return in, true
		}
	}
	return PlatformInput{}, false
}

// Defaults returns the platform's default input values.
func (p Platform) Defaults() InputValues {
	values := make(InputValues, len(p.Inputs))
	for _, in := range p.Inputs {
		values[in.ID] = in.Default
	}
	return values
}

// InputValues maps input ids to the raw numbers a user entered.
type InputValues map[string]float64

// Get returns the value for id. Absent, NaN, infinite and negative values read as zero;
// this is the only place raw user input is sanitized before it reaches a formula.
func (v InputValues) Get(id string) float64 {
	raw, ok := v[id]
	if !ok || math.IsNaN(raw) || math.IsInf(raw, 0) || raw < 0 {
		return 0
	}
	return raw
}

// Decimal returns the sanitized value for id as a decimal.
func (v InputValues) Decimal(id string) decimal.Decimal {
	return decimal.NewFromFloat(v.Get(id))
}

// Clone returns an independent copy.
func (v InputValues) Clone() InputValues {
	out := make(InputValues, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Merge returns a copy of v overlaid with the values in other.
func (v InputValues) Merge(other InputValues) InputValues {
	out := v.Clone()
	for k, val := range other {
		out[k] = val
	}
	return out
}
