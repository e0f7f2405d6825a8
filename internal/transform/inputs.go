package transform

import (
	"fmt"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/registry"
	"github.com/shopspring/decimal"
)

// ScaleInput multiplies one input of one platform by a factor.
// Useful for "what if my views doubled" questions.
type ScaleInput struct {
	Platform string          // Platform id, e.g. "youtube"
	Input    string          // Input id, e.g. "monthlyViews"
	Factor   decimal.Decimal // Multiplier applied to the current value (non-negative)
}

func (st *ScaleInput) Name() string {
	return "scale_input"
}

func (st *ScaleInput) Description() string {
	return fmt.Sprintf("Scale %s %s by %sx", st.Platform, st.Input, st.Factor.String())
}

func (st *ScaleInput) Validate(base *domain.Scenario) error {
	if st.Factor.IsNegative() {
		return NewTransformError(st.Name(), "validate", fmt.Sprintf("factor must be non-negative, got %s", st.Factor), nil)
	}
	return validatePlatformInput(st.Name(), base, st.Platform, st.Input)
}

func (st *ScaleInput) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	entry := &modified.Platforms[modified.Entry(st.Platform)]
	if entry.Inputs == nil {
		entry.Inputs = domain.InputValues{}
	}
	entry.Inputs[st.Input] = scale(entry.Inputs.Get(st.Input), st.Factor)
	return modified, nil
}

// SetInput replaces one input of one platform with a fixed value.
type SetInput struct {
	Platform string
	Input    string
	Value    float64
}

func (st *SetInput) Name() string {
	return "set_input"
}

func (st *SetInput) Description() string {
	return fmt.Sprintf("Set %s %s to %g", st.Platform, st.Input, st.Value)
}

func (st *SetInput) Validate(base *domain.Scenario) error {
	if st.Value < 0 {
		return NewTransformError(st.Name(), "validate", fmt.Sprintf("value must be non-negative, got %g", st.Value), nil)
	}
	return validatePlatformInput(st.Name(), base, st.Platform, st.Input)
}

func (st *SetInput) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	entry := &modified.Platforms[modified.Entry(st.Platform)]
	if entry.Inputs == nil {
		entry.Inputs = domain.InputValues{}
	}
	entry.Inputs[st.Input] = st.Value
	return modified, nil
}

// ScaleKind multiplies every input of a given kind across all platforms in the scenario,
// e.g. every audience input when modelling overall growth. Inputs absent from an entry
// stay absent.
type ScaleKind struct {
	Kind   domain.InputKind
	Factor decimal.Decimal
}

func (sk *ScaleKind) Name() string {
	return "scale_kind"
}

func (sk *ScaleKind) Description() string {
	return fmt.Sprintf("Scale every %s input by %sx", sk.Kind, sk.Factor.String())
}

func (sk *ScaleKind) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(sk.Name(), "validate", "base scenario cannot be nil", nil)
	}
	switch sk.Kind {
	case domain.KindAudience, domain.KindVolume, domain.KindPrice, domain.KindRate, domain.KindPercent:
	default:
		return NewTransformError(sk.Name(), "validate", fmt.Sprintf("unknown input kind %q", sk.Kind), nil)
	}
	if sk.Factor.IsNegative() {
		return NewTransformError(sk.Name(), "validate", fmt.Sprintf("factor must be non-negative, got %s", sk.Factor), nil)
	}
	return nil
}

func (sk *ScaleKind) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	for i := range modified.Platforms {
		entry := &modified.Platforms[i]
		platform, ok := registry.Platform(entry.Platform)
		if !ok {
			continue
		}
		for _, in := range platform.Inputs {
			if in.Kind != sk.Kind {
				continue
			}
			if _, present := entry.Inputs[in.ID]; !present {
				continue
			}
			value := scale(entry.Inputs.Get(in.ID), sk.Factor)
			// percentages cannot exceed their descriptor range
			if in.Kind == domain.KindPercent {
				value = in.Clamp(value)
			}
			entry.Inputs[in.ID] = value
		}
	}
	return modified, nil
}

func scale(value float64, factor decimal.Decimal) float64 {
	return decimal.NewFromFloat(value).Mul(factor).InexactFloat64()
}

// validatePlatformInput checks that base has an entry for platform and that the platform
// defines the input.
func validatePlatformInput(name string, base *domain.Scenario, platformID, inputID string) error {
	if base == nil {
		return NewTransformError(name, "validate", "base scenario cannot be nil", nil)
	}
	if platformID == "" {
		return NewTransformError(name, "validate", "platform cannot be empty", nil)
	}
	if base.Entry(platformID) < 0 {
		return NewTransformError(name, "validate", fmt.Sprintf("platform %s not found in scenario", platformID), nil)
	}
	platform, ok := registry.Platform(platformID)
	if !ok {
		return NewTransformError(name, "validate", fmt.Sprintf("unknown platform %s", platformID), nil)
	}
	if _, ok := platform.Input(inputID); !ok {
		return NewTransformError(name, "validate", fmt.Sprintf("platform %s has no input %q", platformID, inputID), nil)
	}
	return nil
}
