package transform

import (
	"fmt"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/registry"
)

// AddPlatform adds a platform entry to the scenario. Inputs left unset take the
// platform's defaults.
type AddPlatform struct {
	Platform string
	Inputs   domain.InputValues
}

func (ap *AddPlatform) Name() string {
	return "add_platform"
}

func (ap *AddPlatform) Description() string {
	return fmt.Sprintf("Add %s", ap.Platform)
}

func (ap *AddPlatform) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(ap.Name(), "validate", "base scenario cannot be nil", nil)
	}
	platform, ok := registry.Platform(ap.Platform)
	if !ok || platform.ID != ap.Platform {
		return NewTransformError(ap.Name(), "validate", fmt.Sprintf("unknown platform %q", ap.Platform), nil)
	}
	if base.Entry(ap.Platform) >= 0 {
		return NewTransformError(ap.Name(), "validate", fmt.Sprintf("platform %s already in scenario", ap.Platform), nil)
	}
	for id, value := range ap.Inputs {
		if _, ok := platform.Input(id); !ok {
			return NewTransformError(ap.Name(), "validate", fmt.Sprintf("platform %s has no input %q", ap.Platform, id), nil)
		}
		if value < 0 {
			return NewTransformError(ap.Name(), "validate", fmt.Sprintf("input %s must be non-negative", id), nil)
		}
	}
	return nil
}

func (ap *AddPlatform) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	platform, ok := registry.Platform(ap.Platform)
	if !ok {
		return nil, NewTransformError(ap.Name(), "apply", fmt.Sprintf("unknown platform %q", ap.Platform), nil)
	}
	modified := base.DeepCopy()
	modified.Platforms = append(modified.Platforms, domain.PlatformEntry{
		Platform: platform.ID,
		Inputs:   platform.Defaults().Merge(ap.Inputs),
	})
	return modified, nil
}

// RemovePlatform drops a platform entry from the scenario.
type RemovePlatform struct {
	Platform string
}

func (rp *RemovePlatform) Name() string {
	return "remove_platform"
}

func (rp *RemovePlatform) Description() string {
	return fmt.Sprintf("Remove %s", rp.Platform)
}

func (rp *RemovePlatform) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(rp.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if base.Entry(rp.Platform) < 0 {
		return NewTransformError(rp.Name(), "validate", fmt.Sprintf("platform %s not found in scenario", rp.Platform), nil)
	}
	return nil
}

func (rp *RemovePlatform) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	i := modified.Entry(rp.Platform)
	modified.Platforms = append(modified.Platforms[:i], modified.Platforms[i+1:]...)
	return modified, nil
}

// SetRegion moves the scenario's audience to another region.
type SetRegion struct {
	Region string
}

func (sr *SetRegion) Name() string {
	return "set_region"
}

func (sr *SetRegion) Description() string {
	return fmt.Sprintf("Price the audience as %s", sr.Region)
}

func (sr *SetRegion) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(sr.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if _, ok := registry.LookupRegion(sr.Region); !ok {
		return NewTransformError(sr.Name(), "validate", fmt.Sprintf("unknown region %q", sr.Region), nil)
	}
	return nil
}

func (sr *SetRegion) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Region = registry.Region(sr.Region).ID
	return modified, nil
}

// SetNiche changes the content niche of the scenario.
type SetNiche struct {
	Niche string
}

func (sn *SetNiche) Name() string {
	return "set_niche"
}

func (sn *SetNiche) Description() string {
	return fmt.Sprintf("Switch niche to %s", sn.Niche)
}

func (sn *SetNiche) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(sn.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if _, ok := registry.LookupNiche(sn.Niche); !ok {
		return NewTransformError(sn.Name(), "validate", fmt.Sprintf("unknown niche %q", sn.Niche), nil)
	}
	return nil
}

func (sn *SetNiche) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Niche = registry.Niche(sn.Niche).ID
	return modified, nil
}
