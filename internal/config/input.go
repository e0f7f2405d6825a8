package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/registry"
	"gopkg.in/yaml.v3"
)

// ValidationError describes one problem found in a scenario file
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario file. YAML is expected; JSON parses too since it is valid YAML.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates scenario file content
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration checks ids and values at the file boundary. Every problem is
// reported; the returned error unwraps to the individual *ValidationError values.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil {
		return &ValidationError{Field: "configuration", Message: "is empty"}
	}

	var errs []error
	errs = append(errs, ip.validateSelections("", config.Region, config.Niche)...)
	if config.TimePeriod != "" {
		if _, ok := registry.LookupTimePeriod(config.TimePeriod); !ok {
			errs = append(errs, &ValidationError{Field: "time_period", Message: fmt.Sprintf("unknown time period %q", config.TimePeriod)})
		}
	}

	if len(config.Scenarios) == 0 {
		errs = append(errs, &ValidationError{Field: "scenarios", Message: "at least one scenario is required"})
	}

	names := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if scenario.Name == "" {
			errs = append(errs, &ValidationError{Field: fmt.Sprintf("scenarios[%d].name", i), Message: "is required"})
		} else if names[scenario.Name] {
			errs = append(errs, &ValidationError{Field: fmt.Sprintf("scenarios[%d].name", i), Message: fmt.Sprintf("duplicate scenario name %q", scenario.Name)})
		}
		names[scenario.Name] = true
		errs = append(errs, ip.ValidateScenario(i, scenario)...)
	}

	return errors.Join(errs...)
}

// ValidateScenario returns the problems found in one scenario
func (ip *InputParser) ValidateScenario(index int, scenario *domain.Scenario) []error {
	prefix := fmt.Sprintf("scenarios[%d]", index)
	errs := ip.validateSelections(prefix+".", scenario.Region, scenario.Niche)

	seen := make(map[string]bool, len(scenario.Platforms))
	for j, entry := range scenario.Platforms {
		field := fmt.Sprintf("%s.platforms[%d]", prefix, j)
		platform, ok := registry.Platform(entry.Platform)
		if !ok {
			errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf("unknown platform %q", entry.Platform)})
			continue
		}
		if platform.ID != entry.Platform {
			errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf("platform id must be written as %q", platform.ID)})
		}
		if seen[platform.ID] {
			errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf("platform %s listed twice", platform.ID)})
		}
		seen[platform.ID] = true

		for id, value := range entry.Inputs {
			if _, ok := platform.Input(id); !ok {
				errs = append(errs, &ValidationError{Field: field + ".inputs." + id, Message: fmt.Sprintf("%s has no input %q", platform.ID, id)})
				continue
			}
			if value < 0 {
				errs = append(errs, &ValidationError{Field: field + ".inputs." + id, Message: fmt.Sprintf("cannot be negative, got %v", value)})
			}
		}
	}
	return errs
}

func (ip *InputParser) validateSelections(prefix, region, niche string) []error {
	var errs []error
	if region != "" {
		if _, ok := registry.LookupRegion(region); !ok {
			errs = append(errs, &ValidationError{Field: prefix + "region", Message: fmt.Sprintf("unknown region %q", region)})
		}
	}
	if niche != "" {
		if _, ok := registry.LookupNiche(niche); !ok {
			errs = append(errs, &ValidationError{Field: prefix + "niche", Message: fmt.Sprintf("unknown niche %q", niche)})
		}
	}
	return errs
}

// SaveScenario writes a configuration as YAML, creating the parent directory if needed
func SaveScenario(filename string, config *domain.Configuration) error {
	if config == nil {
		return fmt.Errorf("configuration is required")
	}
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
