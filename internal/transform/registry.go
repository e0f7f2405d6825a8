package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ScenarioTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("scale_input", createScaleInput)
	registry.Register("set_input", createSetInput)
	registry.Register("scale_kind", createScaleKind)
	registry.Register("add_platform", createAddPlatform)
	registry.Register("remove_platform", createRemovePlatform)
	registry.Register("set_region", createSetRegion)
	registry.Register("set_niche", createSetNiche)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ScenarioTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms in alphabetical order.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "scale_input:platform=youtube,input=monthlyViews,factor=2"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ScenarioTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// ParseTransformSpecs parses several specs in order.
func (r *TransformRegistry) ParseTransformSpecs(specs []string) ([]ScenarioTransform, error) {
	transforms := make([]ScenarioTransform, 0, len(specs))
	for _, spec := range specs {
		t, err := r.ParseTransformSpec(spec)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, t)
	}
	return transforms, nil
}

// Factory functions for each transform

func requireParam(transform string, params map[string]string, key string) (string, error) {
	value, ok := params[key]
	if !ok || value == "" {
		return "", fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	return value, nil
}

func createScaleInput(params map[string]string) (ScenarioTransform, error) {
	platform, err := requireParam("scale_input", params, "platform")
	if err != nil {
		return nil, err
	}
	input, err := requireParam("scale_input", params, "input")
	if err != nil {
		return nil, err
	}
	factorStr, err := requireParam("scale_input", params, "factor")
	if err != nil {
		return nil, err
	}
	factor, err := decimal.NewFromString(factorStr)
	if err != nil {
		return nil, fmt.Errorf("invalid factor value: %w", err)
	}

	return &ScaleInput{Platform: platform, Input: input, Factor: factor}, nil
}

func createSetInput(params map[string]string) (ScenarioTransform, error) {
	platform, err := requireParam("set_input", params, "platform")
	if err != nil {
		return nil, err
	}
	input, err := requireParam("set_input", params, "input")
	if err != nil {
		return nil, err
	}
	valueStr, err := requireParam("set_input", params, "value")
	if err != nil {
		return nil, err
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid value: %w", err)
	}

	return &SetInput{Platform: platform, Input: input, Value: value}, nil
}

func createScaleKind(params map[string]string) (ScenarioTransform, error) {
	kind, err := requireParam("scale_kind", params, "kind")
	if err != nil {
		return nil, err
	}
	factorStr, err := requireParam("scale_kind", params, "factor")
	if err != nil {
		return nil, err
	}
	factor, err := decimal.NewFromString(factorStr)
	if err != nil {
		return nil, fmt.Errorf("invalid factor value: %w", err)
	}

	return &ScaleKind{Kind: domain.InputKind(strings.ToLower(kind)), Factor: factor}, nil
}

// createAddPlatform accepts every parameter other than "platform" as an input override.
func createAddPlatform(params map[string]string) (ScenarioTransform, error) {
	platform, err := requireParam("add_platform", params, "platform")
	if err != nil {
		return nil, err
	}
	inputs := domain.InputValues{}
	for key, raw := range params {
		if key == "platform" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", key, err)
		}
		inputs[key] = value
	}

	return &AddPlatform{Platform: platform, Inputs: inputs}, nil
}

func createRemovePlatform(params map[string]string) (ScenarioTransform, error) {
	platform, err := requireParam("remove_platform", params, "platform")
	if err != nil {
		return nil, err
	}
	return &RemovePlatform{Platform: platform}, nil
}

func createSetRegion(params map[string]string) (ScenarioTransform, error) {
	region, err := requireParam("set_region", params, "region")
	if err != nil {
		return nil, err
	}
	return &SetRegion{Region: region}, nil
}

func createSetNiche(params map[string]string) (ScenarioTransform, error) {
	niche, err := requireParam("set_niche", params, "niche")
	if err != nil {
		return nil, err
	}
	return &SetNiche{Niche: niche}, nil
}
