package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []ScenarioTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with common creator what-if scenarios
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	// Audience growth and decline
	registry.Register(Template{
		Name:        "audience_x2",
		Description: "Double every audience and volume metric",
		Transforms: []ScenarioTransform{
			&ScaleKind{Kind: domain.KindAudience, Factor: decimal.NewFromInt(2)},
			&ScaleKind{Kind: domain.KindVolume, Factor: decimal.NewFromInt(2)},
		},
	})

	registry.Register(Template{
		Name:        "audience_plus_25",
		Description: "Grow every audience and volume metric by 25%",
		Transforms: []ScenarioTransform{
			&ScaleKind{Kind: domain.KindAudience, Factor: decimal.NewFromFloat(1.25)},
			&ScaleKind{Kind: domain.KindVolume, Factor: decimal.NewFromFloat(1.25)},
		},
	})

	registry.Register(Template{
		Name:        "audience_minus_25",
		Description: "Shrink every audience and volume metric by 25%",
		Transforms: []ScenarioTransform{
			&ScaleKind{Kind: domain.KindAudience, Factor: decimal.NewFromFloat(0.75)},
			&ScaleKind{Kind: domain.KindVolume, Factor: decimal.NewFromFloat(0.75)},
		},
	})

	// Pricing
	registry.Register(Template{
		Name:        "prices_plus_10",
		Description: "Raise every price by 10%",
		Transforms: []ScenarioTransform{
			&ScaleKind{Kind: domain.KindPrice, Factor: decimal.NewFromFloat(1.10)},
		},
	})

	registry.Register(Template{
		Name:        "prices_minus_10",
		Description: "Cut every price by 10%",
		Transforms: []ScenarioTransform{
			&ScaleKind{Kind: domain.KindPrice, Factor: decimal.NewFromFloat(0.90)},
		},
	})

	// Audience geography and niche
	registry.Register(Template{
		Name:        "region_us",
		Description: "Price the audience as United States",
		Transforms:  []ScenarioTransform{&SetRegion{Region: "us"}},
	})

	registry.Register(Template{
		Name:        "region_global",
		Description: "Price the audience as a worldwide mix",
		Transforms:  []ScenarioTransform{&SetRegion{Region: "global"}},
	})

	registry.Register(Template{
		Name:        "niche_finance",
		Description: "Move to the finance niche",
		Transforms:  []ScenarioTransform{&SetNiche{Niche: "finance"}},
	})

	registry.Register(Template{
		Name:        "niche_gaming",
		Description: "Move to the gaming niche",
		Transforms:  []ScenarioTransform{&SetNiche{Niche: "gaming"}},
	})

	// New revenue streams
	registry.Register(Template{
		Name:        "add_patreon",
		Description: "Launch a Patreon with default membership numbers",
		Transforms:  []ScenarioTransform{&AddPlatform{Platform: "patreon"}},
	})

	registry.Register(Template{
		Name:        "add_newsletter",
		Description: "Launch a newsletter with default list numbers",
		Transforms:  []ScenarioTransform{&AddPlatform{Platform: "newsletter"}},
	})

	return registry
}

// ApplyTemplate applies every transform of a template to base
func ApplyTemplate(base *domain.Scenario, t Template) (*domain.Scenario, error) {
	modified, err := ApplyTransforms(base, t.Transforms)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", t.Name, err)
	}
	return modified, nil
}
