package transform

import (
	"errors"
	"strings"
	"testing"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Helper function to create a basic test scenario
func createTestScenario() *domain.Scenario {
	return &domain.Scenario{
		Name: "Test Scenario",
		Platforms: []domain.PlatformEntry{
			{Platform: "youtube", Inputs: domain.InputValues{"subscribers": 10000, "monthlyViews": 500000, "cpm": 4}},
			{Platform: "substack", Inputs: domain.InputValues{"subscribers": 2000, "paidPercent": 5, "subPrice": 8}},
		},
	}
}

func TestApplyTransforms_NilScenario(t *testing.T) {
	transforms := []ScenarioTransform{
		&SetRegion{Region: "uk"},
	}

	_, err := ApplyTransforms(nil, transforms)
	if err == nil {
		t.Error("Expected error for nil scenario, got nil")
	}
}

func TestApplyTransforms_EmptyTransforms(t *testing.T) {
	base := createTestScenario()

	result, err := ApplyTransforms(base, nil)
	if err != nil {
		t.Fatalf("Expected no error for empty transforms, got: %v", err)
	}
	if result == base {
		t.Error("Expected a copy, got the base scenario itself")
	}

	result.Platforms[0].Inputs["cpm"] = 99
	if base.Platforms[0].Inputs["cpm"] != 4 {
		t.Error("Modifying the copy changed the base scenario")
	}
}

func TestApplyTransforms_NilTransform(t *testing.T) {
	_, err := ApplyTransforms(createTestScenario(), []ScenarioTransform{nil})
	if err == nil || !strings.Contains(err.Error(), "edit 1 of 1 is missing") {
		t.Errorf("Expected nil transform error, got %v", err)
	}
}

func TestApplyTransforms_Sequence(t *testing.T) {
	base := createTestScenario()
	transforms := []ScenarioTransform{
		&ScaleInput{Platform: "youtube", Input: "monthlyViews", Factor: decimal.NewFromInt(2)},
		&SetInput{Platform: "substack", Input: "subPrice", Value: 10},
		&AddPlatform{Platform: "patreon", Inputs: domain.InputValues{"patrons": 50}},
		&RemovePlatform{Platform: "substack"},
		&SetRegion{Region: "CA"},
		&SetNiche{Niche: "tech"},
	}

	result, err := ApplyTransforms(base, transforms)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := result.Platforms[0].Inputs["monthlyViews"]; got != 1000000 {
		t.Errorf("Expected monthlyViews 1000000, got %v", got)
	}
	if len(result.Platforms) != 2 || result.Platforms[1].Platform != "patreon" {
		t.Fatalf("Expected youtube and patreon, got %+v", result.Platforms)
	}
	patreon := result.Platforms[1].Inputs
	if patreon["patrons"] != 50 {
		t.Errorf("Expected explicit patrons 50, got %v", patreon["patrons"])
	}
	if patreon["avgPledge"] != 5 {
		t.Errorf("Expected default avgPledge 5, got %v", patreon["avgPledge"])
	}
	if result.Region != "ca" || result.Niche != "tech" {
		t.Errorf("Expected region ca and niche tech, got %s/%s", result.Region, result.Niche)
	}

	// base untouched
	if len(base.Platforms) != 2 || base.Platforms[0].Inputs["monthlyViews"] != 500000 || base.Region != "" {
		t.Error("Base scenario was modified")
	}
}

func TestApplyTransforms_ValidationFailure(t *testing.T) {
	tests := []struct {
		name      string
		transform ScenarioTransform
		reason    string
	}{
		{"negative factor", &ScaleInput{Platform: "youtube", Input: "cpm", Factor: decimal.NewFromInt(-1)}, "non-negative"},
		{"platform not in scenario", &ScaleInput{Platform: "twitch", Input: "subscribers", Factor: decimal.NewFromInt(2)}, "not found in scenario"},
		{"unknown input", &SetInput{Platform: "youtube", Input: "likes", Value: 1}, `no input "likes"`},
		{"negative value", &SetInput{Platform: "youtube", Input: "cpm", Value: -2}, "non-negative"},
		{"unknown kind", &ScaleKind{Kind: "vibes", Factor: decimal.NewFromInt(2)}, "unknown input kind"},
		{"duplicate platform", &AddPlatform{Platform: "youtube"}, "already in scenario"},
		{"unknown platform", &AddPlatform{Platform: "myspace"}, "unknown platform"},
		{"bad override", &AddPlatform{Platform: "patreon", Inputs: domain.InputValues{"likes": 1}}, `no input "likes"`},
		{"remove missing", &RemovePlatform{Platform: "kick"}, "not found in scenario"},
		{"unknown region", &SetRegion{Region: "mars"}, "unknown region"},
		{"unknown niche", &SetNiche{Niche: "knitting"}, "unknown niche"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ApplyTransforms(createTestScenario(), []ScenarioTransform{tt.transform})
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.reason) {
				t.Errorf("Expected error containing %q, got %v", tt.reason, err)
			}
			var tErr *TransformError
			if !errors.As(err, &tErr) {
				t.Errorf("Expected a TransformError, got %T", err)
			} else if tErr.Operation != "validate" {
				t.Errorf("Expected validate operation, got %s", tErr.Operation)
			}
		})
	}
}

func TestScaleKind(t *testing.T) {
	base := createTestScenario()

	result, err := ApplyTransforms(base, []ScenarioTransform{
		&ScaleKind{Kind: domain.KindAudience, Factor: decimal.NewFromInt(3)},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := result.Platforms[0].Inputs["subscribers"]; got != 30000 {
		t.Errorf("Expected youtube subscribers 30000, got %v", got)
	}
	if got := result.Platforms[1].Inputs["subscribers"]; got != 6000 {
		t.Errorf("Expected substack subscribers 6000, got %v", got)
	}
	if got := result.Platforms[0].Inputs["monthlyViews"]; got != 500000 {
		t.Errorf("Volume input should not change, got %v", got)
	}

	// percentages stay within range
	result, err = ApplyTransforms(base, []ScenarioTransform{
		&ScaleKind{Kind: domain.KindPercent, Factor: decimal.NewFromInt(50)},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := result.Platforms[1].Inputs["paidPercent"]; got != 100 {
		t.Errorf("Expected paidPercent clamped to 100, got %v", got)
	}
}

func TestTransformError(t *testing.T) {
	inner := errors.New("boom")
	err := NewTransformError("scale_input", "apply", "bad things", inner)

	if !errors.Is(err, inner) {
		t.Error("Expected TransformError to unwrap to the inner error")
	}
	want := "scale_input apply: bad things: boom"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
	if NewTransformError("x", "validate", "nope", nil).Error() != "x validate: nope" {
		t.Error("Unexpected message without inner error")
	}
}

func TestTransformRegistry_ParseTransformSpec(t *testing.T) {
	registry := NewTransformRegistry()

	tests := []struct {
		spec    string
		name    string
		wantErr bool
	}{
		{"scale_input:platform=youtube,input=monthlyViews,factor=1.5", "scale_input", false},
		{"set_input:platform=youtube,input=cpm,value=6", "set_input", false},
		{"scale_kind:kind=Audience,factor=2", "scale_kind", false},
		{"add_platform:platform=patreon,patrons=200", "add_platform", false},
		{"remove_platform:platform=youtube", "remove_platform", false},
		{"set_region:region=uk", "set_region", false},
		{"set_niche:niche=tech", "set_niche", false},
		{"set_niche", "", true},
		{"unknown:x=1", "", true},
		{"scale_input:platform=youtube,input=cpm", "", true},
		{"scale_input:platform=youtube,input=cpm,factor=lots", "", true},
		{"set_input:platform=youtube,input=cpm,value", "", true},
		{"add_platform:platform=patreon,patrons=many", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			transform, err := registry.ParseTransformSpec(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if transform.Name() != tt.name {
				t.Errorf("Expected %s, got %s", tt.name, transform.Name())
			}
			if transform.Description() == "" {
				t.Error("Expected a description")
			}
		})
	}

	if got := len(registry.List()); got != 7 {
		t.Errorf("Expected 7 registered transforms, got %d", got)
	}

	transforms, err := registry.ParseTransformSpecs([]string{"set_region:region=uk", "set_niche:niche=tech"})
	if err != nil || len(transforms) != 2 {
		t.Errorf("Expected two transforms, got %d (%v)", len(transforms), err)
	}
}
