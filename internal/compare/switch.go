package compare

import (
	"context"
	"fmt"
	"sort"

	"github.com/rgehrsitz/creatorcalc/internal/calculation"
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/registry"
	"github.com/shopspring/decimal"
)

// Verdicts reported by ComparePlatforms
const (
	VerdictSwitch  = "switch"
	VerdictStay    = "stay"
	VerdictSimilar = "similar"
)

// SimilarBandPercent is the monthly change, in either direction, treated as no real difference.
var SimilarBandPercent = decimal.NewFromInt(5)

// SwitchRequest describes moving an audience from one platform to another
type SwitchRequest struct {
	From             domain.PlatformEntry `json:"from"`
	To               string               `json:"to"`
	ToInputs         domain.InputValues   `json:"toInputs,omitempty"`
	RetentionPercent float64              `json:"retentionPercent"`
	Region           string               `json:"region,omitempty"`
	Niche            string               `json:"niche,omitempty"`
}

// SwitchResult holds both sides of a platform switch
type SwitchResult struct {
	From        domain.PlatformResult `json:"from"`
	To          domain.PlatformResult `json:"to"`
	Carried     []string              `json:"carried"`
	Retention   decimal.Decimal       `json:"retention"`
	MonthlyDiff decimal.Decimal       `json:"monthlyDiff"`
	PctChange   decimal.Decimal       `json:"pctChange"`
	Verdict     string                `json:"verdict"`
}

// ComparePlatforms estimates revenue on the target platform for the audience that follows
// the creator there. Target inputs start from the target's defaults. Audience and volume
// inputs that both platforms share by id are carried over scaled by the retention
// percentage. Explicit ToInputs override both.
func (ce *CompareEngine) ComparePlatforms(ctx context.Context, req SwitchRequest) (*SwitchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source, ok := registry.Platform(req.From.Platform)
	if !ok {
		return nil, fmt.Errorf("unknown source platform %q", req.From.Platform)
	}
	target, ok := registry.Platform(req.To)
	if !ok {
		return nil, fmt.Errorf("unknown target platform %q", req.To)
	}
	if source.ID == target.ID {
		return nil, fmt.Errorf("source and target platform are both %s", source.ID)
	}
	if req.RetentionPercent < 0 || req.RetentionPercent > 100 {
		return nil, fmt.Errorf("retention must be between 0 and 100, got %g", req.RetentionPercent)
	}
	for id := range req.ToInputs {
		if _, ok := target.Input(id); !ok {
			return nil, fmt.Errorf("platform %s has no input %q", target.ID, id)
		}
	}

	retention := decimal.NewFromFloat(req.RetentionPercent).Div(decimal.NewFromInt(100))
	toInputs := target.Defaults()
	carried := []string{}
	for _, input := range target.Inputs {
		if input.Kind != domain.KindAudience && input.Kind != domain.KindVolume {
			continue
		}
		if _, ok := source.Input(input.ID); !ok {
			continue
		}
		if _, explicit := req.ToInputs[input.ID]; explicit {
			continue
		}
		toInputs[input.ID] = req.From.Inputs.Decimal(input.ID).Mul(retention).InexactFloat64()
		carried = append(carried, input.ID)
	}
	sort.Strings(carried)
	toInputs = toInputs.Merge(req.ToInputs)

	from := ce.CalcEngine.Calculate(calculation.Request{
		Platform: source.ID,
		Inputs:   req.From.Inputs,
		Region:   req.Region,
		Niche:    req.Niche,
	})
	to := ce.CalcEngine.Calculate(calculation.Request{
		Platform: target.ID,
		Inputs:   toInputs,
		Region:   req.Region,
		Niche:    req.Niche,
	})

	result := &SwitchResult{
		From:        from,
		To:          to,
		Carried:     carried,
		Retention:   retention,
		MonthlyDiff: to.Adjusted.MonthlyRevenue.Sub(from.Adjusted.MonthlyRevenue),
		PctChange:   percentChange(from.Adjusted.MonthlyRevenue, to.Adjusted.MonthlyRevenue),
	}
	result.Verdict = verdict(result, from.Adjusted.MonthlyRevenue)
	return result, nil
}

func verdict(result *SwitchResult, fromMonthly decimal.Decimal) string {
	if fromMonthly.IsZero() {
		if result.MonthlyDiff.IsPositive() {
			return VerdictSwitch
		}
		return VerdictSimilar
	}
	switch {
	case result.PctChange.GreaterThan(SimilarBandPercent):
		return VerdictSwitch
	case result.PctChange.LessThan(SimilarBandPercent.Neg()):
		return VerdictStay
	default:
		return VerdictSimilar
	}
}
