package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgehrsitz/creatorcalc/internal/registry"
)

// SolveEach runs a goal search for every input of the platform and picks the easiest
// lever: the reachable input needing the smallest relative increase.
func (s *Solver) SolveEach(ctx context.Context, req Request) (*MultiResult, error) {
	platform, ok := registry.Platform(req.Platform)
	if !ok {
		return nil, &SolverError{
			Operation: "solve_each",
			Message:   fmt.Sprintf("unknown platform %q", req.Platform),
		}
	}

	multi := &MultiResult{}
	for _, input := range platform.Inputs {
		one := req
		one.SolveFor = input.ID
		result, err := s.Solve(ctx, one)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			return nil, &SolverError{
				Operation: "solve_each",
				Message:   fmt.Sprintf("failed to solve for %s", input.ID),
				Cause:     err,
			}
		}
		multi.Results = append(multi.Results, *result)
	}

	for i := range multi.Results {
		r := &multi.Results[i]
		if !r.Success || r.AlreadyMet || r.CurrentValue <= 0 {
			continue
		}
		if multi.Easiest == nil || r.IncreasePct.LessThan(multi.Easiest.IncreasePct) {
			multi.Easiest = r
		}
	}

	multi.Recommendations = s.generateRecommendations(multi)
	return multi, nil
}

func (s *Solver) generateRecommendations(multi *MultiResult) []string {
	var recommendations []string

	for _, r := range multi.Results {
		if r.AlreadyMet {
			return []string{fmt.Sprintf("Current inputs already earn $%s/month, above the target",
				r.CurrentMonthly.StringFixed(2))}
		}
	}

	if multi.Easiest != nil {
		recommendations = append(recommendations,
			fmt.Sprintf("Easiest lever: raise %s from %s to %s (+%s%%)",
				multi.Easiest.Request.SolveFor,
				formatValue(multi.Easiest.CurrentValue),
				formatValue(multi.Easiest.RequiredValue),
				multi.Easiest.IncreasePct.StringFixed(0)))
	}

	var unreachable []string
	for _, r := range multi.Results {
		if !r.Success {
			unreachable = append(unreachable, r.Request.SolveFor)
		}
	}
	if len(unreachable) == len(multi.Results) && len(unreachable) > 0 {
		recommendations = append(recommendations,
			"No single input reaches the target on its own; combine levers or add another platform")
	} else if len(unreachable) > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Cannot reach the target alone: %v", unreachable))
	}

	return recommendations
}
