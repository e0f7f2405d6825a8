package goal

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/creatorcalc/internal/calculation"
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/registry"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Solver finds the input value a creator needs to reach a revenue goal
type Solver struct {
	CalcEngine *calculation.CalculationEngine
	Options    SolverOptions
}

// NewSolver creates a new goal solver
func NewSolver(calcEngine *calculation.CalculationEngine, options SolverOptions) *Solver {
	if calcEngine == nil {
		calcEngine = calculation.NewCalculationEngine()
	}
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.CalculationEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Validate checks that the request names a known platform and input and a positive target
func (r Request) Validate() (domain.Platform, domain.PlatformInput, error) {
	platform, ok := registry.Platform(r.Platform)
	if !ok {
		return domain.Platform{}, domain.PlatformInput{}, &SolverError{
			Operation: "validate_request",
			Message:   fmt.Sprintf("unknown platform %q", r.Platform),
		}
	}
	input, ok := platform.Input(r.SolveFor)
	if !ok {
		return domain.Platform{}, domain.PlatformInput{}, &SolverError{
			Operation: "validate_request",
			Message:   fmt.Sprintf("platform %s has no input %q", platform.ID, r.SolveFor),
		}
	}
	if !r.TargetMonthly.IsPositive() {
		return domain.Platform{}, domain.PlatformInput{}, &SolverError{
			Operation: "validate_request",
			Message:   "target monthly revenue must be greater than zero",
		}
	}
	return platform, input, nil
}

// Solve binary searches the step grid of the requested input for the smallest value whose
// adjusted monthly revenue reaches the target. Revenue never decreases as an input grows,
// so the first passing grid point is the answer.
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	platform, input, err := req.Validate()
	if err != nil {
		return nil, err
	}
	req.Platform = platform.ID

	current := req.Inputs.Get(req.SolveFor)
	result := &Result{
		Request:        req,
		CurrentValue:   current,
		CurrentMonthly: s.monthly(req, current),
	}
	result.Progress = result.CurrentMonthly.Div(req.TargetMonthly).Mul(hundred)

	if result.CurrentMonthly.GreaterThanOrEqual(req.TargetMonthly) {
		result.Success = true
		result.AlreadyMet = true
		result.RequiredValue = current
		result.MonthlyAtRequired = result.CurrentMonthly
		result.Message = "Target already reached"
		return result, nil
	}

	grid := newStepGrid(input)
	// lo is never evaluated: it is at or below the current value, which misses the
	// target, or just below the input's minimum.
	lo := max(grid.floorIndex(current), grid.minIndex()-1)
	hi := grid.maxIndex()

	atMax := s.monthly(req, grid.value(hi))
	result.Iterations = 1
	if atMax.LessThan(req.TargetMonthly) {
		result.RequiredValue = grid.value(hi)
		result.MonthlyAtRequired = atMax
		result.Message = fmt.Sprintf("Target not reachable: %s at its maximum of %s earns $%s/month",
			input.Label, formatValue(input.Max), atMax.StringFixed(2))
		result.fillIncrease()
		return result, nil
	}
	monthlyAtHi := atMax

	for hi-lo > 1 {
		if result.Iterations >= s.maxIterations() {
			return nil, &SolverError{
				Operation: "solve",
				Message:   fmt.Sprintf("search did not converge after %d iterations", result.Iterations),
			}
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid := lo + (hi-lo)/2
		monthly := s.monthly(req, grid.value(mid))
		result.Iterations++
		if monthly.GreaterThanOrEqual(req.TargetMonthly) {
			hi = mid
			monthlyAtHi = monthly
		} else {
			lo = mid
		}
	}

	result.Success = true
	result.RequiredValue = grid.value(hi)
	result.MonthlyAtRequired = monthlyAtHi
	result.Message = fmt.Sprintf("Raise %s to %s", input.Label, formatValue(result.RequiredValue))
	result.fillIncrease()
	return result, nil
}

// monthly evaluates the adjusted monthly revenue with the solved input set to value.
func (s *Solver) monthly(req Request, value float64) decimal.Decimal {
	inputs := req.Inputs.Clone()
	if inputs == nil {
		inputs = domain.InputValues{}
	}
	inputs[req.SolveFor] = value
	return s.CalcEngine.Calculate(calculation.Request{
		Platform: req.Platform,
		Inputs:   inputs,
		Region:   req.Region,
		Niche:    req.Niche,
	}).Adjusted.MonthlyRevenue
}

func (s *Solver) maxIterations() int {
	if s.Options.MaxIterations <= 0 {
		return DefaultSolverOptions().MaxIterations
	}
	return s.Options.MaxIterations
}

func (r *Result) fillIncrease() {
	r.Increase = r.RequiredValue - r.CurrentValue
	if r.CurrentValue > 0 {
		r.IncreasePct = decimal.NewFromFloat(r.Increase).Div(decimal.NewFromFloat(r.CurrentValue)).Mul(hundred)
	}
}

// stepGrid maps integer indexes to step-aligned input values within [Min, Max]
type stepGrid struct {
	min, max, step decimal.Decimal
}

func newStepGrid(input domain.PlatformInput) stepGrid {
	step := decimal.NewFromFloat(input.Step)
	if !step.IsPositive() {
		step = decimal.NewFromInt(1)
	}
	return stepGrid{
		min:  decimal.NewFromFloat(input.Min),
		max:  decimal.NewFromFloat(input.Max),
		step: step,
	}
}

func (g stepGrid) floorIndex(v float64) int64 {
	return decimal.NewFromFloat(v).Div(g.step).Floor().IntPart()
}

func (g stepGrid) minIndex() int64 {
	return g.min.Div(g.step).Ceil().IntPart()
}

func (g stepGrid) maxIndex() int64 {
	return g.max.Div(g.step).Ceil().IntPart()
}

func (g stepGrid) value(i int64) float64 {
	v := decimal.NewFromInt(i).Mul(g.step)
	if v.LessThan(g.min) {
		v = g.min
	}
	if v.GreaterThan(g.max) {
		v = g.max
	}
	return v.InexactFloat64()
}

func formatValue(v float64) string {
	return decimal.NewFromFloat(v).String()
}
