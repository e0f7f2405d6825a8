package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/rgehrsitz/creatorcalc/internal/calculation"
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patreonRequest(target int64) Request {
	return Request{
		Platform:      "patreon",
		Inputs:        domain.InputValues{"patrons": 100, "avgPledge": 5},
		SolveFor:      "patrons",
		TargetMonthly: decimal.NewFromInt(target),
	}
}

func TestNewDefaultSolver(t *testing.T) {
	calcEngine := calculation.NewCalculationEngine()

	solver := NewDefaultSolver(calcEngine)

	assert.Same(t, calcEngine, solver.CalcEngine)
	assert.Equal(t, DefaultSolverOptions(), solver.Options)
	assert.NotNil(t, NewSolver(nil, SolverOptions{}).CalcEngine)
}

func TestSolve_Reachable(t *testing.T) {
	solver := NewDefaultSolver(nil)

	result, err := solver.Solve(context.Background(), patreonRequest(900))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.AlreadyMet)
	// 200 patrons * $5 * 0.90 = $900
	assert.Equal(t, 200.0, result.RequiredValue)
	assert.True(t, result.MonthlyAtRequired.Equal(decimal.NewFromInt(900)), "monthly %s", result.MonthlyAtRequired)
	assert.True(t, result.CurrentMonthly.Equal(decimal.NewFromInt(450)))
	assert.True(t, result.Progress.Equal(decimal.NewFromInt(50)), "progress %s", result.Progress)
	assert.Equal(t, 100.0, result.Increase)
	assert.True(t, result.IncreasePct.Equal(decimal.NewFromInt(100)))
	assert.Greater(t, result.Iterations, 1)
	assert.Contains(t, result.Message, "Raise Patrons to 200")
}

func TestSolve_RoundsUpToStep(t *testing.T) {
	solver := NewDefaultSolver(nil)

	tests := []struct {
		name     string
		req      Request
		expected float64
	}{
		{
			// 2.7 per patron in the global region: 333.3 patrons rounds up to 340
			name: "region multiplier",
			req: Request{
				Platform: "patreon", Inputs: domain.InputValues{"patrons": 100, "avgPledge": 5},
				SolveFor: "patrons", TargetMonthly: decimal.NewFromInt(900), Region: "global",
			},
			expected: 340,
		},
		{
			// 13 paying subscribers need 260 on the list, the next step is 300
			name: "floored paying members",
			req: Request{
				Platform: "substack", Inputs: domain.InputValues{"subscribers": 100, "paidPercent": 5, "subPrice": 8},
				SolveFor: "subscribers", TargetMonthly: decimal.NewFromInt(90),
			},
			expected: 300,
		},
		{
			// below the input minimum the search starts at the first step inside the range
			name: "current below minimum",
			req: Request{
				Platform: "youtube", Inputs: domain.InputValues{"monthlyViews": 1_000_000},
				SolveFor: "cpm", TargetMonthly: decimal.NewFromInt(550),
			},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := solver.Solve(context.Background(), tt.req)
			require.NoError(t, err)
			assert.True(t, result.Success)
			assert.Equal(t, tt.expected, result.RequiredValue)
			assert.True(t, result.MonthlyAtRequired.GreaterThanOrEqual(tt.req.TargetMonthly))
		})
	}
}

func TestSolve_AlreadyMet(t *testing.T) {
	solver := NewDefaultSolver(nil)

	result, err := solver.Solve(context.Background(), patreonRequest(100))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, result.AlreadyMet)
	assert.Equal(t, 100.0, result.RequiredValue)
	assert.True(t, result.Progress.Equal(decimal.NewFromInt(450)))
	assert.Zero(t, result.Iterations)
}

func TestSolve_Unreachable(t *testing.T) {
	solver := NewDefaultSolver(nil)

	result, err := solver.Solve(context.Background(), patreonRequest(1_000_000))
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, 100000.0, result.RequiredValue)
	assert.True(t, result.MonthlyAtRequired.Equal(decimal.NewFromInt(450000)), "monthly at max %s", result.MonthlyAtRequired)
	assert.Contains(t, result.Message, "not reachable")
}

func TestSolve_Validation(t *testing.T) {
	solver := NewDefaultSolver(nil)

	tests := []struct {
		name   string
		modify func(*Request)
		want   string
	}{
		{"unknown platform", func(r *Request) { r.Platform = "myspace" }, "unknown platform"},
		{"unknown input", func(r *Request) { r.SolveFor = "likes" }, `no input "likes"`},
		{"zero target", func(r *Request) { r.TargetMonthly = decimal.Zero }, "greater than zero"},
		{"negative target", func(r *Request) { r.TargetMonthly = decimal.NewFromInt(-5) }, "greater than zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := patreonRequest(900)
			tt.modify(&req)

			result, err := solver.Solve(context.Background(), req)
			assert.Nil(t, result)
			var solverErr *SolverError
			require.True(t, errors.As(err, &solverErr), "expected SolverError, got %T", err)
			assert.Equal(t, "validate_request", solverErr.Operation)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSolve_ContextCancelled(t *testing.T) {
	solver := NewDefaultSolver(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.Solve(ctx, patreonRequest(900))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolve_IterationLimit(t *testing.T) {
	solver := NewSolver(nil, SolverOptions{MaxIterations: 2})

	_, err := solver.Solve(context.Background(), patreonRequest(900))
	var solverErr *SolverError
	require.True(t, errors.As(err, &solverErr))
	assert.Contains(t, err.Error(), "did not converge")
}

func TestSolveEach(t *testing.T) {
	solver := NewDefaultSolver(nil)

	req := Request{
		Platform:      "patreon",
		Inputs:        domain.InputValues{"patrons": 100, "avgPledge": 6},
		TargetMonthly: decimal.NewFromInt(900),
	}

	multi, err := solver.SolveEach(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, multi.Results, 2)

	// patrons: 170 (+70%), avgPledge: 10 (+67%)
	assert.Equal(t, 170.0, multi.Results[0].RequiredValue)
	assert.Equal(t, 10.0, multi.Results[1].RequiredValue)
	require.NotNil(t, multi.Easiest)
	assert.Equal(t, "avgPledge", multi.Easiest.Request.SolveFor)
	require.NotEmpty(t, multi.Recommendations)
	assert.Equal(t, "Easiest lever: raise avgPledge from 6 to 10 (+67%)", multi.Recommendations[0])
}

func TestSolveEach_Unreachable(t *testing.T) {
	solver := NewDefaultSolver(nil)

	multi, err := solver.SolveEach(context.Background(), patreonRequest(10_000_000))
	require.NoError(t, err)
	assert.Nil(t, multi.Easiest)
	assert.Contains(t, multi.Recommendations, "No single input reaches the target on its own; combine levers or add another platform")

	_, err = solver.SolveEach(context.Background(), Request{Platform: "vine", TargetMonthly: decimal.NewFromInt(1)})
	assert.Error(t, err)
}

func TestSolverError(t *testing.T) {
	cause := errors.New("boom")
	err := &SolverError{Operation: "solve", Message: "failed", Cause: cause}

	assert.Equal(t, "solve: failed: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "solve: failed", (&SolverError{Operation: "solve", Message: "failed"}).Error())
}
