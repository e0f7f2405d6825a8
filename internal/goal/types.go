package goal

import (
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Request asks which value of one platform input reaches a monthly revenue target
type Request struct {
	Platform      string             `json:"platform"`
	Inputs        domain.InputValues `json:"inputs"`
	SolveFor      string             `json:"solveFor"`
	TargetMonthly decimal.Decimal    `json:"targetMonthly"`
	Region        string             `json:"region,omitempty"`
	Niche         string             `json:"niche,omitempty"`
}

// Result contains the outcome of a goal search
type Result struct {
	Request    Request `json:"request"`
	Success    bool    `json:"success"`
	AlreadyMet bool    `json:"alreadyMet"`
	Iterations int     `json:"iterations"`
	Message    string  `json:"message"`

	CurrentValue   float64         `json:"currentValue"`
	CurrentMonthly decimal.Decimal `json:"currentMonthly"`
	Progress       decimal.Decimal `json:"progress"` // current monthly as % of target

	// RequiredValue is the smallest step-aligned input value reaching the target,
	// or the input's maximum when the target is out of reach.
	RequiredValue     float64         `json:"requiredValue"`
	MonthlyAtRequired decimal.Decimal `json:"monthlyAtRequired"`
	Increase          float64         `json:"increase"`
	IncreasePct       decimal.Decimal `json:"increasePct"`
}

// MultiResult holds a goal search for every input of a platform
type MultiResult struct {
	Results         []Result `json:"results"`
	Easiest         *Result  `json:"easiest,omitempty"`
	Recommendations []string `json:"recommendations"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	MaxIterations int // Upper bound on revenue evaluations per search
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{MaxIterations: 64}
}

// SolverError represents errors from the goal solver
type SolverError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *SolverError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *SolverError) Unwrap() error {
	return e.Cause
}
