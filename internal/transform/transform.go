package transform

import (
	"fmt"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
)

// ScenarioTransform is one what-if edit of a scenario, such as growing an audience,
// raising prices or adding a platform. Apply returns a new scenario and leaves its
// argument untouched.
type ScenarioTransform interface {
	Apply(base *domain.Scenario) (*domain.Scenario, error)

	// Name is the registry key, e.g. "scale_input"
	Name() string

	Description() string

	// Validate reports whether the edit can be made to base, without making it.
	Validate(base *domain.Scenario) error
}

// ApplyTransforms runs transforms in order, each one seeing the previous one's output.
// With no transforms it returns a copy of base.
func ApplyTransforms(base *domain.Scenario, transforms []ScenarioTransform) (*domain.Scenario, error) {
	if base == nil {
		return nil, fmt.Errorf("no scenario to edit")
	}
	if len(transforms) == 0 {
		return base.DeepCopy(), nil
	}

	current := base
	for i, t := range transforms {
		if t == nil {
			return nil, fmt.Errorf("edit %d of %d is missing", i+1, len(transforms))
		}
		if err := t.Validate(current); err != nil {
			return nil, fmt.Errorf("cannot apply %s: %w", t.Name(), err)
		}
		next, err := t.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("applying %s: %w", t.Name(), err)
		}
		current = next
	}
	return current, nil
}

// TransformError describes an edit that was rejected or could not be made
type TransformError struct {
	TransformName string
	Operation     string // "validate" or "apply"
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	msg := fmt.Sprintf("%s %s: %s", e.TransformName, e.Operation, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TransformError) Unwrap() error { return e.Err }

func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}
