package compiler

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/verify/pkg/logger"
	"github.com/dmitrymomot/verify/pkg/shape"
)

type step struct {
	name  string
	index []int
}

// Validator is a rule compiled against a single holder shape.
// It is immutable and safe for concurrent use.
type Validator[A any] struct {
	rule  *Rule[A]
	shape reflect.Type
	steps []step
}

// Compile resolves the fields of t that are eligible for rule and bakes them into a Validator.
// t may be a struct type or a pointer to one.
func Compile[A any](rule *Rule[A], t reflect.Type) (*Validator[A], error) {
	if err := rule.validate(); err != nil {
		return nil, err
	}

	fields, err := shape.Fields(t)
	if err != nil {
		return nil, &ConfigurationError{Err: err}
	}

	steps := make([]step, 0, len(fields))
	for _, f := range fields {
		if rule.eligible(f.Type) {
			steps = append(steps, step{name: f.Name, index: f.Index})
		}
	}

	v := &Validator[A]{
		rule:  rule,
		shape: shape.Deref(t),
		steps: steps,
	}

	log().Debug("validator compiled",
		logger.Rule(rule.Name),
		logger.Shape(v.shape),
		logger.Fields(v.Fields()),
	)

	return v, nil
}

// Validate checks every eligible field of holder in alphabetical order and returns
// the error of the first one that fails. An absent holder passes.
func (v *Validator[A]) Validate(holder any, args A) error {
	rv, ok := shape.Of(holder)
	if !ok {
		return nil
	}
	return v.validate(rv, args)
}

func (v *Validator[A]) validate(rv reflect.Value, args A) error {
	if rv.Type() != v.shape {
		return &ConfigurationError{Err: fmt.Errorf("%w: compiled for %v, got %v", ErrShapeMismatch, v.shape, rv.Type())}
	}

	for _, s := range v.steps {
		fv := rv.FieldByIndex(s.index)
		if v.rule.Fails(fv, args) {
			return v.rule.Error(s.name, fv, args)
		}
	}

	return nil
}

// Shape returns the struct type the validator was compiled for.
func (v *Validator[A]) Shape() reflect.Type {
	return v.shape
}

// Fields returns the names of the checked fields in check order.
func (v *Validator[A]) Fields() []string {
	names := make([]string, len(v.steps))
	for i, s := range v.steps {
		names[i] = s.name
	}
	return names
}
