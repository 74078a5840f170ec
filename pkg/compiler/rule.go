package compiler

import "reflect"

// Rule describes a check applied uniformly to every eligible field of a holder.
// A is the type of the extra arguments passed along with the holder, such as bounds.
type Rule[A any] struct {
	// Name identifies the rule in logs.
	Name string

	// Eligible reports whether fields of the given type are checked. Nil means all fields.
	Eligible func(t reflect.Type) bool

	// Fails reports whether the field value violates the rule.
	Fails func(v reflect.Value, args A) bool

	// Error builds the error returned for the first failing field.
	Error func(field string, v reflect.Value, args A) error
}

func (r *Rule[A]) validate() error {
	if r == nil || r.Fails == nil || r.Error == nil {
		return &ConfigurationError{Err: ErrInvalidRule}
	}
	return nil
}

func (r *Rule[A]) eligible(t reflect.Type) bool {
	return r.Eligible == nil || r.Eligible(t)
}
