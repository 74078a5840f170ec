package verify

import "github.com/dmitrymomot/verify/pkg/validator"

// Arguments wraps a holder for chained checks. The first failing check is recorded
// and every later check on the same handle is skipped.
type Arguments struct {
	holder any
	err    error
}

// Args wraps holder, a struct or pointer to struct whose exported fields are the
// values to check. A nil holder passes every check.
func Args(holder any) *Arguments {
	return &Arguments{holder: holder}
}

// Holder returns the wrapped holder.
func (a *Arguments) Holder() any {
	return a.holder
}

// Err returns the first failure, or nil if every check so far passed.
func (a *Arguments) Err() error {
	return a.err
}

// Must panics with the first failure, if any.
func (a *Arguments) Must() {
	if a.err != nil {
		panic(a.err)
	}
}

func (a *Arguments) check(fn func(holder any) error) *Arguments {
	if a.err == nil {
		a.err = fn(a.holder)
	}
	return a
}

// NotNull checks that no reference-like field is nil.
func (a *Arguments) NotNull() *Arguments {
	return a.check(validator.NotNull)
}

// NotEmpty checks that no string, collection or UUID field is empty.
func (a *Arguments) NotEmpty() *Arguments {
	return a.check(validator.NotEmpty)
}

// NotNullOrEmpty chains NotNull and NotEmpty.
func (a *Arguments) NotNullOrEmpty() *Arguments {
	return a.NotNull().NotEmpty()
}

// GreaterThan checks that numeric fields are greater than min.
func (a *Arguments) GreaterThan(min float64) *Arguments {
	return a.check(func(h any) error { return validator.GreaterThan(h, min) })
}

// GreaterThanOrEqual checks that numeric fields are at least min.
func (a *Arguments) GreaterThanOrEqual(min float64) *Arguments {
	return a.check(func(h any) error { return validator.GreaterThanOrEqual(h, min) })
}

// LessThan checks that numeric fields are less than max.
func (a *Arguments) LessThan(max float64) *Arguments {
	return a.check(func(h any) error { return validator.LessThan(h, max) })
}

// LessThanOrEqual checks that numeric fields are at most max.
func (a *Arguments) LessThanOrEqual(max float64) *Arguments {
	return a.check(func(h any) error { return validator.LessThanOrEqual(h, max) })
}

// InRange checks numeric fields against the inclusive range [min, max].
func (a *Arguments) InRange(min, max float64) *Arguments {
	return a.check(func(h any) error { return validator.InRange(h, min, max) })
}

// Positive checks that numeric fields are greater than zero.
func (a *Arguments) Positive() *Arguments {
	return a.GreaterThan(0)
}

// NotNegative checks that numeric fields are not below zero.
func (a *Arguments) NotNegative() *Arguments {
	return a.GreaterThanOrEqual(0)
}

// Negative checks that numeric fields are less than zero.
func (a *Arguments) Negative() *Arguments {
	return a.LessThan(0)
}

// NotPositive checks that numeric fields are not above zero.
func (a *Arguments) NotPositive() *Arguments {
	return a.LessThanOrEqual(0)
}

// LengthGreaterThan checks that string and collection lengths exceed min.
func (a *Arguments) LengthGreaterThan(min int) *Arguments {
	return a.check(func(h any) error { return validator.LengthGreaterThan(h, min) })
}

// LengthGreaterThanOrEqual checks that string and collection lengths are at least min.
func (a *Arguments) LengthGreaterThanOrEqual(min int) *Arguments {
	return a.check(func(h any) error { return validator.LengthGreaterThanOrEqual(h, min) })
}

// LengthLessThan checks that string and collection lengths are below max.
func (a *Arguments) LengthLessThan(max int) *Arguments {
	return a.check(func(h any) error { return validator.LengthLessThan(h, max) })
}

// LengthLessThanOrEqual checks that string and collection lengths are at most max.
func (a *Arguments) LengthLessThanOrEqual(max int) *Arguments {
	return a.check(func(h any) error { return validator.LengthLessThanOrEqual(h, max) })
}

// LengthEqual checks that string and collection lengths equal n.
func (a *Arguments) LengthEqual(n int) *Arguments {
	return a.check(func(h any) error { return validator.LengthEqual(h, n) })
}

// LengthInRange checks string and collection lengths against the inclusive range [min, max].
func (a *Arguments) LengthInRange(min, max int) *Arguments {
	return a.check(func(h any) error { return validator.LengthInRange(h, min, max) })
}
