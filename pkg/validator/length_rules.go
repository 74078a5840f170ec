package validator

import (
	"reflect"

	"github.com/dmitrymomot/verify/pkg/compiler"
)

// lengthRule builds a cached rule over strings and collections. Nil values pass.
func lengthRule(name, key string, shown boundsShown, fails func(n int, b Bounds[int]) bool) *compiler.Cache[Bounds[int]] {
	return compiler.NewCache(&compiler.Rule[Bounds[int]]{
		Name:     name,
		Eligible: sized,
		Fails: func(v reflect.Value, b Bounds[int]) bool {
			v, ok := present(v)
			return ok && fails(length(v), b)
		},
		Error: func(field string, v reflect.Value, b Bounds[int]) error {
			v, _ = present(v)
			return newArgumentError(ErrInvalidLength, key, field, v.Interface(), shown.values(b.Min, b.Max))
		},
	})
}

var (
	lengthGreaterThan = lengthRule("length_greater_than", KeyLengthGreaterThan, showMin,
		func(n int, b Bounds[int]) bool { return n <= b.Min })
	lengthGreaterThanOrEqual = lengthRule("length_greater_than_or_equal", KeyLengthGreaterThanOrEqual, showMin,
		func(n int, b Bounds[int]) bool { return n < b.Min })
	lengthLessThan = lengthRule("length_less_than", KeyLengthLessThan, showMax,
		func(n int, b Bounds[int]) bool { return n >= b.Max })
	lengthLessThanOrEqual = lengthRule("length_less_than_or_equal", KeyLengthLessThanOrEqual, showMax,
		func(n int, b Bounds[int]) bool { return n > b.Max })
	lengthEqual = lengthRule("length_equal", KeyLengthEqual, showMin,
		func(n int, b Bounds[int]) bool { return n != b.Min })
	lengthInRange = lengthRule("length_in_range", KeyLengthInRange, showBoth,
		func(n int, b Bounds[int]) bool { return n < b.Min || n > b.Max })
)

// LengthGreaterThan checks that every string or collection field of holder is longer than min.
func LengthGreaterThan(holder any, min int) error {
	return lengthGreaterThan.Validate(holder, Bounds[int]{Min: min})
}

// LengthGreaterThanOrEqual checks that no string or collection field of holder is shorter than min.
func LengthGreaterThanOrEqual(holder any, min int) error {
	return lengthGreaterThanOrEqual.Validate(holder, Bounds[int]{Min: min})
}

// LengthLessThan checks that every string or collection field of holder is shorter than max.
func LengthLessThan(holder any, max int) error {
	return lengthLessThan.Validate(holder, Bounds[int]{Max: max})
}

// LengthLessThanOrEqual checks that no string or collection field of holder is longer than max.
func LengthLessThanOrEqual(holder any, max int) error {
	return lengthLessThanOrEqual.Validate(holder, Bounds[int]{Max: max})
}

// LengthEqual checks that every string or collection field of holder has exactly n elements.
func LengthEqual(holder any, n int) error {
	return lengthEqual.Validate(holder, Bounds[int]{Min: n})
}

// LengthInRange checks that every string or collection field length lies within [min, max].
func LengthInRange(holder any, min, max int) error {
	return lengthInRange.Validate(holder, Bounds[int]{Min: min, Max: max})
}
