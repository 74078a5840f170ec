package validator

import (
	"reflect"

	"github.com/dmitrymomot/verify/pkg/compiler"
)

// Bounds carries the limits passed to range and length rules.
type Bounds[T int | float64] struct {
	Min T
	Max T
}

type boundsShown int

const (
	showMin boundsShown = iota
	showMax
	showBoth
)

func (b boundsShown) values(min, max any) map[string]any {
	switch b {
	case showMin:
		return map[string]any{"min": min}
	case showMax:
		return map[string]any{"max": max}
	default:
		return map[string]any{"min": min, "max": max}
	}
}

// numericRule builds a cached rule over integer and float fields. fails receives
// the comparison results against Min and Max; nil pointers and NaN values pass.
func numericRule(name, key string, shown boundsShown, fails func(cmpMin, cmpMax int) bool) *compiler.Cache[Bounds[float64]] {
	return compiler.NewCache(&compiler.Rule[Bounds[float64]]{
		Name:     name,
		Eligible: numeric,
		Fails: func(v reflect.Value, b Bounds[float64]) bool {
			v, ok := present(v)
			if !ok {
				return false
			}
			cmpMin, okMin := compareNumber(v, b.Min)
			cmpMax, okMax := compareNumber(v, b.Max)
			switch shown {
			case showMin:
				return okMin && fails(cmpMin, 0)
			case showMax:
				return okMax && fails(0, cmpMax)
			default:
				return okMin && okMax && fails(cmpMin, cmpMax)
			}
		},
		Error: func(field string, v reflect.Value, b Bounds[float64]) error {
			v, _ = present(v)
			return newArgumentError(ErrOutOfRange, key, field, v.Interface(), shown.values(b.Min, b.Max))
		},
	})
}

var (
	greaterThan = numericRule("greater_than", KeyGreaterThan, showMin,
		func(cmpMin, _ int) bool { return cmpMin <= 0 })
	greaterThanOrEqual = numericRule("greater_than_or_equal", KeyGreaterThanOrEqual, showMin,
		func(cmpMin, _ int) bool { return cmpMin < 0 })
	lessThan = numericRule("less_than", KeyLessThan, showMax,
		func(_, cmpMax int) bool { return cmpMax >= 0 })
	lessThanOrEqual = numericRule("less_than_or_equal", KeyLessThanOrEqual, showMax,
		func(_, cmpMax int) bool { return cmpMax > 0 })
	inRange = numericRule("in_range", KeyInRange, showBoth,
		func(cmpMin, cmpMax int) bool { return cmpMin < 0 || cmpMax > 0 })
)

// GreaterThan checks that every numeric field of holder is greater than min.
func GreaterThan(holder any, min float64) error {
	return greaterThan.Validate(holder, Bounds[float64]{Min: min})
}

// GreaterThanOrEqual checks that every numeric field of holder is at least min.
func GreaterThanOrEqual(holder any, min float64) error {
	return greaterThanOrEqual.Validate(holder, Bounds[float64]{Min: min})
}

// LessThan checks that every numeric field of holder is less than max.
func LessThan(holder any, max float64) error {
	return lessThan.Validate(holder, Bounds[float64]{Max: max})
}

// LessThanOrEqual checks that every numeric field of holder is at most max.
func LessThanOrEqual(holder any, max float64) error {
	return lessThanOrEqual.Validate(holder, Bounds[float64]{Max: max})
}

// InRange checks that every numeric field of holder lies within [min, max].
func InRange(holder any, min, max float64) error {
	return inRange.Validate(holder, Bounds[float64]{Min: min, Max: max})
}

// Positive checks that every numeric field of holder is greater than zero.
func Positive(holder any) error {
	return GreaterThan(holder, 0)
}

// NotNegative checks that no numeric field of holder is below zero.
func NotNegative(holder any) error {
	return GreaterThanOrEqual(holder, 0)
}

// Negative checks that every numeric field of holder is less than zero.
func Negative(holder any) error {
	return LessThan(holder, 0)
}

// NotPositive checks that no numeric field of holder is above zero.
func NotPositive(holder any) error {
	return LessThanOrEqual(holder, 0)
}
