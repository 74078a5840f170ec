package validator

import (
	"reflect"

	"github.com/dmitrymomot/verify/pkg/compiler"
)

type none = struct{}

var notNull = compiler.NewCache(&compiler.Rule[none]{
	Name:     "not_null",
	Eligible: nullable,
	Fails: func(v reflect.Value, _ none) bool {
		return v.IsNil()
	},
	Error: func(field string, _ reflect.Value, _ none) error {
		return newArgumentError(ErrNull, KeyNotNull, field, nil, nil)
	},
})

var notEmpty = compiler.NewCache(&compiler.Rule[none]{
	Name:     "not_empty",
	Eligible: emptiable,
	Fails: func(v reflect.Value, _ none) bool {
		v, ok := present(v)
		return ok && empty(v)
	},
	Error: func(field string, v reflect.Value, _ none) error {
		v, _ = present(v)
		return newArgumentError(ErrEmpty, KeyNotEmpty, field, v.Interface(), nil)
	},
})

// NotNull checks that no pointer, interface, map, slice, channel or func field of holder is nil.
func NotNull(holder any) error {
	return notNull.Validate(holder, none{})
}

// NotEmpty checks that no string, collection or UUID field of holder is empty.
// Nil fields are skipped; combine with NotNull to reject them.
func NotEmpty(holder any) error {
	return notEmpty.Validate(holder, none{})
}

// NotNullOrEmpty runs NotNull and then NotEmpty.
func NotNullOrEmpty(holder any) error {
	if err := NotNull(holder); err != nil {
		return err
	}
	return NotEmpty(holder)
}
