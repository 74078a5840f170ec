package validator

import (
	"math"
	"reflect"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

var uuidType = reflect.TypeOf(uuid.UUID{})

// nullable reports whether values of t can be nil.
func nullable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

func elem(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

// numeric accepts signed and unsigned integers, floats and single pointers to them.
func numeric(t reflect.Type) bool {
	switch elem(t).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// isUUID matches uuid.UUID and any named type sharing its [16]byte layout.
func isUUID(t reflect.Type) bool {
	return t.Kind() == reflect.Array && t.ConvertibleTo(uuidType)
}

// sized accepts types with a length: strings, slices, maps, arrays and channels,
// and single pointers to them. UUIDs are excluded since their length is fixed.
func sized(t reflect.Type) bool {
	t = elem(t)
	switch t.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Chan:
		return true
	case reflect.Array:
		return !isUUID(t)
	default:
		return false
	}
}

func emptiable(t reflect.Type) bool {
	return sized(t) || isUUID(elem(t))
}

// present dereferences v and reports whether there is a value to check.
// Nil pointers, slices, maps and channels are left to NotNull.
func present(v reflect.Value) (reflect.Value, bool) {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Chan:
		return v, !v.IsNil()
	default:
		return v, true
	}
}

func empty(v reflect.Value) bool {
	if isUUID(v.Type()) {
		return v.Convert(uuidType).Interface().(uuid.UUID) == uuid.Nil
	}
	return v.Len() == 0
}

// length returns the element count of v. Strings are measured in runes of
// their NFC form so that composed and decomposed input agree.
func length(v reflect.Value) int {
	if v.Kind() == reflect.String {
		return utf8.RuneCountInString(norm.NFC.String(v.String()))
	}
	return v.Len()
}

// compareNumber compares a numeric value with bound, returning -1, 0 or +1.
// The second result is false for NaN, which is unordered and never fails a check.
func compareNumber(v reflect.Value, bound float64) (int, bool) {
	if math.IsNaN(bound) {
		return 0, false
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return compareInt(v.Int(), bound), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return compareUint(v.Uint(), bound), true
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if v.Kind() == reflect.Float32 {
			// Compare at the field's precision so float32(0.1) equals a bound of 0.1.
			bound = float64(float32(bound))
		}
		switch {
		case math.IsNaN(f):
			return 0, false
		case f < bound:
			return -1, true
		case f > bound:
			return 1, true
		default:
			return 0, true
		}
	default:
		return 0, false
	}
}

// compareInt avoids converting i to float64, which loses precision above 2^53.
func compareInt(i int64, bound float64) int {
	switch {
	case bound >= math.MaxInt64:
		return -1
	case bound < math.MinInt64:
		return 1
	}

	floor := math.Floor(bound)
	b := int64(floor)
	switch {
	case i < b:
		return -1
	case i > b:
		return 1
	case floor < bound:
		return -1
	default:
		return 0
	}
}

func compareUint(u uint64, bound float64) int {
	switch {
	case bound < 0:
		return 1
	case bound >= math.MaxUint64:
		return -1
	}

	floor := math.Floor(bound)
	b := uint64(floor)
	switch {
	case u < b:
		return -1
	case u > b:
		return 1
	case floor < bound:
		return -1
	default:
		return 0
	}
}
