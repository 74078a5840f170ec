package shape

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
)

// ErrUnsupportedShape is returned when a holder is not a flat struct value.
var ErrUnsupportedShape = errors.New("unsupported holder shape: expected struct or pointer to struct")

// Field describes a single exported field of a holder shape.
type Field struct {
	Name  string
	Type  reflect.Type
	Index []int
}

// Value reads the field from a dereferenced holder value.
func (f Field) Value(holder reflect.Value) reflect.Value {
	return holder.FieldByIndex(f.Index)
}

// Fields enumerates the exported fields of the struct type t (or the struct t points to),
// ordered by the byte order of their names. A struct without exported fields yields an empty slice.
func Fields(t reflect.Type) ([]Field, error) {
	t = Deref(t)
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedShape, t)
	}

	fields := make([]Field, 0, t.NumField())
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fields = append(fields, Field{
			Name:  sf.Name,
			Type:  sf.Type,
			Index: sf.Index,
		})
	}

	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Name < fields[j].Name
	})

	return fields, nil
}

// Of returns the dereferenced value of holder and whether the holder is present.
// A nil interface or a nil pointer at any depth counts as absent.
func Of(holder any) (reflect.Value, bool) {
	if holder == nil {
		return reflect.Value{}, false
	}

	v := reflect.ValueOf(holder)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}

	return v, true
}

// Deref strips every pointer level from t.
func Deref(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
