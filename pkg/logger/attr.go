package logger

import (
	"log/slog"
	"reflect"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Rule records a validation rule name under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Shape records a holder type under the key "shape".
// If t is nil, it returns an empty Attr.
func Shape(t reflect.Type) slog.Attr {
	if t == nil {
		return slog.Attr{}
	}
	return slog.String("shape", t.String())
}

// Fields records field names under the key "fields".
func Fields(names []string) slog.Attr {
	return slog.Any("fields", names)
}

// Component records the emitting package under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
