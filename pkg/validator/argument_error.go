package validator

import "errors"

// ArgumentError describes the first field of a holder that failed a check.
type ArgumentError struct {
	Field             string
	Value             any
	Message           string
	TranslationKey    string
	TranslationValues map[string]any

	// Kind is one of ErrNull, ErrEmpty, ErrOutOfRange or ErrInvalidLength.
	Kind error
}

func (e *ArgumentError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ArgumentError) Unwrap() []error {
	return []error{e.Kind, ErrValidationFailed}
}

func newArgumentError(kind error, key, field string, value any, values map[string]any) *ArgumentError {
	tv := make(map[string]any, len(values)+1)
	for k, v := range values {
		tv[k] = v
	}
	tv["field"] = field

	return &ArgumentError{
		Field:             field,
		Value:             value,
		Message:           messages.render(key, tv),
		TranslationKey:    key,
		TranslationValues: tv,
		Kind:              kind,
	}
}

// AsArgumentError extracts an *ArgumentError from err.
func AsArgumentError(err error) (*ArgumentError, bool) {
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return argErr, true
	}
	return nil, false
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}

// FieldOf returns the name of the field that caused err, or an empty string
// if err is not a validation failure.
func FieldOf(err error) string {
	if argErr, ok := AsArgumentError(err); ok {
		return argErr.Field
	}
	return ""
}
