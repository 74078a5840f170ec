package validator

import (
	"errors"

	"github.com/dmitrymomot/verify/pkg/compiler"
	"github.com/dmitrymomot/verify/pkg/shape"
)

// Validation failures. Every *ArgumentError matches ErrValidationFailed and one of the
// kind-specific sentinels below.
var (
	// ErrValidationFailed matches any argument validation failure.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNull is returned when a reference-like field is nil.
	ErrNull = errors.New("value is nil")

	// ErrEmpty is returned when a string, collection or UUID field is empty.
	ErrEmpty = errors.New("value is empty")

	// ErrOutOfRange is returned when a numeric field is outside the allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidLength is returned when a field has an invalid length.
	ErrInvalidLength = errors.New("invalid length")
)

// Configuration errors indicate a bug at the call site rather than bad input.
// ErrUnsupportedShape and ErrInvalidRule also match ErrConfiguration.
var (
	// ErrConfiguration matches any configuration error raised while compiling a rule.
	ErrConfiguration = compiler.ErrConfiguration

	// ErrUnsupportedShape is returned when the holder is not a struct or pointer to struct.
	ErrUnsupportedShape = shape.ErrUnsupportedShape

	// ErrInvalidRule is returned when a rule is missing its predicate or error factory.
	ErrInvalidRule = compiler.ErrInvalidRule

	// ErrInvalidMessages is returned when a message catalog cannot be loaded.
	ErrInvalidMessages = errors.New("invalid message catalog")
)
