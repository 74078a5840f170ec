package verify

import "github.com/dmitrymomot/verify/pkg/validator"

// Re-exported errors so callers only need to import this package.
var (
	ErrValidationFailed = validator.ErrValidationFailed
	ErrNull             = validator.ErrNull
	ErrEmpty            = validator.ErrEmpty
	ErrOutOfRange       = validator.ErrOutOfRange
	ErrInvalidLength    = validator.ErrInvalidLength
	ErrUnsupportedShape = validator.ErrUnsupportedShape
	ErrConfiguration    = validator.ErrConfiguration
)

// ArgumentError is the error returned for a failing field.
type ArgumentError = validator.ArgumentError

// NotNull checks that no reference-like field of holder is nil.
func NotNull(holder any) error {
	return Args(holder).NotNull().Err()
}

// NotEmpty checks that no string, collection or UUID field of holder is empty.
func NotEmpty(holder any) error {
	return Args(holder).NotEmpty().Err()
}

// NotNullOrEmpty runs NotNull and then NotEmpty.
func NotNullOrEmpty(holder any) error {
	return Args(holder).NotNullOrEmpty().Err()
}

// GreaterThan checks that every numeric field of holder is greater than min.
func GreaterThan(holder any, min float64) error {
	return Args(holder).GreaterThan(min).Err()
}

// FieldOf returns the name of the field that caused err.
func FieldOf(err error) string {
	return validator.FieldOf(err)
}
