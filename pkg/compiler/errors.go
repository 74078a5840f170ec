package compiler

import "errors"

var (
	// ErrConfiguration matches every error caused by a bad rule or holder shape
	// rather than by the values being checked.
	ErrConfiguration = errors.New("validation configuration error")

	// ErrInvalidRule is returned when a rule lacks its failure predicate or error factory.
	ErrInvalidRule = errors.New("invalid rule: Fails and Error must be set")

	// ErrShapeMismatch is returned when a validator receives a holder of a different shape
	// than the one it was compiled for.
	ErrShapeMismatch = errors.New("holder does not match compiled shape")
)

// ConfigurationError wraps a compilation failure. It matches both the wrapped
// error and ErrConfiguration.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return e.Err.Error()
}

func (e *ConfigurationError) Unwrap() []error {
	return []error{e.Err, ErrConfiguration}
}
