// Package verify checks function arguments with a fluent API and reports the
// failing parameter by name.
//
// Wrap the parameters in an anonymous struct and chain the checks you need:
//
//	func NewPool(name string, size int, dialer Dialer) (*Pool, error) {
//		err := verify.Args(struct {
//			Dialer Dialer
//			Name   string
//			Size   int
//		}{dialer, name, size}).NotNullOrEmpty().Positive().Err()
//		if err != nil {
//			return nil, err // e.g. "Size: value must be greater than 0"
//		}
//		...
//	}
//
// Every check applies to all fields whose type it understands: NotNull to
// pointers, interfaces, maps, slices, channels and funcs; NotEmpty to strings,
// collections and UUIDs; numeric checks to integers and floats; length checks to
// strings and collections. Fields are visited in alphabetical order and the first
// failure stops the chain. A nil holder passes every check.
//
// The eligible fields of each holder type are resolved once per check and cached
// for the lifetime of the process, so repeated calls from the same call site only
// pay for reading the fields.
//
// # Errors
//
// Failures are *ArgumentError values matching ErrValidationFailed plus one of
// ErrNull, ErrEmpty, ErrOutOfRange or ErrInvalidLength. FieldOf extracts the
// field name. Passing anything other than a struct yields ErrUnsupportedShape.
//
// # Configuration
//
// ConfigureFromEnv reads VERIFY_LOG_ENABLED, VERIFY_LOG_LEVEL, VERIFY_LOG_FORMAT
// and VERIFY_MESSAGES_FILE. The messages file is YAML mapping translation keys
// to templates, see validator.LoadMessages.
package verify
