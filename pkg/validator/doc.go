// Package validator checks every field of a holder struct against a built-in rule
// and reports the first failing field by name.
//
// A holder is usually an anonymous struct literal assembled from the parameters
// of a constructor or method:
//
//	func NewClient(name string, timeout int, opts *Options) (*Client, error) {
//	    holder := struct {
//	        Name    string
//	        Opts    *Options
//	        Timeout int
//	    }{name, opts, timeout}
//
//	    if err := validator.NotNullOrEmpty(holder); err != nil {
//	        return nil, err
//	    }
//	    if err := validator.Positive(holder); err != nil {
//	        return nil, err
//	    }
//	    ...
//	}
//
// # Rules
//
// Each rule only looks at fields whose type it understands and ignores the rest:
//
//   - NotNull: pointers, interfaces, maps, slices, channels and funcs
//   - NotEmpty: strings, slices, maps, arrays, channels and UUIDs (uuid.Nil is empty)
//   - GreaterThan, LessThan, InRange and friends: integers and floats
//   - LengthGreaterThan, LengthInRange and friends: strings and collections; strings
//     are measured in runes after NFC normalization
//
// Single pointers to eligible types are followed. Nil values are skipped by every
// rule except NotNull. A nil holder passes every rule.
//
// # Architecture
//
// Every rule is a compiler.Rule with its own compiler.Cache, so the eligible fields
// of a holder type are resolved once and reused by all later calls for that type.
// The caches are safe for concurrent use and are never evicted.
//
// # Error Handling
//
// Failures are returned as *ArgumentError carrying the field name, the offending
// value and translation metadata. They match ErrValidationFailed and one of ErrNull,
// ErrEmpty, ErrOutOfRange or ErrInvalidLength with errors.Is. Holders that are not
// structs yield ErrUnsupportedShape.
//
// Message templates can be replaced from YAML with LoadMessages.
package validator
