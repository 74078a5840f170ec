// Package compiler turns a Rule into shape-specialized validators.
//
// A Rule is a triple of an eligibility filter over field types, a failure
// predicate over field values and an error factory. Compile resolves the
// eligible fields of one holder shape ahead of time, so each Validate call only
// walks a precomputed list of field indexes:
//
//	rule := &compiler.Rule[struct{}]{
//	    Name:     "not_null",
//	    Eligible: func(t reflect.Type) bool { return t.Kind() == reflect.Pointer },
//	    Fails:    func(v reflect.Value, _ struct{}) bool { return v.IsNil() },
//	    Error:    func(field string, _ reflect.Value, _ struct{}) error { return fmt.Errorf("%s is nil", field) },
//	}
//
//	checks := compiler.NewCache(rule)
//	err := checks.Validate(struct{ Conn *sql.DB }{conn}, struct{}{})
//
// Fields are checked in alphabetical order and the first failure is returned.
// A nil holder passes every rule; shapes with no eligible fields compile to a
// validator that never fails.
//
// A bad rule or a holder that is not a struct yields a *ConfigurationError,
// which matches ErrConfiguration and the specific sentinel. Cache logs these
// failures at WARN.
//
// Cache keeps one Validator per shape for the lifetime of the process. Rule code
// runs outside of any cache lock, so predicates and error factories may trigger
// further validations.
package compiler
