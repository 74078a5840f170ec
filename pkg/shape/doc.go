// Package shape derives field metadata from holder types.
//
// A holder is a flat struct value, usually an anonymous struct literal built at
// the call site:
//
//	holder := struct {
//	    Name  string
//	    Limit int
//	}{name, limit}
//
// Fields returns the exported fields of such a type in alphabetical order, which
// keeps error reporting deterministic across calls and processes. The package
// never touches field values except through Field.Value and holds no state.
package shape
