// Package errors provides structured, actionable error messages for Puerro.
//
// Reconciliation against a live tree can fail when the caller hands the
// differ a slot that does not exist; instead of surfacing a host panic,
// those failures are reported as coded errors.
//
// # Error Categories
//
// Errors are organized into categories:
//   - reconcile: diff/apply errors (missing child slot, nil parent)
//   - render: HTML serialization errors
//   - config: configuration file or environment errors
//   - cli: command-line usage errors
//
// # Error Codes
//
// Each registered error has a unique code (e.g., "E001") that maps to a
// short message, a detailed explanation, and a documentation URL.
//
// # Usage
//
//	err := errors.New("E001").
//	    WithDetail("diff asked to remove child 3 of a <ul> with 2 children").
//	    WithSuggestion("Check that the previous virtual tree matches the live tree")
//
//	fmt.Println(err.Format())
package errors
