// Package errors provides structured, actionable error messages for htmlgen.
//
// Every failure that reaches a user (a bad htmlgen.json, a malformed document
// description, an upload that was rejected) is reported as an *Error carrying
// a code, a plain-language explanation and, where possible, the location in
// the offending file and a hint on how to fix it.
//
// # Error Categories
//
//   - config: problems loading or validating htmlgen.json
//   - document: problems reading or building a document description
//   - serve: preview server failures
//   - publish: upload failures
//   - cli: bad command-line usage
//
// # Usage
//
//	err := errors.New("H021").
//	    WithLocation("docs/index.yaml", 14, 5).
//	    WithDetail(`block type "headline" is not recognized`).
//	    WithSuggestion("Use one of: heading, paragraph, list, table, ...")
//
//	fmt.Print(err.Format())
//	// Output:
//	// ERROR H021: Unknown block type
//	//
//	//   docs/index.yaml:14:5
//	//
//	//     12 │ body:
//	//     13 │   - heading: {level: 1, text: Hi}
//	//   → 14 │   - headline: oops
//	//        │     ^
//	//
//	//   Hint: Use one of: heading, paragraph, list, table, ...
package errors
