// Package haikulint implements an analysis pass checking that doc comments
// of poetic functions are haiku.
//
// # Overview
//
// A function or method is poetic when it is selected by the configured
// policy:
//
//   - prefix: its name starts with a prefix, "poetic" by default;
//   - call: its body passes a string literal containing a marker, "poet" by
//     default, to an output function like fmt.Println or log.Printf;
//   - prefix-or-call and prefix-and-call combine both.
//
// The doc comment of a poetic function must have three lines of 5, 7 and 5
// syllables:
//
//	// Doing some setup
//	// Setup is fine and dandy
//	// Then we rest again
//	func poeticSetup() {
//	    fmt.Println("setting up the poem slam...")
//	}
//
// Syllables are estimated, so words the estimator gets wrong can be fixed
// with -override word=count or the overrides section of a -config file.
//
// # Comment lines
//
// Every // comment is a line and /* */ comments are split into lines.
// Directives (//go:noinline) and lines made of comment markers only are
// skipped. Poetic functions without doc comments are not reported unless
// -require-doc is set.
package haikulint
