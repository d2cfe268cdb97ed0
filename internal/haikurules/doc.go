// Package haikurules defines the HKU-series rule codes reported by haikulint.
//
// Every failing verdict carries exactly one rule, so diagnostics can be
// filtered by category and tooling can tell a comment with the wrong number
// of lines from one with the wrong rhythm.
//
// Rule codes follow the format “HKU<NNN>: <Name>”:
//
//	001–099  Structure of the comment block
//	100–199  Syllable rhythm
//
// Example:
//
//	haikurules.HKU001LineCount.String()      → "HKU001: LineCount"
//	haikurules.HKU001LineCount.Description() → "Haiku comments must have exactly three lines."
//
// Rule identifiers are stable; never renumber existing codes.
package haikurules
