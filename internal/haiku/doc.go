// Package haiku validates that the comments of a definition form a haiku:
// three lines of 5, 7 and 5 syllables.
//
// The host (an analysis pass, a CLI, a test) describes each candidate with a
// [Definition] and its raw comment lines with a [CommentBlock] and calls
// [Validator.Validate], which goes through these stages:
//
//  1. Selection. A [Selector] decides whether the definition is a subject at
//     all. Rejected definitions get a NotApplicable verdict.
//  2. Line count. Anything but three lines fails right away, syllables are not
//     counted then.
//  3. Syllables. Every line is cleaned up with [Normalize] and counted by a
//     [Counter].
//  4. Verdict. (5, 7, 5) passes, everything else fails.
//
// Failing verdicts carry a message built by [Message] that echoes the raw
// comment lines.
package haiku
