package flagged

// Doing some setup
// Setup is fine and dandy
// Then we rest again
func verseSetup() {} // want "Comments for function .verseSetup. must be in the form of a haiku"

// Doing some
// setup
// again
func poeticIgnored() {}
