package poems

import "fmt"

// Doing some setup
// Setup is fine and dandy
// Then we rest again
func poeticSetup() {
	fmt.Println("setting up the poem slam...")
}

// Now do some important, poetic execution stuff
func poeticExecute() { // want "Comments for function .poeticExecute. must be in the form of a haiku"
	fmt.Println("slamming poetry...")
}

// setting up the poem slam
// setup complete
// waiting
func poetic_wrong() { // want `Comments for function .poetic_wrong.`
}

// Cleanup is not poetic at all, so it may ramble on
// for as many lines
// as it
// likes.
func cleanup() {}

func poeticUndocumented() {}

type stage struct{}

// Doing some setup
// Setup is fine
func (stage) poeticBow() { // want "Comments for method .poeticBow. must be in the form of a haiku"
}

// Doing some setup
// Setup is fine and dandy
// Then we rest again
//
//go:noinline
func poeticDirective() {}

/* Doing some setup
Setup is fine and dandy
Then we rest again */
func poeticBlock() {}
