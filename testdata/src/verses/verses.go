package verses

import "fmt"

// Doing some setup
// Setup is fine and dandy
// Then we rest again
func execute() {
	fmt.Println("slamming poetry...")
}

// Slams poetry badly.
func slam() { // want "Comments for function .slam. must be in the form of a haiku"
	fmt.Printf("%s\n", "slamming poetry...")
}

// Prints something dull.
func dull() {
	fmt.Println("nothing to see")
}

// Names poetry but does not say it.
func hush() {
	s := "poetry"
	_ = s
}

// Uses a custom stage.
func custom() { // want "Comments for function .custom. must be in the form of a haiku"
	func() {
		say("a poet speaks")
	}()
}

func say(string) {}
