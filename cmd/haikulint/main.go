// Command haikulint reports poetic functions whose doc comments are not haiku.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/sirkon/haikulint"
)

func main() {
	singlechecker.Main(haikulint.Analyzer)
}
