package main

import (
	"github.com/sirkon/haikulint/internal/cli"
)

func main() {
	cli.Execute()
}
