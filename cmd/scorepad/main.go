package main

import (
	"github.com/ewhitmore/scorepad-go/internal/cli"
)

func main() {
	cli.Execute()
}
