// Package main is the entry point for the washclub CLI.
package main

import (
	"washclub/cli/cmd"
)

func main() {
	cmd.Execute()
}
