// Package main is the entry point for the betterer CLI.
package main

import "github.com/manbearwiz/betterer/cmd"

func main() {
	cmd.Execute()
}
