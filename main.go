// Package main is the entry point for the cmerge CLI.
package main

import "cmerge.dev/pkg/cmerge/cmd"

func main() {
	cmd.Execute()
}
