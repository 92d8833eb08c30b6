// Package main is the entry point for the inspecto CLI.
package main

import "inspecto.dev/pkg/inspecto/cmd"

func main() {
	cmd.Execute()
}
