// Package main is the entry point for the ramlnav inspection tool.
package main

import "github.com/dshills/ramlnav/internal/cli"

func main() {
	cli.Execute()
}
