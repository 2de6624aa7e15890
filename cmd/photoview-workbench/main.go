// Package main is the entry point for the tabbed photo workbench.
package main

import (
	"os"

	"photoview/launcher"
)

func main() {
	os.Exit(launcher.Run("photoview-workbench", os.Args[1:], launcher.LayoutTabbed))
}
