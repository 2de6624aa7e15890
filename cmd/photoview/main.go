// Package main is the entry point for the photo table window.
package main

import (
	"os"

	"photoview/launcher"
)

func main() {
	os.Exit(launcher.Run("photoview", os.Args[1:], launcher.LayoutTable))
}
