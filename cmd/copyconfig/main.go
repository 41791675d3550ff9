// Command copyconfig is a standalone entry point for the copyconfig applet.
package main

import (
	"os"

	"github.com/rcarmo/go-linecopy/pkg/applets/copyconfig"
	"github.com/rcarmo/go-linecopy/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(copyconfig.Run(stdio, os.Args[1:]))
}
