// Command copyflags is a standalone entry point for the copyflags applet.
package main

import (
	"os"

	"github.com/rcarmo/go-linecopy/pkg/applets/copyflags"
	"github.com/rcarmo/go-linecopy/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(copyflags.Run(stdio, os.Args[1:]))
}
