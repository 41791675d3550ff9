// Command copyargv is a standalone entry point for the copyargv applet.
package main

import (
	"os"

	"github.com/rcarmo/go-linecopy/pkg/applets/copyargv"
	"github.com/rcarmo/go-linecopy/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(copyargv.Run(stdio, os.Args[1:]))
}
