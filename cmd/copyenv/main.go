// Command copyenv is a standalone entry point for the copyenv applet.
package main

import (
	"os"

	"github.com/rcarmo/go-linecopy/pkg/applets/copyenv"
	"github.com/rcarmo/go-linecopy/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(copyenv.Run(stdio, os.Args[1:]))
}
