// Command accumulate is a standalone entry point for the accumulate applet.
package main

import (
	"os"

	"github.com/rcarmo/go-linecopy/pkg/applets/accumulate"
	"github.com/rcarmo/go-linecopy/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(accumulate.Run(stdio, os.Args[1:]))
}
