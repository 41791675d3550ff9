// Command copyhardcoded is a standalone entry point for the copyhardcoded applet.
package main

import (
	"os"

	"github.com/rcarmo/go-linecopy/pkg/applets/copyhardcoded"
	"github.com/rcarmo/go-linecopy/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(copyhardcoded.Run(stdio, os.Args[1:]))
}
