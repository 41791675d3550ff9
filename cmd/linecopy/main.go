package main

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/rcarmo/go-linecopy/pkg/applets/accumulate"
	"github.com/rcarmo/go-linecopy/pkg/applets/copyargv"
	"github.com/rcarmo/go-linecopy/pkg/applets/copyconfig"
	"github.com/rcarmo/go-linecopy/pkg/applets/copyenv"
	"github.com/rcarmo/go-linecopy/pkg/applets/copyflags"
	"github.com/rcarmo/go-linecopy/pkg/applets/copyhardcoded"
	"github.com/rcarmo/go-linecopy/pkg/core"
)

type appletFunc func(stdio *core.Stdio, args []string) int

var applets = map[string]appletFunc{
	"accumulate":    accumulate.Run,
	"copyhardcoded": copyhardcoded.Run,
	"copyargv":      copyargv.Run,
	"copyflags":     copyflags.Run,
	"copyconfig":    copyconfig.Run,
	"copyenv":       copyenv.Run,
}

func main() {
	os.Exit(run(core.DefaultStdio(), os.Args))
}

func run(stdio *core.Stdio, argv []string) int {
	applet, name, args := resolveApplet(argv)
	if applet == "" {
		printAppletList(stdio)
		return core.ExitUsage
	}

	fn, ok := applets[applet]
	if !ok {
		stdio.Errorf("linecopy: applet not found: %s\n", applet)
		printAppletList(stdio)
		return core.ExitUsage
	}

	// Applets expect args without the applet name.
	stdio.Name = name
	return fn(stdio, args)
}

// resolveApplet returns the applet, the name it was invoked under and its
// arguments.
func resolveApplet(argv []string) (string, string, []string) {
	if len(argv) == 0 {
		return "", "", nil
	}

	// If invoked as "linecopy applet ..."
	if filepath.Base(argv[0]) == "linecopy" {
		if len(argv) < 2 {
			return "", "", nil
		}
		return argv[1], filepath.Join(filepath.Dir(argv[0]), argv[1]), argv[2:]
	}

	// If invoked as a symlink named after the applet
	return filepath.Base(argv[0]), argv[0], argv[1:]
}

func printAppletList(stdio *core.Stdio) {
	names := make([]string, 0, len(applets))
	for name := range applets {
		names = append(names, name)
	}
	sort.Strings(names)

	stdio.Println("Currently defined functions:")
	for _, name := range names {
		stdio.Print(" ", name)
	}
	stdio.Println()
}
