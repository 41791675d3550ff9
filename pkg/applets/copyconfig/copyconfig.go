// Package copyconfig implements the copyconfig command, which reads the copy
// job from an INI or HCL file.
package copyconfig

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/rcarmo/go-linecopy/pkg/core"
	corefs "github.com/rcarmo/go-linecopy/pkg/core/fs"
	"github.com/rcarmo/go-linecopy/pkg/core/jobconfig"
)

const applet = "copyconfig"

// DefaultFile is looked up beside the program when -c is not given.
const DefaultFile = "sample_config.ini"

// DefaultPath returns DefaultFile in the directory of the invoked program.
func DefaultPath(prog string) string {
	if prog == "" {
		return DefaultFile
	}
	return filepath.Join(filepath.Dir(prog), DefaultFile)
}

// Run executes the copyconfig command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	flags := flag.NewFlagSet(applet, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}
	flags.BoolP("help", "h", false, "show this help message and exit")
	path := flags.StringP("config", "c", "", "job file (.ini, .hcl or .json); default "+DefaultFile+" beside the program")

	if core.HasHelp(args) {
		stdio.Printf("usage: %s [-c FILE]\n\nCopy lines as described by the [%s] section of a job file.\n\noptions:\n%s",
			applet, jobconfig.Section, flags.FlagUsages())
		return core.ExitSuccess
	}
	if err := flags.Parse(args); err != nil {
		return core.UsageError(stdio, applet, err.Error())
	}
	if flags.NArg() > 0 {
		return core.UsageError(stdio, applet, "extra operand '"+flags.Arg(0)+"'")
	}

	file := *path
	if file == "" {
		file = DefaultPath(stdio.Name)
	}
	stdio.Logger().Debug("loading job file", "applet", applet, "path", file, "format", jobconfig.FormatOf(file))

	job, err := jobconfig.LoadFile(corefs.Root(), file)
	if err != nil {
		var osErr *fs.PathError
		if errors.As(err, &osErr) {
			err = osErr.Err
		}
		return core.FileError(stdio, applet, file, err)
	}
	return core.RunCopy(stdio, applet, job)
}
