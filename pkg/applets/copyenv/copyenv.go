// Package copyenv implements the copyenv command, which reads the copy job
// from environment variables, optionally seeded from a dotenv file.
package copyenv

import (
	"errors"
	"io"
	"io/fs"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/rcarmo/go-linecopy/pkg/core"
	corefs "github.com/rcarmo/go-linecopy/pkg/core/fs"
	"github.com/rcarmo/go-linecopy/pkg/core/jobconfig"
)

const applet = "copyenv"

// DefaultEnvFile is read when present and --env-file is not given.
const DefaultEnvFile = ".env"

// Run executes the copyenv command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	flags := flag.NewFlagSet(applet, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}
	flags.BoolP("help", "h", false, "show this help message and exit")
	envFile := flags.StringP("env-file", "e", "", "dotenv file to read (default "+DefaultEnvFile+" when present)")
	prefix := flags.StringP("prefix", "p", jobconfig.DefaultPrefix, "variable name prefix")

	if core.HasHelp(args) {
		stdio.Printf("usage: %s [-e FILE] [-p PREFIX]\n\n"+
			"Copy lines as described by PREFIX{INPUT_FILE,RESULT_FILE,COUNT_LINES,WRITE_MODE}.\n"+
			"Variables already set in the environment win over the dotenv file.\n\noptions:\n%s",
			applet, flags.FlagUsages())
		return core.ExitSuccess
	}
	if err := flags.Parse(args); err != nil {
		return core.UsageError(stdio, applet, err.Error())
	}
	if flags.NArg() > 0 {
		return core.UsageError(stdio, applet, "extra operand '"+flags.Arg(0)+"'")
	}

	file, explicit := *envFile, flags.Changed("env-file")
	if !explicit {
		file = DefaultEnvFile
	}

	getenv := jobconfig.Getenv(os.Getenv)
	values, err := jobconfig.LoadEnvFile(corefs.Root(), file)
	switch {
	case err == nil:
		stdio.Logger().Debug("loaded dotenv file", "applet", applet, "path", file, "keys", len(values))
		getenv = jobconfig.Overlay(getenv, values)
	case explicit || !errors.Is(err, fs.ErrNotExist):
		var osErr *fs.PathError
		if errors.As(err, &osErr) {
			err = osErr.Err
		}
		return core.FileError(stdio, applet, file, err)
	}

	job, err := jobconfig.FromEnv(getenv, *prefix)
	if err != nil {
		stdio.Errorf("%s: %v\n", applet, err)
		return core.ExitFailure
	}
	return core.RunCopy(stdio, applet, job)
}
