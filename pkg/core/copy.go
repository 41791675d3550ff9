package core

import (
	"errors"
	"io/fs"

	corefs "github.com/rcarmo/go-linecopy/pkg/core/fs"
	"github.com/rcarmo/go-linecopy/pkg/core/linecopy"
)

// RunCopy runs job against the active filesystem and reports failures the
// way the file applets do.
func RunCopy(stdio *Stdio, applet string, job linecopy.Job) int {
	log := stdio.Logger().With("applet", applet)
	log.Debug("copy job resolved",
		"input", job.Source,
		"result", job.Destination,
		"lines", job.Lines,
		"mode", job.Mode.String())

	n, err := linecopy.CopyLines(corefs.Root(), job)
	if err != nil {
		var pathErr *linecopy.PathError
		if errors.As(err, &pathErr) {
			cause := pathErr.Err
			var osErr *fs.PathError
			if errors.As(cause, &osErr) {
				cause = osErr.Err
			}
			return FileError(stdio, applet, pathErr.Path, cause)
		}
		stdio.Errorf("%s: %v\n", applet, err)
		return ExitFailure
	}

	log.Debug("copy finished", "lines", n)
	return ExitSuccess
}
