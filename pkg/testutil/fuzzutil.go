package testutil

import (
	"os"
	"sync"
	"testing"

	"github.com/rcarmo/go-linecopy/pkg/core"
	corefs "github.com/rcarmo/go-linecopy/pkg/core/fs"
)

const MaxFuzzBytes = 2048

// FuzzOptions tunes FuzzRun.
type FuzzOptions struct {
	// Prog is the invocation name passed to the applet.
	Prog string
	// Check runs after the applet with its results and working directory.
	Check func(t *testing.T, dir, out, errOut string, code int)
}

var cwdMu sync.Mutex

func ClampBytes(data []byte, max int) []byte {
	if len(data) > max {
		return data[:max]
	}
	return data
}

func ClampString(data string, max int) string {
	if len(data) > max {
		return data[:max]
	}
	return data
}

func RunAppletInDir(t *testing.T, run RunApplet, prog string, args []string, input string, dir string) (string, string, int) {
	t.Helper()
	cwdMu.Lock()
	defer cwdMu.Unlock()

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(oldDir) }()

	stdio, out, errBuf := CaptureStdio(input)
	stdio.Name = prog
	code := run(stdio, args)
	return out.String(), errBuf.String(), code
}

// FuzzRun runs an applet against generated input inside a fresh directory
// and fails on exit codes outside the core set. The applet filesystem is
// confined to that directory for the duration of the run.
func FuzzRun(t *testing.T, run RunApplet, args []string, input string, files map[string]string, opts FuzzOptions) {
	t.Helper()
	dir := TempDirWithFiles(t, files)
	restore := corefs.Restrict(dir, false)
	out, errOut, code := RunAppletInDir(t, run, opts.Prog, args, input, dir)
	restore()
	switch code {
	case core.ExitSuccess, core.ExitFailure, core.ExitUsage:
	default:
		t.Fatalf("unexpected exit code %d (stderr %q)", code, errOut)
	}
	if opts.Check != nil {
		opts.Check(t, dir, out, errOut, code)
	}
}
