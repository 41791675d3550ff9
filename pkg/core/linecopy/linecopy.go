// Package linecopy copies the leading lines of one file into another.
//
// Every copy applet resolves a Job from its own configuration source and
// hands it to CopyLines; none of them touch the files directly.
package linecopy

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/afero"
)

// Defaults used when a configuration source leaves a field unset.
const (
	DefaultSource      = "data/input.txt"
	DefaultDestination = "result/result.txt"
	DefaultLines       = 10
)

// WriteMode selects how the destination is opened.
type WriteMode int

const (
	Truncate WriteMode = iota // "w": replace existing content
	Append                    // "a": add after existing content
)

// ErrInvalidWriteMode is returned by ParseWriteMode for unknown modes.
var ErrInvalidWriteMode = errors.New("invalid write mode")

// ParseWriteMode accepts w, write, truncate, a and append.
// An empty string selects Truncate.
func ParseWriteMode(s string) (WriteMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "w", "write", "truncate":
		return Truncate, nil
	case "a", "append":
		return Append, nil
	}
	return Truncate, fmt.Errorf("%w: %q", ErrInvalidWriteMode, s)
}

// String returns the open(2)-style mode letter.
func (m WriteMode) String() string {
	if m == Append {
		return "a"
	}
	return "w"
}

func (m WriteMode) flags() int {
	if m == Append {
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	return os.O_WRONLY | os.O_CREATE | os.O_TRUNC
}

// Job describes a single copy.
type Job struct {
	Source      string
	Destination string
	Lines       int
	Mode        WriteMode
}

// DefaultJob returns the job used when nothing is configured.
func DefaultJob() Job {
	return Job{
		Source:      DefaultSource,
		Destination: DefaultDestination,
		Lines:       DefaultLines,
		Mode:        Truncate,
	}
}

// Validate checks that the job can be run.
func (j Job) Validate() error {
	switch {
	case j.Source == "":
		return errors.New("missing input file")
	case j.Destination == "":
		return errors.New("missing result file")
	case j.Lines < 0:
		return fmt.Errorf("invalid line count: %d", j.Lines)
	case j.Mode != Truncate && j.Mode != Append:
		return fmt.Errorf("%w: %d", ErrInvalidWriteMode, int(j.Mode))
	}
	return nil
}

// PathError reports which side of the copy failed.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string { return e.Path + ": " + e.Err.Error() }

func (e *PathError) Unwrap() error { return e.Err }

// CopyLines copies up to job.Lines lines from job.Source to job.Destination
// and returns how many were written. Line terminators are preserved, a final
// line without one is copied as is, and a short source ends the copy early.
// The destination directory must already exist. The source is checked
// before the destination is opened, so a bad source leaves it untouched.
func CopyLines(fsys afero.Fs, job Job) (int, error) {
	if err := job.Validate(); err != nil {
		return 0, err
	}

	src, err := fsys.Open(job.Source)
	if err != nil {
		return 0, &PathError{Path: job.Source, Err: err}
	}
	defer src.Close()
	info, err := src.Stat()
	if err != nil {
		return 0, &PathError{Path: job.Source, Err: err}
	}
	if info.IsDir() {
		return 0, &PathError{Path: job.Source, Err: syscall.EISDIR}
	}

	dst, err := fsys.OpenFile(job.Destination, job.Mode.flags(), 0644)
	if err != nil {
		return 0, &PathError{Path: job.Destination, Err: err}
	}

	w := bufio.NewWriter(dst)
	n, err := copyLines(w, bufio.NewReader(src), job)
	if err != nil {
		dst.Close()
		return n, err
	}
	if err := w.Flush(); err != nil {
		dst.Close()
		return n, &PathError{Path: job.Destination, Err: err}
	}
	if err := dst.Close(); err != nil {
		return n, &PathError{Path: job.Destination, Err: err}
	}
	return n, nil
}

func copyLines(w io.Writer, r *bufio.Reader, job Job) (int, error) {
	written := 0
	for written < job.Lines {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			if _, werr := io.WriteString(w, line); werr != nil {
				return written, &PathError{Path: job.Destination, Err: werr}
			}
			written++
		}
		if err == io.EOF {
			return written, nil
		}
		if err != nil {
			return written, &PathError{Path: job.Source, Err: err}
		}
	}
	return written, nil
}
