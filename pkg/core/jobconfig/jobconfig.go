// Package jobconfig resolves linecopy jobs from configuration files and the
// environment.
//
// Files hold a single "default" section (INI) or block (HCL/JSON):
//
//	[default]
//	input_file  = data/input.txt
//	result_file = result/result.txt
//	count_lines = 10
//	write_mode  = w
//
// input_file and result_file are required; count_lines defaults to 10 and
// write_mode to "w".
package jobconfig

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"

	"github.com/rcarmo/go-linecopy/pkg/core/linecopy"
)

// Section is the section or block name holding the job.
const Section = "default"

// Keys understood in a job section.
const (
	KeyInputFile  = "input_file"
	KeyResultFile = "result_file"
	KeyCountLines = "count_lines"
	KeyWriteMode  = "write_mode"
)

// ErrMissingKey is wrapped by errors for absent required keys.
var ErrMissingKey = errors.New("missing key")

// Format identifies a job file syntax.
type Format int

const (
	FormatINI Format = iota
	FormatHCL
)

func (f Format) String() string {
	if f == FormatHCL {
		return "hcl"
	}
	return "ini"
}

// FormatOf picks a syntax from the file extension. .hcl and .json are
// decoded as HCL; everything else is INI.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl", ".json":
		return FormatHCL
	}
	return FormatINI
}

// LoadFile reads and decodes the job file at path.
func LoadFile(fsys afero.Fs, path string) (linecopy.Job, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return linecopy.Job{}, err
	}
	if FormatOf(path) == FormatHCL {
		return decodeHCL(path, data)
	}
	return decodeINI(data)
}

func decodeINI(data []byte) (linecopy.Job, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return linecopy.Job{}, err
	}
	sec, err := cfg.GetSection(Section)
	if err != nil {
		return linecopy.Job{}, fmt.Errorf("%w: section [%s]", ErrMissingKey, Section)
	}

	values := make(map[string]string, 4)
	for _, key := range []string{KeyInputFile, KeyResultFile, KeyCountLines, KeyWriteMode} {
		if sec.HasKey(key) {
			values[key] = sec.Key(key).String()
		}
	}
	return build(func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	})
}

type hclFile struct {
	Default hclSection `hcl:"default,block"`
}

type hclSection struct {
	InputFile  string  `hcl:"input_file"`
	ResultFile string  `hcl:"result_file"`
	CountLines *int    `hcl:"count_lines,optional"`
	WriteMode  *string `hcl:"write_mode,optional"`
}

func decodeHCL(path string, data []byte) (linecopy.Job, error) {
	var f hclFile
	if err := hclsimple.Decode(filepath.Base(path), data, nil, &f); err != nil {
		return linecopy.Job{}, err
	}

	job := linecopy.Job{
		Source:      f.Default.InputFile,
		Destination: f.Default.ResultFile,
		Lines:       linecopy.DefaultLines,
	}
	if f.Default.CountLines != nil {
		job.Lines = *f.Default.CountLines
	}
	if f.Default.WriteMode != nil {
		mode, err := linecopy.ParseWriteMode(*f.Default.WriteMode)
		if err != nil {
			return linecopy.Job{}, err
		}
		job.Mode = mode
	}
	return job, job.Validate()
}

// build assembles a job from key lookups shared by the INI and
// environment sources.
func build(lookup func(key string) (string, bool)) (linecopy.Job, error) {
	job := linecopy.Job{Lines: linecopy.DefaultLines}

	src, ok := lookup(KeyInputFile)
	if !ok {
		return linecopy.Job{}, fmt.Errorf("%w: %s", ErrMissingKey, KeyInputFile)
	}
	dst, ok := lookup(KeyResultFile)
	if !ok {
		return linecopy.Job{}, fmt.Errorf("%w: %s", ErrMissingKey, KeyResultFile)
	}
	job.Source, job.Destination = src, dst

	if s, ok := lookup(KeyCountLines); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return linecopy.Job{}, fmt.Errorf("invalid %s: %q", KeyCountLines, s)
		}
		job.Lines = n
	}
	if s, ok := lookup(KeyWriteMode); ok {
		mode, err := linecopy.ParseWriteMode(s)
		if err != nil {
			return linecopy.Job{}, err
		}
		job.Mode = mode
	}
	return job, job.Validate()
}
