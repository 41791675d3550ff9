package linecopy_test

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/rcarmo/go-linecopy/pkg/core/linecopy"
)

func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0644))
	}
	return fsys
}

func readFile(t *testing.T, fsys afero.Fs, name string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, name)
	require.NoError(t, err)
	return string(data)
}

func TestCopyLines(t *testing.T) {
	input := "one\ntwo\nthree\nfour\n"

	tests := []struct {
		name     string
		files    map[string]string
		job      linecopy.Job
		wantN    int
		wantDest string
	}{
		{
			name:     "first_lines",
			files:    map[string]string{"/in.txt": input},
			job:      linecopy.Job{Source: "/in.txt", Destination: "/out.txt", Lines: 2},
			wantN:    2,
			wantDest: "one\ntwo\n",
		},
		{
			name:     "short_source",
			files:    map[string]string{"/in.txt": input},
			job:      linecopy.Job{Source: "/in.txt", Destination: "/out.txt", Lines: 10},
			wantN:    4,
			wantDest: input,
		},
		{
			name:     "zero_lines_truncates",
			files:    map[string]string{"/in.txt": input, "/out.txt": "old\n"},
			job:      linecopy.Job{Source: "/in.txt", Destination: "/out.txt", Lines: 0},
			wantN:    0,
			wantDest: "",
		},
		{
			name:     "unterminated_last_line",
			files:    map[string]string{"/in.txt": "a\nb"},
			job:      linecopy.Job{Source: "/in.txt", Destination: "/out.txt", Lines: 5},
			wantN:    2,
			wantDest: "a\nb",
		},
		{
			name:     "crlf_preserved",
			files:    map[string]string{"/in.txt": "a\r\nb\r\n"},
			job:      linecopy.Job{Source: "/in.txt", Destination: "/out.txt", Lines: 1},
			wantN:    1,
			wantDest: "a\r\n",
		},
		{
			name:     "append_mode",
			files:    map[string]string{"/in.txt": input, "/out.txt": "old\n"},
			job:      linecopy.Job{Source: "/in.txt", Destination: "/out.txt", Lines: 1, Mode: linecopy.Append},
			wantN:    1,
			wantDest: "old\none\n",
		},
		{
			name:     "truncate_mode",
			files:    map[string]string{"/in.txt": input, "/out.txt": "old\n"},
			job:      linecopy.Job{Source: "/in.txt", Destination: "/out.txt", Lines: 1, Mode: linecopy.Truncate},
			wantN:    1,
			wantDest: "one\n",
		},
		{
			name:     "empty_source",
			files:    map[string]string{"/in.txt": ""},
			job:      linecopy.Job{Source: "/in.txt", Destination: "/out.txt", Lines: 3},
			wantN:    0,
			wantDest: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := memFs(t, tt.files)

			n, err := linecopy.CopyLines(fsys, tt.job)

			require.NoError(t, err)
			require.Equal(t, tt.wantN, n)
			require.Equal(t, tt.wantDest, readFile(t, fsys, tt.job.Destination))
		})
	}
}

func TestCopyLinesMissingSource(t *testing.T) {
	fsys := memFs(t, nil)

	_, err := linecopy.CopyLines(fsys, linecopy.Job{Source: "/missing.txt", Destination: "/out.txt", Lines: 1})

	var pathErr *linecopy.PathError
	require.ErrorAs(t, err, &pathErr)
	require.Equal(t, "/missing.txt", pathErr.Path)
	require.True(t, errors.Is(err, os.ErrNotExist))

	exists, statErr := afero.Exists(fsys, "/out.txt")
	require.NoError(t, statErr)
	require.False(t, exists, "destination must not be created when the source is missing")
}

func TestCopyLinesDirectorySourceKeepsDestination(t *testing.T) {
	fsys := memFs(t, map[string]string{"/out.txt": "keep me\n"})
	require.NoError(t, fsys.MkdirAll("/srcdir", 0755))

	_, err := linecopy.CopyLines(fsys, linecopy.Job{Source: "/srcdir", Destination: "/out.txt", Lines: 3})

	var pathErr *linecopy.PathError
	require.ErrorAs(t, err, &pathErr)
	require.Equal(t, "/srcdir", pathErr.Path)
	require.ErrorIs(t, err, syscall.EISDIR)
	require.Equal(t, "keep me\n", readFile(t, fsys, "/out.txt"))
}

func TestCopyLinesDirectorySourceOnDisk(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "srcdir")
	dst := filepath.Join(dir, "out.txt")
	require.NoError(t, os.Mkdir(src, 0755))
	require.NoError(t, os.WriteFile(dst, []byte("keep me\n"), 0644))

	_, err := linecopy.CopyLines(afero.NewOsFs(), linecopy.Job{Source: src, Destination: dst, Lines: 3})

	require.ErrorIs(t, err, syscall.EISDIR)
	data, readErr := os.ReadFile(dst)
	require.NoError(t, readErr)
	require.Equal(t, "keep me\n", string(data))
}

func TestCopyLinesReadOnlyDestination(t *testing.T) {
	fsys := afero.NewReadOnlyFs(memFs(t, map[string]string{"/in.txt": "a\n"}))

	_, err := linecopy.CopyLines(fsys, linecopy.Job{Source: "/in.txt", Destination: "/out.txt", Lines: 1})

	var pathErr *linecopy.PathError
	require.ErrorAs(t, err, &pathErr)
	require.Equal(t, "/out.txt", pathErr.Path)
}

func TestJobValidate(t *testing.T) {
	require.NoError(t, linecopy.DefaultJob().Validate())
	require.Error(t, linecopy.Job{Destination: "b", Lines: 1}.Validate())
	require.Error(t, linecopy.Job{Source: "a", Lines: 1}.Validate())
	require.Error(t, linecopy.Job{Source: "a", Destination: "b", Lines: -1}.Validate())
	require.ErrorIs(t, linecopy.Job{Source: "a", Destination: "b", Mode: linecopy.WriteMode(7)}.Validate(), linecopy.ErrInvalidWriteMode)
}

func TestParseWriteMode(t *testing.T) {
	for _, s := range []string{"", "w", "W", "write", "truncate"} {
		m, err := linecopy.ParseWriteMode(s)
		require.NoError(t, err, s)
		require.Equal(t, linecopy.Truncate, m, s)
	}
	for _, s := range []string{"a", "Append", " append "} {
		m, err := linecopy.ParseWriteMode(s)
		require.NoError(t, err, s)
		require.Equal(t, linecopy.Append, m, s)
	}
	_, err := linecopy.ParseWriteMode("x")
	require.ErrorIs(t, err, linecopy.ErrInvalidWriteMode)

	require.Equal(t, "w", linecopy.Truncate.String())
	require.Equal(t, "a", linecopy.Append.String())
}
