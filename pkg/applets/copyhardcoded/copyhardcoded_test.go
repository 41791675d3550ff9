package copyhardcoded_test

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rcarmo/go-linecopy/pkg/applets/copyhardcoded"
	"github.com/rcarmo/go-linecopy/pkg/core"
	"github.com/rcarmo/go-linecopy/pkg/testutil"
)

func numbered(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return b.String()
}

func TestCopyHardcoded(t *testing.T) {
	tests := []testutil.AppletTestCase{
		{
			Name:      "copies_ten_lines",
			WantCode:  core.ExitSuccess,
			WantNoOut: true,
			Files: map[string]string{
				"data/input.txt":    numbered(12),
				"result/result.txt": "stale\n",
			},
			Check: func(t *testing.T, dir string) {
				testutil.AssertFileContent(t, filepath.Join(dir, "result/result.txt"), numbered(10))
			},
		},
		{
			Name:     "short_input",
			WantCode: core.ExitSuccess,
			Files: map[string]string{
				"data/input.txt": "only\n",
				"result/.keep":   "",
			},
			Check: func(t *testing.T, dir string) {
				testutil.AssertFileContent(t, filepath.Join(dir, "result/result.txt"), "only\n")
			},
		},
		{
			Name:     "missing_input",
			WantCode: core.ExitFailure,
			WantErr:  "copyhardcoded: data/input.txt:",
			Files: map[string]string{
				"result/.keep": "",
			},
			Check: func(t *testing.T, dir string) {
				testutil.AssertFileNotExists(t, filepath.Join(dir, "result/result.txt"))
			},
		},
		{
			Name:     "missing_result_dir",
			WantCode: core.ExitFailure,
			WantErr:  "copyhardcoded: result/result.txt:",
			Files: map[string]string{
				"data/input.txt": "a\n",
			},
		},
		{
			Name:     "extra_operand",
			Args:     []string{"x"},
			WantCode: core.ExitUsage,
			WantErr:  "copyhardcoded: extra operand 'x'",
		},
		{
			Name:       "help",
			Args:       []string{"--help"},
			WantCode:   core.ExitSuccess,
			WantOutSub: "usage: copyhardcoded",
		},
	}

	testutil.RunAppletTests(t, copyhardcoded.Run, tests)
}
