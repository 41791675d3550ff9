// Package fs provides the filesystem applets operate on.
// Applets should use this package instead of direct os calls.
package fs

import (
	"sync"

	"github.com/spf13/afero"
)

var (
	mu   sync.RWMutex
	root afero.Fs = afero.NewOsFs()
)

// Root returns the active filesystem.
func Root() afero.Fs {
	mu.RLock()
	defer mu.RUnlock()
	return root
}

// Use replaces the active filesystem and returns a function restoring
// the previous one.
func Use(fsys afero.Fs) func() {
	mu.Lock()
	prev := root
	root = fsys
	mu.Unlock()
	return func() {
		mu.Lock()
		root = prev
		mu.Unlock()
	}
}

// Restrict confines the active filesystem to dir. Paths are resolved
// relative to dir and cannot escape it. With readOnly set every write fails.
func Restrict(dir string, readOnly bool) func() {
	fsys := afero.NewBasePathFs(Root(), dir)
	if readOnly {
		fsys = afero.NewReadOnlyFs(fsys)
	}
	return Use(fsys)
}
