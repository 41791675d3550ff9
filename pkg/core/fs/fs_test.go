package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/rcarmo/go-linecopy/pkg/core/fs"
)

func TestUseRestores(t *testing.T) {
	mem := afero.NewMemMapFs()
	if err := afero.WriteFile(mem, "/in.txt", []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	restore := fs.Use(mem)
	data, err := afero.ReadFile(fs.Root(), "/in.txt")
	if err != nil {
		t.Fatalf("ReadFile on memory fs: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("ReadFile = %q, want %q", data, "hello")
	}
	restore()

	if _, ok := fs.Root().(*afero.OsFs); !ok {
		t.Errorf("Root() = %T after restore, want *afero.OsFs", fs.Root())
	}
}

func TestRestrict(t *testing.T) {
	dir := t.TempDir()
	inner := filepath.Join(dir, "inner")
	if err := os.MkdirAll(inner, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(inner, "a.txt"), []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "outside.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	restore := fs.Restrict(inner, true)
	defer restore()

	if ok, _ := afero.Exists(fs.Root(), "/a.txt"); !ok {
		t.Fatal("expected /a.txt to resolve inside the restricted dir")
	}
	if _, err := fs.Root().OpenFile("/b.txt", os.O_WRONLY|os.O_CREATE, 0644); err == nil {
		t.Error("expected write to fail on read-only fs")
	}
	if ok, _ := afero.Exists(fs.Root(), "/../outside.txt"); ok {
		t.Error("path escaped the restricted dir")
	}
}
