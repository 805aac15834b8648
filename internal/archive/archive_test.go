package archive_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/logtools/log-archiver/internal/archive"
	"github.com/logtools/log-archiver/internal/config"
	"github.com/logtools/log-archiver/internal/fs"
	"github.com/logtools/log-archiver/internal/logging"
)

// newManager builds a manager over two temp directories and returns it with
// the paths.
func newManager(t *testing.T) (*archive.Manager, string, string) {
	t.Helper()
	logDir := t.TempDir()
	archiveDir := filepath.Join(t.TempDir(), "archive")

	m := archive.New(config.ArchiveConfig{
		LogDir:     logDir,
		ArchiveDir: archiveDir,
		Pattern:    "*.log",
	}, logging.Nop{}, nil)

	return m, logDir, archiveDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// age pushes a file's mtime back by the given number of days.
func age(t *testing.T, path string, days int) {
	t.Helper()
	old := time.Now().AddDate(0, 0, -days)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatal(err)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// flakyFS delegates to the OS filesystem but fails Remove for chosen paths.
type flakyFS struct {
	fs.FS
	failRemove map[string]bool
}

func newFlakyFS(failRemove ...string) *flakyFS {
	f := &flakyFS{FS: fs.New(), failRemove: make(map[string]bool)}
	for _, p := range failRemove {
		f.failRemove[p] = true
	}
	return f
}

func (f *flakyFS) Remove(path string) error {
	if f.failRemove[path] {
		return os.ErrPermission
	}
	return f.FS.Remove(path)
}
