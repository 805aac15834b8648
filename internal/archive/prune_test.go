package archive_test

import (
	"path/filepath"
	"testing"

	"github.com/logtools/log-archiver/internal/archive"
	"github.com/logtools/log-archiver/internal/config"
	"github.com/logtools/log-archiver/internal/logging"
)

func TestPruneByAge(t *testing.T) {
	m, _, archiveDir := newManager(t)

	for name, days := range map[string]int{
		"young.log.gz":   5,
		"mid.log.gz":     40,
		"ancient.log.gz": 100,
	} {
		p := filepath.Join(archiveDir, name)
		writeFile(t, p, "data")
		age(t, p, days)
	}

	deleted := m.PruneExpired(30)

	if deleted != 2 {
		t.Fatalf("PruneExpired(30) = %d, want 2", deleted)
	}
	if !exists(filepath.Join(archiveDir, "young.log.gz")) {
		t.Error("young.log.gz should have survived")
	}
	if exists(filepath.Join(archiveDir, "mid.log.gz")) || exists(filepath.Join(archiveDir, "ancient.log.gz")) {
		t.Error("expired archives should have been deleted")
	}
}

func TestPruneMissingArchiveDir(t *testing.T) {
	m := archive.New(config.ArchiveConfig{
		LogDir:     t.TempDir(),
		ArchiveDir: filepath.Join(t.TempDir(), "nope"),
	}, logging.Nop{}, nil)

	if n := m.PruneExpired(30); n != 0 {
		t.Fatalf("PruneExpired on missing dir = %d, want 0", n)
	}
}

func TestPruneNeverTouchesSourceLogs(t *testing.T) {
	m, logDir, _ := newManager(t)

	old := filepath.Join(logDir, "very-old.log")
	writeFile(t, old, "still needed\n")
	age(t, old, 365)

	if n := m.PruneExpired(0); n != 0 {
		t.Fatalf("prune deleted %d files from an empty archive dir", n)
	}
	if !exists(old) {
		t.Fatal("prune must never delete source log files")
	}
}

func TestPruneCountsOnlyActualDeletes(t *testing.T) {
	logDir := t.TempDir()
	archiveDir := t.TempDir()

	stuck := filepath.Join(archiveDir, "stuck.zip")
	writeFile(t, stuck, "x")
	age(t, stuck, 60)
	gone := filepath.Join(archiveDir, "gone.zip")
	writeFile(t, gone, "y")
	age(t, gone, 60)

	m := archive.New(config.ArchiveConfig{
		LogDir:     logDir,
		ArchiveDir: archiveDir,
	}, logging.Nop{}, newFlakyFS(stuck))

	if n := m.PruneExpired(30); n != 1 {
		t.Fatalf("PruneExpired = %d, want 1 (attempted 2, one delete failed)", n)
	}
	if !exists(stuck) {
		t.Error("stuck.zip should remain after failed delete")
	}
	if exists(gone) {
		t.Error("gone.zip should have been deleted")
	}
}
