package archive_test

import (
	"path/filepath"
	"testing"

	"github.com/logtools/log-archiver/internal/archive"
	"github.com/logtools/log-archiver/internal/codec"
	"github.com/logtools/log-archiver/internal/config"
	"github.com/logtools/log-archiver/internal/logging"
)

func TestCompressEligibleByAge(t *testing.T) {
	m, logDir, archiveDir := newManager(t)

	writeFile(t, filepath.Join(logDir, "a.log"), "old entries\n")
	age(t, filepath.Join(logDir, "a.log"), 10)
	writeFile(t, filepath.Join(logDir, "b.log"), "recent entries\n")
	age(t, filepath.Join(logDir, "b.log"), 1)

	result := m.CompressEligible(7, codec.Zip)

	if len(result) != 1 {
		t.Fatalf("expected 1 compressed file, got %d: %v", len(result), result)
	}
	size, ok := result["a.log.zip"]
	if !ok {
		t.Fatalf("expected a.log.zip in result, got %v", result)
	}
	if size <= 0 {
		t.Errorf("artifact size should be positive, got %d", size)
	}

	if exists(filepath.Join(logDir, "a.log")) {
		t.Error("a.log should have been deleted after compression")
	}
	if !exists(filepath.Join(logDir, "b.log")) {
		t.Error("b.log should still exist")
	}
	if !exists(filepath.Join(archiveDir, "a.log.zip")) {
		t.Error("a.log.zip should exist in the archive directory")
	}
}

func TestCompressGzipNaming(t *testing.T) {
	m, logDir, archiveDir := newManager(t)

	writeFile(t, filepath.Join(logDir, "app.log"), "line\n")
	age(t, filepath.Join(logDir, "app.log"), 10)

	result := m.CompressEligible(7, codec.Gzip)

	if _, ok := result["app.log.gz"]; !ok {
		t.Fatalf("expected app.log.gz, got %v", result)
	}
	if !exists(filepath.Join(archiveDir, "app.log.gz")) {
		t.Error("app.log.gz missing from archive directory")
	}
}

func TestCompressMissingSourceDir(t *testing.T) {
	m := archive.New(config.ArchiveConfig{
		LogDir:     filepath.Join(t.TempDir(), "does-not-exist"),
		ArchiveDir: filepath.Join(t.TempDir(), "archive"),
	}, logging.Nop{}, nil)

	result := m.CompressEligible(7, codec.Zip)
	if len(result) != 0 {
		t.Fatalf("expected empty result for missing source dir, got %v", result)
	}
}

func TestCompressNoEligibleFiles(t *testing.T) {
	m, logDir, _ := newManager(t)

	writeFile(t, filepath.Join(logDir, "fresh.log"), "new\n")

	result := m.CompressEligible(7, codec.Zip)
	if len(result) != 0 {
		t.Fatalf("expected empty result, got %v", result)
	}
	if !exists(filepath.Join(logDir, "fresh.log")) {
		t.Error("fresh.log must be untouched")
	}
}

func TestCompressDeleteFailureKeepsGoing(t *testing.T) {
	logDir := t.TempDir()
	archiveDir := filepath.Join(t.TempDir(), "archive")

	stuck := filepath.Join(logDir, "stuck.log")
	writeFile(t, stuck, "cannot delete me\n")
	age(t, stuck, 10)
	other := filepath.Join(logDir, "other.log")
	writeFile(t, other, "fine\n")
	age(t, other, 10)

	m := archive.New(config.ArchiveConfig{
		LogDir:     logDir,
		ArchiveDir: archiveDir,
		Pattern:    "*.log",
	}, logging.Nop{}, newFlakyFS(stuck))

	result := m.CompressEligible(7, codec.Zip)

	// Both artifacts were produced; the failed delete only means the
	// source survives for the next run.
	if _, ok := result["stuck.log.zip"]; !ok {
		t.Errorf("stuck.log.zip should be in the result, got %v", result)
	}
	if _, ok := result["other.log.zip"]; !ok {
		t.Errorf("other.log.zip should be in the result, got %v", result)
	}
	if !exists(stuck) {
		t.Error("stuck.log should remain after failed delete")
	}
	if exists(other) {
		t.Error("other.log should have been deleted")
	}
}

func TestCompressIgnoresNonMatchingEntries(t *testing.T) {
	m, logDir, _ := newManager(t)

	writeFile(t, filepath.Join(logDir, "notes.txt"), "not a log\n")
	age(t, filepath.Join(logDir, "notes.txt"), 30)
	writeFile(t, filepath.Join(logDir, "nested.log", "inner.log"), "dir named like a log\n")

	result := m.CompressEligible(7, codec.Zip)
	if len(result) != 0 {
		t.Fatalf("expected nothing compressed, got %v", result)
	}
	if !exists(filepath.Join(logDir, "notes.txt")) {
		t.Error("notes.txt must be untouched")
	}
}
