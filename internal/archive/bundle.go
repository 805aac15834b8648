package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zip"
)

// BuildDailyBundle aggregates the current log files plus the single-stream
// artifacts already in the archive directory into one zip bundle named
// logs_archive_<YYYY-MM-DD>.zip. The date defaults to yesterday. Bundling is
// additive: no input file is deleted or moved, and re-running for the same
// date overwrites the bundle while leaving everything else untouched.
//
// Per-file add failures are logged and skipped; the bundle is produced with
// whatever files succeeded. A bundle with zero entries is still created and
// reported as a warning. An error is returned only when the bundle file
// itself cannot be created or finalized.
func (m *Manager) BuildDailyBundle(date string) (string, error) {
	if date == "" {
		date = time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", fmt.Errorf("invalid bundle date %q: %w", date, err)
	}

	bundleName := "logs_archive_" + date + ".zip"

	if err := m.fsys.MkdirAll(m.archiveDir); err != nil {
		return "", fmt.Errorf("creating archive directory: %w", err)
	}

	bundlePath := filepath.Join(m.archiveDir, bundleName)
	out, err := os.Create(bundlePath)
	if err != nil {
		return "", fmt.Errorf("creating bundle: %w", err)
	}

	zw := zip.NewWriter(out)
	added := 0

	for _, f := range m.logFiles() {
		if err := addBundleEntry(zw, f.Path); err != nil {
			m.fault("adding log file to bundle", f.Path, classifyCodec(err), err)
			continue
		}
		added++
	}

	for _, f := range m.archiveFiles() {
		name := filepath.Base(f.Path)
		if name == bundleName || !isSingleStream(name) {
			continue
		}
		if err := addBundleEntry(zw, f.Path); err != nil {
			m.fault("adding artifact to bundle", f.Path, classifyCodec(err), err)
			continue
		}
		added++
	}

	if err := zw.Close(); err != nil {
		_ = out.Close()
		_ = os.Remove(bundlePath)
		return "", fmt.Errorf("finalizing bundle: %w", err)
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		_ = os.Remove(bundlePath)
		return "", fmt.Errorf("syncing bundle: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(bundlePath)
		return "", fmt.Errorf("closing bundle: %w", err)
	}

	if added == 0 {
		m.log.Warn("no files added to bundle", "bundle", bundleName)
	} else {
		m.log.Info("daily bundle created", "bundle", bundleName, "files", added)
	}

	return bundlePath, nil
}

// isSingleStream reports whether an archive file is a single-stream
// compressed artifact, the kind swept into daily bundles. Zip singles and
// earlier bundles stay out.
func isSingleStream(name string) bool {
	switch filepath.Ext(name) {
	case ".gz", ".zst":
		return true
	}
	return false
}

// addBundleEntry streams one file into the bundle under its base name.
func addBundleEntry(zw *zip.Writer, path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	w, err := zw.Create(filepath.Base(path))
	if err != nil {
		return err
	}
	_, err = io.Copy(w, in)
	return err
}
