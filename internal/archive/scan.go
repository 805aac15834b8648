package archive

import (
	"errors"
	iofs "io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/logtools/log-archiver/internal/fs"
)

// logFiles lists the regular files directly under the source directory whose
// names match the configured pattern. Directories and symlinks are excluded.
// A missing source directory is a benign nothing-to-do condition.
func (m *Manager) logFiles() []fs.FileInfo {
	return m.scanDir(m.logDir, func(name string) bool {
		ok, err := doublestar.Match(m.pattern, name)
		return err == nil && ok
	})
}

// archiveFiles lists every regular file directly under the archive directory.
func (m *Manager) archiveFiles() []fs.FileInfo {
	return m.scanDir(m.archiveDir, func(string) bool { return true })
}

func (m *Manager) scanDir(dir string, match func(name string) bool) []fs.FileInfo {
	entries, err := m.fsys.ReadDir(dir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			m.log.Debug("directory does not exist, nothing to do", "dir", dir)
		} else {
			m.log.Error("reading directory", "dir", dir, "error", err)
		}
		return nil
	}

	var files []fs.FileInfo
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if !match(e.Name()) {
			continue
		}

		full := filepath.Join(dir, e.Name())
		info, err := m.fsys.Stat(full)
		if err != nil {
			m.fault("stat failed during scan", full, Classify(err), err)
			continue
		}
		files = append(files, info)
	}
	return files
}
