package archive

import (
	"path/filepath"
	"time"
)

// PruneExpired deletes every archive-directory file whose modification time
// is strictly before now minus keepDays days, and returns the count actually
// deleted. Pruning never touches the source log directory. A missing archive
// directory yields 0.
func (m *Manager) PruneExpired(keepDays int) int {
	cutoff := time.Now().AddDate(0, 0, -keepDays)
	deleted := 0

	for _, f := range m.archiveFiles() {
		if !f.MTime.Before(cutoff) {
			continue
		}
		if err := m.fsys.Remove(f.Path); err != nil {
			m.fault("deleting expired archive", f.Path, Classify(err), err)
			continue
		}
		deleted++
		m.log.Info("deleted expired archive", "file", filepath.Base(f.Path))
	}

	return deleted
}
