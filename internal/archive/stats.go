package archive

import (
	"path/filepath"
	"sort"
)

// Statistics recomputes counts, aggregate sizes, and oldest/newest log
// timestamps from scratch. Files that fail to stat are logged during the
// scan and excluded from the totals.
func (m *Manager) Statistics() Statistics {
	var s Statistics

	logs := m.logFiles()
	s.LogCount = len(logs)

	var logBytes int64
	for i := range logs {
		f := logs[i]
		logBytes += f.Size
		if s.OldestLog == nil || f.MTime.Before(*s.OldestLog) {
			t := f.MTime
			s.OldestLog = &t
		}
		if s.NewestLog == nil || f.MTime.After(*s.NewestLog) {
			t := f.MTime
			s.NewestLog = &t
		}
	}
	s.LogSizeMB = float64(logBytes) / bytesPerMB

	archives := m.archiveFiles()
	s.ArchiveCount = len(archives)

	var archiveBytes int64
	for _, f := range archives {
		archiveBytes += f.Size
	}
	s.ArchiveSizeMB = float64(archiveBytes) / bytesPerMB

	return s
}

// ListArchives returns every file in the archive directory, most recent
// first. A missing archive directory yields an empty list.
func (m *Manager) ListArchives() []Entry {
	files := m.archiveFiles()

	sort.Slice(files, func(i, j int) bool {
		return files[i].MTime.After(files[j].MTime)
	})

	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f.Path)
		if err != nil {
			abs = f.Path
		}
		entries = append(entries, Entry{
			Name:    filepath.Base(f.Path),
			SizeMB:  float64(f.Size) / bytesPerMB,
			Created: f.MTime,
			Path:    abs,
		})
	}
	return entries
}
