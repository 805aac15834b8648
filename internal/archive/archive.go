// Package archive implements the log archive manager. It owns a source log
// directory and an archive directory, and exposes compression of eligible
// files, daily bundling, retention pruning, and reporting over them.
//
// Every operation is synchronous, single-shot, and safe to re-invoke. No
// state is kept between calls; the filesystem listing is the state.
package archive

import (
	"time"

	"github.com/logtools/log-archiver/internal/config"
	"github.com/logtools/log-archiver/internal/fs"
	"github.com/logtools/log-archiver/internal/logging"
)

// Manager orchestrates discovery, compression, bundling, pruning, and
// reporting over the two directories supplied at construction.
type Manager struct {
	logDir     string
	archiveDir string
	pattern    string
	fsys       fs.FS
	log        logging.Logger
}

// New creates a manager from the archive configuration. A nil filesystem
// selects the local OS filesystem.
func New(cfg config.ArchiveConfig, log logging.Logger, fsys fs.FS) *Manager {
	if fsys == nil {
		fsys = fs.New()
	}
	pattern := cfg.Pattern
	if pattern == "" {
		pattern = "*.log"
	}
	return &Manager{
		logDir:     cfg.LogDir,
		archiveDir: cfg.ArchiveDir,
		pattern:    pattern,
		fsys:       fsys,
		log:        log,
	}
}

// Statistics is a point-in-time snapshot over both directories. Sizes are
// binary megabytes, unrounded; presentation rounding is a caller concern.
// Oldest/Newest are nil when no log files exist.
type Statistics struct {
	LogCount      int        `json:"log_count"`
	LogSizeMB     float64    `json:"log_size_mb"`
	ArchiveCount  int        `json:"archive_count"`
	ArchiveSizeMB float64    `json:"archive_size_mb"`
	OldestLog     *time.Time `json:"oldest_log"`
	NewestLog     *time.Time `json:"newest_log"`
}

// Entry describes one file in the archive directory.
type Entry struct {
	Name    string    `json:"name"`
	SizeMB  float64   `json:"size_mb"`
	Created time.Time `json:"created"`
	Path    string    `json:"path"`
}

const bytesPerMB = 1024 * 1024
