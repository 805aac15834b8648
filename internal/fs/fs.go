// Package fs defines the filesystem abstraction used by the archiver.
// It provides the FS interface and the FileInfo type shared across the system.
package fs

import (
	iofs "io/fs"
	"time"
)

type FileInfo struct {
	Path  string
	Size  int64
	MTime time.Time
}

type FS interface {
	Stat(path string) (FileInfo, error)
	ReadDir(path string) ([]iofs.DirEntry, error)
	MkdirAll(path string) error
	Remove(path string) error
}
