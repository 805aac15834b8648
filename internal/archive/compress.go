package archive

import (
	"path/filepath"
	"time"

	"github.com/logtools/log-archiver/internal/codec"
)

// CompressEligible compresses every log file whose modification time is
// strictly before now minus olderThanDays days, one artifact per file, then
// deletes the original. The source file is deleted only after its artifact
// has been durably written; a compression failure leaves the source
// untouched.
//
// The returned map holds artifact name to artifact size in bytes for the
// files that succeeded. An empty map is a valid outcome, including when the
// source directory does not exist. Detailed failure causes are only in the
// log stream.
func (m *Manager) CompressEligible(olderThanDays int, kind codec.Kind) map[string]int64 {
	cutoff := time.Now().AddDate(0, 0, -olderThanDays)
	compressed := make(map[string]int64)

	files := m.logFiles()
	if len(files) == 0 {
		return compressed
	}

	if err := m.fsys.MkdirAll(m.archiveDir); err != nil {
		m.log.Error("creating archive directory", "dir", m.archiveDir, "error", err)
		return compressed
	}

	c := codec.For(kind)

	for _, f := range files {
		if !f.MTime.Before(cutoff) {
			continue
		}

		artifact, err := c.Compress(f.Path, m.archiveDir)
		if err != nil {
			m.fault("compressing log file", f.Path, classifyCodec(err), err)
			continue
		}

		st, err := m.fsys.Stat(artifact)
		if err != nil {
			// Artifact state is unknown; leave the source in place so the
			// next invocation picks it up.
			m.fault("stat on new artifact", artifact, Classify(err), err)
			continue
		}
		compressed[filepath.Base(artifact)] = st.Size

		if err := m.fsys.Remove(f.Path); err != nil {
			m.fault("deleting compressed source", f.Path, Classify(err), err)
			continue
		}
		m.log.Info("compressed and removed", "file", filepath.Base(f.Path), "artifact", filepath.Base(artifact))
	}

	return compressed
}
