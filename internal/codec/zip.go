package codec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
)

// zipCodec wraps a file as one deflate entry inside a zip container named
// <original-name>.zip. The entry name is the file's base name, so no
// directory structure leaks into the archive.
type zipCodec struct{}

func (zipCodec) Kind() Kind { return Zip }

func (zipCodec) Compress(src, dstDir string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	artifact := filepath.Join(dstDir, filepath.Base(src)+".zip")

	out, err := os.Create(artifact)
	if err != nil {
		return "", fmt.Errorf("creating artifact: %w", err)
	}

	zw := zip.NewWriter(out)

	w, err := zw.Create(filepath.Base(src))
	if err != nil {
		_ = zw.Close()
		_ = out.Close()
		_ = os.Remove(artifact)
		return "", fmt.Errorf("creating zip entry: %w", err)
	}

	if _, err := io.Copy(w, in); err != nil {
		_ = zw.Close()
		_ = out.Close()
		_ = os.Remove(artifact)
		return "", fmt.Errorf("compressing: %w", err)
	}

	if err := zw.Close(); err != nil {
		_ = out.Close()
		_ = os.Remove(artifact)
		return "", fmt.Errorf("finalizing zip: %w", err)
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		_ = os.Remove(artifact)
		return "", fmt.Errorf("syncing artifact: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(artifact)
		return "", fmt.Errorf("closing artifact: %w", err)
	}

	return artifact, nil
}
