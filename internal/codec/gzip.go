package codec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// gzipCodec compresses a file into a single gzip stream named
// <original-name>.gz. Input is streamed, never loaded whole.
type gzipCodec struct{}

func (gzipCodec) Kind() Kind { return Gzip }

func (gzipCodec) Compress(src, dstDir string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	artifact := filepath.Join(dstDir, filepath.Base(src)+".gz")

	out, err := os.Create(artifact)
	if err != nil {
		return "", fmt.Errorf("creating artifact: %w", err)
	}

	zw := gzip.NewWriter(out)
	zw.Name = filepath.Base(src)

	if err := writeAndSync(out, zw, in); err != nil {
		_ = os.Remove(artifact)
		return "", err
	}

	return artifact, nil
}

// writeAndSync streams in through zw into out, then flushes everything to
// disk. On error the caller removes the artifact.
func writeAndSync(out *os.File, zw io.WriteCloser, in io.Reader) error {
	if _, err := io.Copy(zw, in); err != nil {
		_ = zw.Close()
		_ = out.Close()
		return fmt.Errorf("compressing: %w", err)
	}
	if err := zw.Close(); err != nil {
		_ = out.Close()
		return fmt.Errorf("finalizing stream: %w", err)
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		return fmt.Errorf("syncing artifact: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing artifact: %w", err)
	}
	return nil
}
