package codec

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// zstdCodec compresses a file into a single zstd stream named
// <original-name>.zst.
type zstdCodec struct{}

func (zstdCodec) Kind() Kind { return Zstd }

func (zstdCodec) Compress(src, dstDir string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	artifact := filepath.Join(dstDir, filepath.Base(src)+".zst")

	out, err := os.Create(artifact)
	if err != nil {
		return "", fmt.Errorf("creating artifact: %w", err)
	}

	zw, err := zstd.NewWriter(out)
	if err != nil {
		_ = out.Close()
		_ = os.Remove(artifact)
		return "", fmt.Errorf("initializing zstd: %w", err)
	}

	if err := writeAndSync(out, zw, in); err != nil {
		_ = os.Remove(artifact)
		return "", err
	}

	return artifact, nil
}
