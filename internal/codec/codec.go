// Package codec implements the compression strategies used by the archive
// manager. Each codec turns exactly one input file into exactly one compressed
// artifact in a target directory.
package codec

import "fmt"

// Kind identifies a compression codec. The string forms are accepted on the
// CLI and in config files.
type Kind uint8

const (
	// Zip wraps the input as a single deflate entry inside a zip
	// container. Default; artifacts can be inspected with standard
	// zip tooling.
	Zip Kind = iota

	// Gzip wraps the input in a single gzip stream. Smallest overhead
	// for one file.
	Gzip

	// Zstd wraps the input in a single zstd stream. Better ratios for
	// text-like content such as logs.
	Zstd
)

// String returns the canonical name of a codec kind, which is also the
// artifact filename extension without the dot.
func (k Kind) String() string {
	switch k {
	case Zip:
		return "zip"
	case Gzip:
		return "gz"
	case Zstd:
		return "zst"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// ParseKind parses a codec kind from its string representation.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "zip":
		return Zip, nil
	case "gz", "gzip":
		return Gzip, nil
	case "zst", "zstd":
		return Zstd, nil
	default:
		return 0, fmt.Errorf("unknown codec: %q", name)
	}
}

// Codec produces one compressed artifact from one input file. Compress
// returns the artifact path, or an error with no partial artifact left in
// the target directory.
type Codec interface {
	Kind() Kind
	Compress(src, dstDir string) (string, error)
}

// For returns the codec implementation for a kind.
func For(k Kind) Codec {
	switch k {
	case Gzip:
		return gzipCodec{}
	case Zstd:
		return zstdCodec{}
	default:
		return zipCodec{}
	}
}
