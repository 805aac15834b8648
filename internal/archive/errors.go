package archive

import (
	"errors"
	iofs "io/fs"
	"path/filepath"
	"syscall"
)

// FaultKind classifies a per-file fault. The set is closed so callers and
// operators can tell retryable conditions from terminal ones without
// string-matching log messages.
type FaultKind uint8

const (
	FaultOther FaultKind = iota
	FaultNotFound
	FaultPermission
	FaultCodec
	FaultDiskFull
)

func (k FaultKind) String() string {
	switch k {
	case FaultNotFound:
		return "not-found"
	case FaultPermission:
		return "permission"
	case FaultCodec:
		return "codec-fault"
	case FaultDiskFull:
		return "disk-full"
	default:
		return "other"
	}
}

// Classify maps a filesystem error onto a fault kind.
func Classify(err error) FaultKind {
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return FaultNotFound
	case errors.Is(err, iofs.ErrPermission):
		return FaultPermission
	case errors.Is(err, syscall.ENOSPC):
		return FaultDiskFull
	default:
		return FaultOther
	}
}

// classifyCodec is Classify for errors coming out of a compression codec:
// anything that is not a recognizable filesystem condition is a codec fault.
func classifyCodec(err error) FaultKind {
	if k := Classify(err); k != FaultOther {
		return k
	}
	return FaultCodec
}

// fault logs a per-file failure and moves on. Per-file faults never abort
// the surrounding batch operation; the file is simply absent from the result
// and picked up on the next invocation.
func (m *Manager) fault(op, path string, kind FaultKind, err error) {
	m.log.Error(op, "file", filepath.Base(path), "kind", kind.String(), "error", err)
}
