package vos

import (
	"io"
)

// VIOAdapter turns plain writers into a VIO.
type VIOAdapter struct {
	IStdout io.WriteCloser
	IStderr io.WriteCloser
}

// NewVIOAdapter creates a VIO, output sent to a nil stream is discarded.
func NewVIOAdapter(stdout, stderr io.Writer) *VIOAdapter {
	return &VIOAdapter{
		IStdout: writeCloser(stdout),
		IStderr: writeCloser(stderr),
	}
}

// NewNullIO creates a VIO that discards everything written to it.
func NewNullIO() VIO {
	return NewVIOAdapter(nil, nil)
}

var _ VIO = (*VIOAdapter)(nil)

func (a *VIOAdapter) Stdout() io.WriteCloser {
	return a.IStdout
}

func (a *VIOAdapter) Stderr() io.WriteCloser {
	return a.IStderr
}

// writeCloser wraps w so Close is a no-op unless w can close itself.
func writeCloser(w io.Writer) io.WriteCloser {
	switch w := w.(type) {
	case nil:
		return nopCloser{io.Discard}
	case io.WriteCloser:
		return w
	default:
		return nopCloser{w}
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
