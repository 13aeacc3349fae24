package vostest

import (
	"io/fs"
	"os"
	"path"

	"github.com/spf13/afero"
)

// FaultFs wraps a filesystem and injects errors for specific paths.
type FaultFs struct {
	afero.Fs

	// Faults maps cleaned paths to the error returned when they're opened or
	// stat'd.
	Faults map[string]error
	// OnOpen, if set, is called with the path before every open.
	OnOpen func(name string)
}

var _ afero.Fs = (*FaultFs)(nil)

// NewDeniedFs returns a filesystem where opening any of the given paths fails
// with a permission error.
func NewDeniedFs(base afero.Fs, paths ...string) *FaultFs {
	faults := make(map[string]error)
	for _, p := range paths {
		faults[path.Clean(p)] = fs.ErrPermission
	}
	return &FaultFs{Fs: base, Faults: faults}
}

func (f *FaultFs) fault(op, name string) error {
	if err, ok := f.Faults[path.Clean(name)]; ok {
		return &fs.PathError{Op: op, Path: name, Err: err}
	}
	return nil
}

// Name implements afero.Fs.Name.
func (f *FaultFs) Name() string {
	return "FaultFs"
}

// Open implements afero.Fs.Open.
func (f *FaultFs) Open(name string) (afero.File, error) {
	if f.OnOpen != nil {
		f.OnOpen(name)
	}
	if err := f.fault("open", name); err != nil {
		return nil, err
	}
	return f.Fs.Open(name)
}

// OpenFile implements afero.Fs.OpenFile.
func (f *FaultFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if f.OnOpen != nil {
		f.OnOpen(name)
	}
	if err := f.fault("open", name); err != nil {
		return nil, err
	}
	return f.Fs.OpenFile(name, flag, perm)
}

// Stat implements afero.Fs.Stat.
func (f *FaultFs) Stat(name string) (os.FileInfo, error) {
	if err := f.fault("stat", name); err != nil {
		return nil, err
	}
	return f.Fs.Stat(name)
}
