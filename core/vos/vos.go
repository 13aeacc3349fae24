package vos

import (
	"io"
	"time"

	"github.com/spf13/afero"
)

// VFS is the filesystem layer of the virtual OS.
type VFS = afero.Fs

// Utsname holds the kernel identification fields reported by uname(2).
type Utsname struct {
	Sysname  string // Kernel name e.g. "Linux".
	Nodename string // Hostname of the machine on one of its networks.
	Release  string // OS release e.g. "4.15.0-147-generic"
	Version  string // OS version e.g. "#151-Ubuntu SMP Fri Jun 18 19:21:19 UTC 2021"
	Machine  string // Machine name e.g. "x86_64"
}

// VIO holds the output streams of a process. The report never reads input.
type VIO interface {
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}

// VProc holds process level state.
type VProc interface {
	// Args holds command line arguments, including the command as Args[0].
	Args() []string

	// Getwd returns a rooted path name corresponding to the current directory.
	Getwd() (dir string, err error)
}

// VHost describes the machine the process is running on.
type VHost interface {
	// Uname returns the kernel identification of the host.
	Uname() Utsname

	// RuntimeVersion returns the version string of the running toolchain.
	RuntimeVersion() string

	// Now returns the current time.
	Now() time.Time

	// IsTerminal reports whether Stdout is attached to a terminal.
	IsTerminal() bool
}

// VOS provides a virtual OS interface.
type VOS interface {
	VEnv
	VIO
	VProc
	VHost
	VFS
}

// ProcessFunc is a "process" that can be run, it returns the exit code.
type ProcessFunc func(VOS) int
