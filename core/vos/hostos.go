package vos

import (
	"io"
	"os"
	"runtime"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
)

// HostOS is a VOS backed by the real machine. The filesystem is read through
// afero so the same code paths run against in-memory filesystems in tests.
type HostOS struct {
	VEnv
	VIO
	VFS

	// ProcArgs holds command line arguments, including the command as Args[0].
	ProcArgs []string
	// Clock is the source of Now.
	Clock clock.Clock

	terminal bool
}

var _ VOS = (*HostOS)(nil)

// NewHostOS creates a VOS for the current process that writes to the given
// streams.
func NewHostOS(argv []string, stdout, stderr io.Writer) *HostOS {
	return &HostOS{
		VEnv:     NewMapEnvFromEnvList(os.Environ()),
		VIO:      NewVIOAdapter(stdout, stderr),
		VFS:      afero.NewOsFs(),
		ProcArgs: argv,
		Clock:    clock.New(),
		terminal: isTerminal(stdout),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Args implements VProc.Args.
func (h *HostOS) Args() []string {
	return h.ProcArgs
}

// Getwd implements VProc.Getwd.
func (h *HostOS) Getwd() (string, error) {
	return os.Getwd()
}

// Uname implements VHost.Uname.
func (h *HostOS) Uname() Utsname {
	return hostUname()
}

// RuntimeVersion implements VHost.RuntimeVersion.
func (h *HostOS) RuntimeVersion() string {
	return runtime.Version()
}

// Now implements VHost.Now.
func (h *HostOS) Now() time.Time {
	return h.Clock.Now()
}

// IsTerminal implements VHost.IsTerminal.
func (h *HostOS) IsTerminal() bool {
	return h.terminal
}
