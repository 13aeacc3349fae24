package vostest

import (
	"bytes"
	"io"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/josephlewis42/hostreport/core/vos"
	"github.com/spf13/afero"
)

const (
	// HomeDir is the working directory of deterministic processes.
	HomeDir = "/home/tester"
	// Username is the value of $USER in deterministic processes.
	Username = "tester"
	// RuntimeVersion is the runtime reported by deterministic processes.
	RuntimeVersion = "go1.test"
)

// ReferenceTime is Go's reference timestmap with a different value in each
// position.
var ReferenceTime = time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)

// TestOS is a VOS with fixed, inspectable state.
type TestOS struct {
	*vos.MapEnv
	vos.VIO
	vos.VFS

	ProcArgs []string
	Dir      string
	// WdErr is returned by Getwd when set.
	WdErr    error
	Utsname  vos.Utsname
	Runtime  string
	Clock    *clock.Mock
	Terminal bool
}

var _ vos.VOS = (*TestOS)(nil)

// NewDeterministicOS creates an OS with an empty in-memory home directory.
func NewDeterministicOS() *TestOS {
	mockClock := clock.NewMock()
	mockClock.Set(ReferenceTime)

	env := vos.NewMapEnv()
	env.Setenv("USER", Username)
	env.Setenv("HOME", HomeDir)

	memFs := afero.NewMemMapFs()
	memFs.MkdirAll(HomeDir, 0755)

	return &TestOS{
		MapEnv: env,
		VIO:    vos.NewNullIO(),
		VFS:    memFs,
		Dir:    HomeDir,
		Utsname: vos.Utsname{
			Sysname:  "Linux",
			Nodename: "testhost",
			Release:  "5.15.0-test",
			Version:  "#1 SMP Mon Jan 2 15:04:05 MST 2006",
			Machine:  "x86_64",
		},
		Runtime: RuntimeVersion,
		Clock:   mockClock,
	}
}

// Args implements VProc.Args.
func (t *TestOS) Args() []string {
	return t.ProcArgs
}

// Getwd implements VProc.Getwd.
func (t *TestOS) Getwd() (string, error) {
	if t.WdErr != nil {
		return "", t.WdErr
	}
	return t.Dir, nil
}

// Uname implements VHost.Uname.
func (t *TestOS) Uname() vos.Utsname {
	return t.Utsname
}

// RuntimeVersion implements VHost.RuntimeVersion.
func (t *TestOS) RuntimeVersion() string {
	return t.Runtime
}

// Now implements VHost.Now.
func (t *TestOS) Now() time.Time {
	return t.Clock.Now()
}

// IsTerminal implements VHost.IsTerminal.
func (t *TestOS) IsTerminal() bool {
	return t.Terminal
}

// Cmd is similar to exec.Cmd.
type Cmd struct {
	// Process function
	Process vos.ProcessFunc
	// Process arguments, the first argument should be the process name.
	Argv []string

	Stdout io.Writer
	Stderr io.Writer

	ExitStatus int

	// Setup is called with the process's OS before it runs.
	Setup func(*TestOS) error
}

// Command returns a Cmd that runs process with the given arguments.
func Command(process vos.ProcessFunc, name string, arg ...string) *Cmd {
	return &Cmd{
		Process: process,
		Argv:    append([]string{name}, arg...),
	}
}

// CombinedOutput runs the command and returns its combined stdout and stderr.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	// stdout, stderr
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	err := c.Run()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Run starts the comand and waits for it to complete.
func (c *Cmd) Run() error {
	deterministicOS := NewDeterministicOS()
	deterministicOS.ProcArgs = c.Argv
	deterministicOS.VIO = vos.NewVIOAdapter(c.Stdout, c.Stderr)

	if c.Setup != nil {
		if err := c.Setup(deterministicOS); err != nil {
			return err
		}
	}

	c.ExitStatus = c.Process(deterministicOS)
	return nil
}
