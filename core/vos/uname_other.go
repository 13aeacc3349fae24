//go:build !(darwin || freebsd || linux || netbsd || openbsd)

package vos

import (
	"os"
	"runtime"
)

// hostUname has no kernel release available on this platform.
func hostUname() Utsname {
	hostname, _ := os.Hostname()
	return Utsname{Sysname: runtime.GOOS, Nodename: hostname, Machine: runtime.GOARCH}
}
