//go:build darwin || freebsd || linux || netbsd || openbsd

package vos

import (
	"runtime"

	"golang.org/x/sys/unix"
)

func hostUname() Utsname {
	var buf unix.Utsname
	if err := unix.Uname(&buf); err != nil {
		return fallbackUname()
	}

	return Utsname{
		Sysname:  unix.ByteSliceToString(buf.Sysname[:]),
		Nodename: unix.ByteSliceToString(buf.Nodename[:]),
		Release:  unix.ByteSliceToString(buf.Release[:]),
		Version:  unix.ByteSliceToString(buf.Version[:]),
		Machine:  unix.ByteSliceToString(buf.Machine[:]),
	}
}

func fallbackUname() Utsname {
	return Utsname{Sysname: runtime.GOOS, Machine: runtime.GOARCH}
}
