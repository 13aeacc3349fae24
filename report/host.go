package report

import (
	"time"

	"github.com/josephlewis42/hostreport/core/vos"
)

// UnknownUser is shown when $USER isn't set.
const UnknownUser = "Unknown"

// HostInfo describes the machine and user running the report.
type HostInfo struct {
	OS      string
	Release string
	Runtime string
	Time    time.Time
	User    string
}

// Describe collects a fresh HostInfo from the OS.
func Describe(virtOS vos.VOS) HostInfo {
	uname := virtOS.Uname()
	return HostInfo{
		OS:      uname.Sysname,
		Release: uname.Release,
		Runtime: virtOS.RuntimeVersion(),
		Time:    virtOS.Now(),
		User:    vos.GetenvDefault(virtOS, "USER", UnknownUser),
	}
}
