//go:build unix

package system

import "golang.org/x/sys/unix"

func osVersion() string {
  var uts unix.Utsname
  if err := unix.Uname(&uts); err != nil {
    return ""
  }
  return unix.ByteSliceToString(uts.Version[:])
}
