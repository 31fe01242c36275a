//go:build !unix && !windows

package system

func osVersion() string {
  return ""
}
