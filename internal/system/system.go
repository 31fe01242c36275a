package system

import (
  "os"
  "runtime"
  "strings"
)

type HostInfo struct {
  Hostname string `json:"hostname"`
  OS string `json:"os"`
  OSVersion string `json:"os_version"`
}

// GetHostInfo never fails; fields that cannot be read are left empty.
func GetHostInfo() HostInfo {
  hostname, _ := os.Hostname()
  return HostInfo{
    Hostname: hostname,
    OS: OSName(runtime.GOOS),
    OSVersion: osVersion(),
  }
}

// OSName maps a GOOS value to the platform family name reported to callers.
func OSName(goos string) string {
  switch PlatformFromGOOS(goos) {
  case PlatformWindows:
    return "Windows"
  case PlatformLinux:
    return "Linux"
  case PlatformDarwin:
    return "Darwin"
  }
  if goos == "" {
    return ""
  }
  return strings.ToUpper(goos[:1]) + goos[1:]
}
