package server

import (
  "net/http"
  "time"

  "wol-host-agent/internal/system"
)

type StatusResponse struct {
  Status string `json:"status"`
  Hostname string `json:"hostname"`
  OS string `json:"os"`
  OSVersion string `json:"os_version"`
  Port int `json:"port"`
  // Uptime carries wall-clock epoch seconds, not process uptime. Callers
  // only use it as a liveness signal.
  Uptime int64 `json:"uptime"`
}

func BuildStatus(port int, info system.HostInfo, now time.Time) StatusResponse {
  return StatusResponse{
    Status: "running",
    Hostname: info.Hostname,
    OS: info.OS,
    OSVersion: info.OSVersion,
    Port: port,
    Uptime: now.Unix(),
  }
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
  writeJSON(w, http.StatusOK, BuildStatus(s.cfg.Host.Port, s.hostInfo(), s.now()))
}

func (s *Server) handlePowerAction(name string, trigger func() bool) http.HandlerFunc {
  return func(w http.ResponseWriter, r *http.Request) {
    if !trigger() {
      s.logger.WithField("action", name).Error("power action not launched")
      writeJSON(w, http.StatusInternalServerError, errorResponse{Status: statusError})
      return
    }
    writeJSON(w, http.StatusOK, map[string]string{"status": statusSuccess})
  }
}
