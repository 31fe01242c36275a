package server

import (
  "encoding/json"
  "net/http"
)

const (
  statusError = "error"
  statusSuccess = "success"
)

type errorResponse struct {
  Status string `json:"status"`
  Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
  w.Header().Set("Content-Type", "application/json")
  w.WriteHeader(status)
  if payload != nil {
    _ = json.NewEncoder(w).Encode(payload)
  }
}

func writeError(w http.ResponseWriter, status int, message string) {
  writeJSON(w, status, errorResponse{Status: statusError, Message: message})
}
