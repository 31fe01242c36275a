package server

import (
  "net/http"
  "time"

  "github.com/sirupsen/logrus"
)

func (s *Server) requestLogger() func(http.Handler) http.Handler {
  return func(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
      start := time.Now()
      ww := &responseWriter{ResponseWriter: w, status: 200}

      next.ServeHTTP(ww, r)

      s.logger.WithFields(logrus.Fields{
        "method": r.Method,
        "path": r.URL.Path,
        "status": ww.status,
        "duration_ms": time.Since(start).Milliseconds(),
        "remote": clientIP(r),
      }).Info("request")
    })
  }
}

func (s *Server) requireAllowedIP(next http.Handler) http.Handler {
  return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    ip := clientIP(r)
    if !s.allowed.allows(ip) {
      s.logger.WithFields(logrus.Fields{"remote": ip, "path": r.URL.Path}).Warn("ip not allowed")
      writeError(w, http.StatusForbidden, "Forbidden: IP not allowed")
      return
    }
    next.ServeHTTP(w, r)
  })
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
  return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    ip := clientIP(r)
    if !s.limiter.allow(ip) {
      s.logger.WithFields(logrus.Fields{"remote": ip, "path": r.URL.Path}).Warn("rate limited")
      writeError(w, http.StatusTooManyRequests, "Too Many Requests")
      return
    }
    next.ServeHTTP(w, r)
  })
}

func (s *Server) requireToken(next http.Handler) http.Handler {
  return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    if !tokenMatches(s.cfg.ESP.Token, r.URL.Query().Get("token")) {
      s.logger.WithFields(logrus.Fields{"remote": clientIP(r), "path": r.URL.Path}).Warn("invalid token")
      writeError(w, http.StatusUnauthorized, "Unauthorized")
      return
    }
    next.ServeHTTP(w, r)
  })
}

type responseWriter struct {
  http.ResponseWriter
  status int
}

func (w *responseWriter) WriteHeader(status int) {
  w.status = status
  w.ResponseWriter.WriteHeader(status)
}
