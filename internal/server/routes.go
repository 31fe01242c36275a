package server

import (
  "net/http"

  "github.com/go-chi/chi/v5"
  "github.com/go-chi/chi/v5/middleware"
)

func (s *Server) routes() http.Handler {
  r := chi.NewRouter()
  r.Use(middleware.Recoverer)
  r.Use(middleware.GetHead)
  r.Use(s.requestLogger())

  r.NotFound(func(w http.ResponseWriter, r *http.Request) {
    writeError(w, http.StatusNotFound, "Not Found")
  })
  r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
    writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
  })

  r.Get("/status", s.handleStatus)

  r.Group(func(r chi.Router) {
    r.Use(s.requireAllowedIP)
    if s.limiter != nil {
      r.Use(s.rateLimit)
    }
    r.Use(s.requireToken)

    r.Get("/sleep", s.handlePowerAction("sleep", s.power.Sleep))
    r.Get("/shutdown", s.handlePowerAction("shutdown", s.power.Shutdown))
    r.Get("/restart", s.handlePowerAction("restart", s.power.Restart))
  })

  return r
}
