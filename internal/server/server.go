package server

import (
  "context"
  "errors"
  "fmt"
  "net"
  "net/http"
  "time"

  "github.com/sirupsen/logrus"

  "wol-host-agent/internal/config"
  "wol-host-agent/internal/system"
)

const shutdownTimeout = 5 * time.Second

// PowerController triggers power actions. Each call reports whether the
// native command was launched.
type PowerController interface {
  Sleep() bool
  Shutdown() bool
  Restart() bool
}

type Server struct {
  cfg *config.Config
  logger logrus.FieldLogger
  power PowerController
  allowed allowlist
  limiter *ipRateLimiter

  hostInfo func() system.HostInfo
  now func() time.Time
}

func New(cfg *config.Config, logger logrus.FieldLogger, power PowerController) *Server {
  s := &Server{
    cfg: cfg,
    logger: logger.WithField("component", "server"),
    power: power,
    allowed: newAllowlist(cfg.Host.AllowedIPs),
    hostInfo: system.GetHostInfo,
    now: time.Now,
  }
  if cfg.Host.RateLimitPerMinute > 0 {
    s.limiter = newIPRateLimiter(cfg.Host.RateLimitPerMinute, time.Now)
  }
  return s
}

func (s *Server) Addr() string {
  return fmt.Sprintf("0.0.0.0:%d", s.cfg.Host.Port)
}

func (s *Server) Handler() http.Handler {
  return s.routes()
}

// Run binds the listener and serves until ctx is cancelled, then shuts
// down gracefully. A bind error is returned before anything is served.
func (s *Server) Run(ctx context.Context) error {
  ln, err := net.Listen("tcp", s.Addr())
  if err != nil {
    return fmt.Errorf("listen %s: %w", s.Addr(), err)
  }
  return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
  httpServer := &http.Server{
    Handler: s.routes(),
    ReadHeaderTimeout: 10 * time.Second,
  }

  allowed := "any"
  if !s.cfg.AllowAllIPs() {
    allowed = fmt.Sprint(s.cfg.Host.AllowedIPs)
  }
  s.logger.WithFields(logrus.Fields{
    "addr": ln.Addr().String(),
    "allowed_ips": allowed,
  }).Info("listening")

  errCh := make(chan error, 1)
  go func() {
    errCh <- httpServer.Serve(ln)
  }()

  select {
  case err := <-errCh:
    if errors.Is(err, http.ErrServerClosed) {
      return nil
    }
    return err
  case <-ctx.Done():
  }

  s.logger.Info("shutting down")
  shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
  defer cancel()
  if err := httpServer.Shutdown(shutdownCtx); err != nil {
    return fmt.Errorf("shutdown: %w", err)
  }
  return nil
}
