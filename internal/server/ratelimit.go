package server

import (
  "sync"
  "time"

  "golang.org/x/time/rate"
)

const (
  limiterIdleTTL = 10 * time.Minute
  limiterMaxClients = 4096
)

type ipLimiter struct {
  limiter *rate.Limiter
  lastSeen time.Time
}

type ipRateLimiter struct {
  mu sync.Mutex
  limit rate.Limit
  burst int
  maxClients int
  now func() time.Time
  clients map[string]*ipLimiter
}

func newIPRateLimiter(perMinute int, now func() time.Time) *ipRateLimiter {
  return &ipRateLimiter{
    limit: rate.Every(time.Minute / time.Duration(perMinute)),
    burst: perMinute,
    maxClients: limiterMaxClients,
    now: now,
    clients: make(map[string]*ipLimiter),
  }
}

func (l *ipRateLimiter) allow(ip string) bool {
  l.mu.Lock()
  defer l.mu.Unlock()

  now := l.now()
  c, ok := l.clients[ip]
  if !ok {
    if len(l.clients) >= l.maxClients {
      l.evict(now)
    }
    c = &ipLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
    l.clients[ip] = c
  }
  c.lastSeen = now
  return c.limiter.AllowN(now, 1)
}

// evict runs only when the map is full. It drops idle clients and, if none
// are idle, the least recently seen one, so the map never exceeds maxClients.
func (l *ipRateLimiter) evict(now time.Time) {
  var oldestKey string
  var oldest time.Time
  for key, c := range l.clients {
    if now.Sub(c.lastSeen) > limiterIdleTTL {
      delete(l.clients, key)
      continue
    }
    if oldestKey == "" || c.lastSeen.Before(oldest) {
      oldestKey = key
      oldest = c.lastSeen
    }
  }
  if len(l.clients) >= l.maxClients && oldestKey != "" {
    delete(l.clients, oldestKey)
  }
}
