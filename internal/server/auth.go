package server

import (
  "crypto/subtle"
  "net"
  "net/http"
  "net/netip"
)

// allowlist is an exact-match set of caller IPs. An empty set allows
// everyone.
type allowlist map[string]struct{}

func newAllowlist(ips []string) allowlist {
  a := make(allowlist, len(ips))
  for _, ip := range ips {
    a[ip] = struct{}{}
  }
  return a
}

func (a allowlist) allows(ip string) bool {
  if len(a) == 0 {
    return true
  }
  if _, ok := a[ip]; ok {
    return true
  }
  addr, err := netip.ParseAddr(ip)
  if err != nil || !addr.Is4In6() {
    return false
  }
  _, ok := a[addr.Unmap().String()]
  return ok
}

// clientIP is the TCP peer address. Forwarding headers are not trusted.
func clientIP(r *http.Request) string {
  host, _, err := net.SplitHostPort(r.RemoteAddr)
  if err != nil {
    return r.RemoteAddr
  }
  return host
}

func tokenMatches(secret, supplied string) bool {
  if secret == "" {
    return false
  }
  return subtle.ConstantTimeCompare([]byte(secret), []byte(supplied)) == 1
}
