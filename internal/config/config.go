package config

import (
  "errors"
  "fmt"
  "io/fs"
  "os"
  "path/filepath"
  "strings"

  "gopkg.in/yaml.v3"
)

const (
  DefaultPort = 8888
  defaultRelPath = "../config/device.yaml"
)

var (
  ErrConfigMissing = errors.New("config not found")
  ErrEmptySecret = errors.New("esp.token is empty")
)

type Config struct {
  ESP ESPConfig `yaml:"esp"`
  Host HostConfig `yaml:"host"`
  Log LogConfig `yaml:"log"`
}

type ESPConfig struct {
  Token string `yaml:"token"`
}

type HostConfig struct {
  Port int `yaml:"port"`
  AllowedIPs []string `yaml:"allowed_ips"`
  RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
}

type LogConfig struct {
  Level string `yaml:"level"`
  Format string `yaml:"format"`
}

// DefaultPath points at config/device.yaml one directory above the
// directory holding the running executable.
func DefaultPath() string {
  exe, err := os.Executable()
  if err != nil {
    return filepath.Clean(defaultRelPath)
  }
  if resolved, err := filepath.EvalSymlinks(exe); err == nil {
    exe = resolved
  }
  return filepath.Join(filepath.Dir(exe), defaultRelPath)
}

func Load(path string) (*Config, error) {
  b, err := os.ReadFile(path)
  if err != nil {
    if errors.Is(err, fs.ErrNotExist) {
      return nil, fmt.Errorf("%w: %s", ErrConfigMissing, path)
    }
    return nil, err
  }
  return Parse(b)
}

func Parse(b []byte) (*Config, error) {
  var cfg Config
  if err := yaml.Unmarshal(b, &cfg); err != nil {
    return nil, fmt.Errorf("parse config: %w", err)
  }

  if cfg.Host.Port == 0 {
    cfg.Host.Port = DefaultPort
  }
  if cfg.Host.Port < 0 || cfg.Host.Port > 65535 {
    return nil, fmt.Errorf("host.port out of range: %d", cfg.Host.Port)
  }
  if cfg.Host.RateLimitPerMinute < 0 {
    return nil, fmt.Errorf("host.rate_limit_per_minute must not be negative")
  }

  allowed := make([]string, 0, len(cfg.Host.AllowedIPs))
  for _, ip := range cfg.Host.AllowedIPs {
    ip = strings.TrimSpace(ip)
    if ip == "" {
      continue
    }
    allowed = append(allowed, ip)
  }
  cfg.Host.AllowedIPs = allowed

  if cfg.Log.Level == "" {
    cfg.Log.Level = "info"
  }
  if cfg.Log.Format == "" {
    cfg.Log.Format = "text"
  }

  // Compared verbatim by the server; never trimmed.
  if cfg.ESP.Token == "" {
    return nil, ErrEmptySecret
  }

  return &cfg, nil
}

func (c *Config) AllowAllIPs() bool {
  return len(c.Host.AllowedIPs) == 0
}
