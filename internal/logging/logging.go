package logging

import (
  "fmt"
  "io"
  "strings"

  "github.com/sirupsen/logrus"
)

// New returns a logrus logger writing to out. format is "text" or "json".
func New(out io.Writer, level, format string) (*logrus.Logger, error) {
  logger := logrus.New()
  logger.SetOutput(out)

  lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
  if err != nil {
    return nil, fmt.Errorf("log.level: %w", err)
  }
  logger.SetLevel(lvl)

  switch strings.ToLower(strings.TrimSpace(format)) {
  case "", "text":
    logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
  case "json":
    logger.SetFormatter(&logrus.JSONFormatter{})
  default:
    return nil, fmt.Errorf("log.format: unsupported format %q", format)
  }

  return logger, nil
}
