package main

import (
  "context"
  "encoding/json"
  "fmt"
  "os"
  "os/signal"
  "syscall"
  "time"

  "github.com/sirupsen/logrus"
  "github.com/spf13/cobra"

  "wol-host-agent/internal/config"
  "wol-host-agent/internal/logging"
  "wol-host-agent/internal/server"
  "wol-host-agent/internal/system"
)

var configPath string

var bootLogger = logrus.New().WithField("component", "main")

func main() {
  if err := newRootCmd().Execute(); err != nil {
    bootLogger.WithError(err).Fatal("host-agent failed")
  }
}

func newRootCmd() *cobra.Command {
  root := &cobra.Command{
    Use: "host-agent",
    Short: "Wake-on-LAN host agent (status and power actions over HTTP)",
    SilenceUsage: true,
    SilenceErrors: true,
    RunE: runServe,
  }
  root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "path to device.yaml")

  root.AddCommand(&cobra.Command{
    Use: "serve",
    Short: "Start the HTTP listener",
    RunE: runServe,
  })
  root.AddCommand(checkConfigCmd())
  root.AddCommand(statusCmd())
  return root
}

func loadConfig() (*config.Config, error) {
  bootLogger.WithField("path", configPath).Info("loading config")
  cfg, err := config.Load(configPath)
  if err != nil {
    return nil, fmt.Errorf("config load failed: %w", err)
  }
  return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
  cfg, err := loadConfig()
  if err != nil {
    return err
  }

  logger, err := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
  if err != nil {
    return err
  }

  platform := system.DetectPlatform()
  if platform == system.PlatformUnknown {
    logger.WithField("platform", platform.String()).Warn("power actions unsupported on this platform")
  }
  power := system.NewDispatcher(platform, system.ExecLauncher{}, logger)
  srv := server.New(cfg, logger, power)

  ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
  defer stop()

  return srv.Run(ctx)
}

func checkConfigCmd() *cobra.Command {
  return &cobra.Command{
    Use: "check-config",
    Short: "Validate the config file and print a summary",
    RunE: func(cmd *cobra.Command, args []string) error {
      cfg, err := loadConfig()
      if err != nil {
        return err
      }
      if _, err := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format); err != nil {
        return err
      }

      allowed := "any"
      if !cfg.AllowAllIPs() {
        allowed = fmt.Sprint(cfg.Host.AllowedIPs)
      }
      out := cmd.OutOrStdout()
      fmt.Fprintf(out, "config: %s\n", configPath)
      fmt.Fprintf(out, "port: %d\n", cfg.Host.Port)
      fmt.Fprintf(out, "allowed_ips: %s\n", allowed)
      fmt.Fprintf(out, "rate_limit_per_minute: %d\n", cfg.Host.RateLimitPerMinute)
      fmt.Fprintf(out, "platform: %s\n", system.DetectPlatform())
      return nil
    },
  }
}

func statusCmd() *cobra.Command {
  return &cobra.Command{
    Use: "status",
    Short: "Print the payload served on /status",
    RunE: func(cmd *cobra.Command, args []string) error {
      cfg, err := loadConfig()
      if err != nil {
        return err
      }
      enc := json.NewEncoder(cmd.OutOrStdout())
      enc.SetIndent("", "  ")
      return enc.Encode(server.BuildStatus(cfg.Host.Port, system.GetHostInfo(), time.Now()))
    },
  }
}
