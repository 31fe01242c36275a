package system

import (
  "os/exec"
  "runtime"
  "strings"

  "github.com/google/uuid"
  "github.com/sirupsen/logrus"
)

type Platform int

const (
  PlatformUnknown Platform = iota
  PlatformWindows
  PlatformLinux
  PlatformDarwin
)

func (p Platform) String() string {
  switch p {
  case PlatformWindows:
    return "windows"
  case PlatformLinux:
    return "linux"
  case PlatformDarwin:
    return "darwin"
  default:
    return "unknown"
  }
}

func PlatformFromGOOS(goos string) Platform {
  switch goos {
  case "windows":
    return PlatformWindows
  case "linux":
    return PlatformLinux
  case "darwin":
    return PlatformDarwin
  default:
    return PlatformUnknown
  }
}

func DetectPlatform() Platform {
  return PlatformFromGOOS(runtime.GOOS)
}

type Action string

const (
  ActionSleep Action = "sleep"
  ActionShutdown Action = "shutdown"
  ActionRestart Action = "restart"
)

type Command struct {
  Name string
  Args []string
}

func (c Command) String() string {
  return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

const windowsSuspendScript = "(Add-Type -AssemblyName System.Windows.Forms); [System.Windows.Forms.Application]::SetSuspendState('Suspend',$false,$false)"

var platformCommands = map[Platform]map[Action]Command{
  PlatformWindows: {
    ActionSleep: {Name: "powershell", Args: []string{"-NoProfile", "-Command", windowsSuspendScript}},
    ActionShutdown: {Name: "shutdown", Args: []string{"/s", "/t", "0"}},
    ActionRestart: {Name: "shutdown", Args: []string{"/r", "/t", "0"}},
  },
  PlatformLinux: {
    ActionSleep: {Name: "systemctl", Args: []string{"suspend"}},
    ActionShutdown: {Name: "systemctl", Args: []string{"poweroff"}},
    ActionRestart: {Name: "systemctl", Args: []string{"reboot"}},
  },
  PlatformDarwin: {
    ActionSleep: {Name: "pmset", Args: []string{"sleepnow"}},
    ActionShutdown: {Name: "sudo", Args: []string{"shutdown", "-h", "now"}},
    ActionRestart: {Name: "sudo", Args: []string{"shutdown", "-r", "now"}},
  },
}

// CommandFor returns the native command that performs action on p.
func CommandFor(p Platform, action Action) (Command, bool) {
  cmds, ok := platformCommands[p]
  if !ok {
    return Command{}, false
  }
  cmd, ok := cmds[action]
  return cmd, ok
}

type Launcher interface {
  Launch(name string, args ...string) error
}

// ExecLauncher starts the process and returns immediately. The child is
// reaped in the background and its exit status is ignored.
type ExecLauncher struct{}

func (ExecLauncher) Launch(name string, args ...string) error {
  cmd := exec.Command(name, args...)
  if err := cmd.Start(); err != nil {
    return err
  }
  go func() {
    _ = cmd.Wait()
  }()
  return nil
}

type Dispatcher struct {
  platform Platform
  launcher Launcher
  logger logrus.FieldLogger
}

func NewDispatcher(platform Platform, launcher Launcher, logger logrus.FieldLogger) *Dispatcher {
  if launcher == nil {
    launcher = ExecLauncher{}
  }
  return &Dispatcher{
    platform: platform,
    launcher: launcher,
    logger: logger.WithField("component", "power"),
  }
}

func (d *Dispatcher) Sleep() bool {
  return d.Trigger(ActionSleep)
}

func (d *Dispatcher) Shutdown() bool {
  return d.Trigger(ActionShutdown)
}

func (d *Dispatcher) Restart() bool {
  return d.Trigger(ActionRestart)
}

// Trigger launches the command for action and reports whether the launch
// succeeded. It does not wait for the power transition.
func (d *Dispatcher) Trigger(action Action) bool {
  log := d.logger.WithFields(logrus.Fields{
    "action": string(action),
    "platform": d.platform.String(),
  })

  cmd, ok := CommandFor(d.platform, action)
  if !ok {
    log.Warn("unsupported platform")
    return false
  }

  log = log.WithFields(logrus.Fields{
    "launch_id": uuid.NewString(),
    "command": cmd.String(),
  })
  if err := d.launcher.Launch(cmd.Name, cmd.Args...); err != nil {
    log.WithError(err).Errorf("%s failed", action)
    return false
  }
  log.Info("power command launched")
  return true
}
