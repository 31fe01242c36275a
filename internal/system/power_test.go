package system

import (
  "errors"
  "os/exec"
  "testing"

  "github.com/sirupsen/logrus"
  "github.com/sirupsen/logrus/hooks/test"
  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

type launch struct {
  name string
  args []string
}

type fakeLauncher struct {
  calls []launch
  err error
}

func (f *fakeLauncher) Launch(name string, args ...string) error {
  f.calls = append(f.calls, launch{name: name, args: args})
  return f.err
}

func TestPlatformFromGOOS(t *testing.T) {
  assert.Equal(t, PlatformWindows, PlatformFromGOOS("windows"))
  assert.Equal(t, PlatformLinux, PlatformFromGOOS("linux"))
  assert.Equal(t, PlatformDarwin, PlatformFromGOOS("darwin"))
  assert.Equal(t, PlatformUnknown, PlatformFromGOOS("plan9"))
  assert.Equal(t, PlatformUnknown, PlatformFromGOOS(""))
  assert.Equal(t, "unknown", PlatformUnknown.String())
}

func TestCommandTable(t *testing.T) {
  cases := []struct {
    platform Platform
    action Action
    want string
  }{
    {PlatformLinux, ActionSleep, "systemctl suspend"},
    {PlatformLinux, ActionShutdown, "systemctl poweroff"},
    {PlatformLinux, ActionRestart, "systemctl reboot"},
    {PlatformDarwin, ActionSleep, "pmset sleepnow"},
    {PlatformDarwin, ActionShutdown, "sudo shutdown -h now"},
    {PlatformDarwin, ActionRestart, "sudo shutdown -r now"},
    {PlatformWindows, ActionShutdown, "shutdown /s /t 0"},
    {PlatformWindows, ActionRestart, "shutdown /r /t 0"},
  }
  for _, tc := range cases {
    cmd, ok := CommandFor(tc.platform, tc.action)
    require.True(t, ok, "%s/%s", tc.platform, tc.action)
    assert.Equal(t, tc.want, cmd.String())
  }

  sleep, ok := CommandFor(PlatformWindows, ActionSleep)
  require.True(t, ok)
  assert.Equal(t, "powershell", sleep.Name)
  assert.Equal(t, []string{"-NoProfile", "-Command", windowsSuspendScript}, sleep.Args)

  _, ok = CommandFor(PlatformUnknown, ActionSleep)
  assert.False(t, ok)
  _, ok = CommandFor(PlatformLinux, Action("hibernate"))
  assert.False(t, ok)
}

func TestDispatcherLaunchesOnce(t *testing.T) {
  logger, hook := test.NewNullLogger()
  launcher := &fakeLauncher{}
  d := NewDispatcher(PlatformLinux, launcher, logger)

  assert.True(t, d.Restart())
  require.Len(t, launcher.calls, 1)
  assert.Equal(t, "systemctl", launcher.calls[0].name)
  assert.Equal(t, []string{"reboot"}, launcher.calls[0].args)

  entry := hook.LastEntry()
  require.NotNil(t, entry)
  assert.Equal(t, logrus.InfoLevel, entry.Level)
  assert.Equal(t, "restart", entry.Data["action"])
  assert.NotEmpty(t, entry.Data["launch_id"])
}

func TestDispatcherActions(t *testing.T) {
  logger, _ := test.NewNullLogger()
  launcher := &fakeLauncher{}
  d := NewDispatcher(PlatformDarwin, launcher, logger)

  assert.True(t, d.Sleep())
  assert.True(t, d.Shutdown())
  assert.True(t, d.Restart())
  require.Len(t, launcher.calls, 3)
  assert.Equal(t, "pmset", launcher.calls[0].name)
  assert.Equal(t, []string{"shutdown", "-h", "now"}, launcher.calls[1].args)
  assert.Equal(t, []string{"shutdown", "-r", "now"}, launcher.calls[2].args)
}

func TestDispatcherUnknownPlatform(t *testing.T) {
  logger, _ := test.NewNullLogger()
  launcher := &fakeLauncher{}
  d := NewDispatcher(PlatformUnknown, launcher, logger)

  assert.False(t, d.Sleep())
  assert.False(t, d.Shutdown())
  assert.False(t, d.Restart())
  assert.Empty(t, launcher.calls)
}

func TestDispatcherLaunchError(t *testing.T) {
  logger, hook := test.NewNullLogger()
  launcher := &fakeLauncher{err: errors.New("exec: not found")}
  d := NewDispatcher(PlatformWindows, launcher, logger)

  assert.False(t, d.Shutdown())
  require.Len(t, launcher.calls, 1)

  entry := hook.LastEntry()
  require.NotNil(t, entry)
  assert.Equal(t, logrus.ErrorLevel, entry.Level)
  assert.Equal(t, "shutdown failed", entry.Message)
  assert.Equal(t, launcher.err, entry.Data[logrus.ErrorKey])
}

func TestExecLauncherMissingBinary(t *testing.T) {
  err := ExecLauncher{}.Launch("wol-host-agent-no-such-binary")
  assert.Error(t, err)
}

func TestExecLauncherStarts(t *testing.T) {
  path, err := exec.LookPath("true")
  if err != nil {
    t.Skip("true not available")
  }
  assert.NoError(t, ExecLauncher{}.Launch(path))
}
