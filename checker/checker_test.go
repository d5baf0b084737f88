package checker

import (
	"bytes"
	"errors"
	"runtime"
	"testing"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/stretchr/testify/require"

	"frontend/logger"
)

func TestCheckSystem(t *testing.T) {
	orig := uptime
	t.Cleanup(func() { uptime = orig })
	uptime = func() (uint64, error) { return 3661, nil }

	status, err := CheckSystem("v9", []string{"/", "/about"})
	require.NoError(t, err)
	require.Equal(t, uint64(3661), status.Uptime)
	require.Equal(t, "1h1m1s", status.UptimeString)
	require.Equal(t, runtime.Version(), status.GoVersion)
	require.Equal(t, "v9", status.Version)
	require.Equal(t, []string{"/", "/about"}, status.Routes)
	require.NotEmpty(t, status.StartedAt)
}

func TestCheckSystem_UptimeError(t *testing.T) {
	orig := uptime
	t.Cleanup(func() { uptime = orig })
	uptime = func() (uint64, error) { return 0, errors.New("no /proc") }

	status, err := CheckSystem("v1", nil)
	require.Error(t, err)
	require.Equal(t, "v1", status.Version)
}

func TestCheckSystem_HostInfoErrorIsLogged(t *testing.T) {
	origUptime, origInfo := uptime, hostInfo
	t.Cleanup(func() {
		uptime, hostInfo = origUptime, origInfo
		logger.SetOutput(&bytes.Buffer{})
		logger.Reset()
	})
	uptime = func() (uint64, error) { return 60, nil }
	hostInfo = func() (*host.InfoStat, error) { return nil, errors.New("no hostname") }

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.Reset()

	status, err := CheckSystem("v1", nil)
	require.NoError(t, err)
	require.Empty(t, status.Hostname)
	require.Equal(t, uint64(60), status.Uptime)
	require.Contains(t, buf.String(), "[WARN] CheckSystem: failed to read host info: no hostname")

	logs := logger.Recent(1)
	require.Len(t, logs, 1)
	require.Equal(t, "WARN", logs[0].Level)
}
