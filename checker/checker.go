package checker

import (
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/host"

	"frontend/logger"
)

type SystemStatus struct {
	Hostname     string   `json:"hostname"`
	Uptime       uint64   `json:"uptime_seconds"`
	UptimeString string   `json:"uptime_string"`
	GoVersion    string   `json:"go_version"`
	Version      string   `json:"version"`
	Routes       []string `json:"routes"`
	StartedAt    string   `json:"started_at"`
}

// Swapped in tests.
var (
	uptime   = host.Uptime
	hostInfo = host.Info
)

var startedAt = time.Now()

func CheckSystem(version string, routes []string) (SystemStatus, error) {
	status := SystemStatus{
		GoVersion: runtime.Version(),
		Version:   version,
		Routes:    routes,
		StartedAt: startedAt.UTC().Format(time.RFC3339),
	}

	info, err := hostInfo()
	if err != nil {
		logger.Warn("CheckSystem: failed to read host info: %v", err)
	} else {
		status.Hostname = info.Hostname
	}

	// Check Uptime
	up, err := uptime()
	if err != nil {
		return status, err
	}
	status.Uptime = up

	// Helper to format uptime
	d := time.Duration(up) * time.Second
	status.UptimeString = d.String()

	return status, nil
}
