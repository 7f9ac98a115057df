package monitor

import (
	"log/slog"
	"os/exec"
)

// SystemdChecker shells out to systemctl; a non-zero exit means the unit is
// not active.
type SystemdChecker struct{}

func (SystemdChecker) IsDown(service string) bool {
	cmd := exec.Command("systemctl", "status", service)

	if err := cmd.Run(); err != nil {
		slog.Debug("systemctl reported service not active", "service", service, "error", err)
		return true
	}

	return false
}
