// Package systemd registers the installed server as a system service.
//
// Registration writes the unit file and reloads the manager's unit
// index; it deliberately does not enable or start the service, leaving
// that decision to the operator.
package systemd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	// UnitName is the service unit filename.
	UnitName = "led-matrix.service"
	// UnitDir is the standard system service-unit directory.
	UnitDir = "/etc/systemd/system"

	unitPerm = 0o644
)

// EmbeddedBinaryPath is the install path baked into the unit template.
// The template is written verbatim and does not track the actually
// resolved install directory; callers compare against this to warn on
// a mismatch.
const EmbeddedBinaryPath = "/usr/local/bin/led-matrix-rs"

// unitContent is the fixed unit definition. The server needs root for
// GPIO access, must not start before the LAN is reachable because its
// control surface is HTTP, and restarts on failure after a short delay.
const unitContent = `[Unit]
Description=LED Matrix HTTP API Server
After=network-online.target
Wants=network-online.target

[Service]
ExecStart=` + EmbeddedBinaryPath + ` --media-dir /var/lib/led-matrix/media --port 8080
Restart=on-failure
RestartSec=5
User=root
Environment=RUST_LOG=info

[Install]
WantedBy=multi-user.target
`

// Reloader asks the service manager to re-read its unit files.
type Reloader interface {
	DaemonReload(ctx context.Context) error
}

// SystemctlReloader reloads via the systemctl command.
type SystemctlReloader struct{}

// DaemonReload runs systemctl daemon-reload.
func (SystemctlReloader) DaemonReload(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "systemctl", "daemon-reload")
	if output, err := cmd.CombinedOutput(); err != nil {
		detail := strings.TrimSpace(string(output))
		if detail != "" {
			return fmt.Errorf("systemctl daemon-reload: %w: %s", err, detail)
		}
		return fmt.Errorf("systemctl daemon-reload: %w", err)
	}
	return nil
}

// Registrar writes the unit file and reloads the manager.
type Registrar struct {
	unitDir  string
	reloader Reloader
}

// NewRegistrar creates a registrar targeting the system unit directory.
func NewRegistrar(reloader Reloader) *Registrar {
	if reloader == nil {
		reloader = SystemctlReloader{}
	}
	return &Registrar{unitDir: UnitDir, reloader: reloader}
}

// UnitPath returns where the unit file is written.
func (r *Registrar) UnitPath() string {
	return r.unitDir + "/" + UnitName
}

// Register writes the unit definition and reloads the unit index. A
// reload failure is an error: without it the unit stays invisible
// until the next reboot, and the design rejects that silent
// degradation.
func (r *Registrar) Register(ctx context.Context) error {
	if err := os.WriteFile(r.UnitPath(), []byte(unitContent), unitPerm); err != nil {
		return fmt.Errorf("write unit file %s: %w", r.UnitPath(), err)
	}

	if err := r.reloader.DaemonReload(ctx); err != nil {
		return fmt.Errorf("reload service manager: %w", err)
	}

	return nil
}
