// ledinstall fetches the pre-built led-matrix-rs binary for this
// device, installs it, and optionally registers it as a systemd
// service. It is designed to run unattended, including piped into a
// shell from the network.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/led-matrix/ledinstall/internal/config"
	"github.com/led-matrix/ledinstall/internal/installer"
	"github.com/led-matrix/ledinstall/internal/report"
)

const usage = `Usage: ledinstall [options]

Installs the led-matrix-rs server binary for this device.

Options:
  --version <SELECTOR>  release to install: a tag like v1.2.3, or "latest" (default)
  --no-systemd          skip systemd service registration
  -v, --verbose         print diagnostic detail
  -q, --quiet           print fatal errors only
  -h, --help            show this help

Environment:
  LED_MATRIX_VERSION      release selector (default "latest")
  LED_MATRIX_INSTALL_DIR  install directory override
  GITHUB_TOKEN            auth token for release downloads
  LED_MATRIX_VERBOSE      set to 1 for diagnostic detail
  LED_MATRIX_QUIET        set to 1 for fatal errors only

Flags override the environment. Root installs go to /usr/local/bin and
register a systemd unit; unprivileged installs go to ~/.local/bin.
`

func main() {
	cfg, err := config.Resolve(os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			fmt.Print(usage)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'ledinstall --help' for usage")
		os.Exit(1)
	}

	reporter := report.New(os.Stdout, os.Stderr, cfg.Verbosity)

	svc := installer.New(cfg, reporter, installer.Options{
		EUID: os.Geteuid(),
	})

	if err := svc.Run(context.Background()); err != nil {
		reporter.Error(err.Error())
		os.Exit(1)
	}
}
