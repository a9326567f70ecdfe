// Package report renders the installer's user-facing output under the
// three-level verbosity policy. All formatting decisions are pure
// functions of the resolved configuration; nothing here reads the
// environment.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/led-matrix/ledinstall/internal/config"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	stepStyle    = lipgloss.NewStyle().PaddingLeft(2)
)

// Reporter writes progress, diagnostics, warnings, and errors. Quiet
// suppresses everything except errors; verbose adds diagnostic detail
// that normal mode omits.
type Reporter struct {
	logger    *log.Logger
	out       io.Writer
	verbosity config.Verbosity
}

// New creates a reporter. Log output goes to logOut, the final
// next-steps block to out.
func New(out, logOut io.Writer, verbosity config.Verbosity) *Reporter {
	logger := log.NewWithOptions(logOut, log.Options{
		Prefix: "ledinstall",
	})

	switch verbosity {
	case config.VerbosityQuiet:
		logger.SetLevel(log.ErrorLevel)
	case config.VerbosityVerbose:
		logger.SetLevel(log.DebugLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	return &Reporter{logger: logger, out: out, verbosity: verbosity}
}

// Progress reports a step of the installation. Suppressed when quiet.
func (r *Reporter) Progress(msg string, keyvals ...interface{}) {
	r.logger.Info(msg, keyvals...)
}

// Detail reports diagnostic detail such as resolved URLs and raw
// platform strings. Emitted only when verbose.
func (r *Reporter) Detail(msg string, keyvals ...interface{}) {
	r.logger.Debug(msg, keyvals...)
}

// Warn reports a recoverable condition. Suppressed when quiet.
func (r *Reporter) Warn(msg string, keyvals ...interface{}) {
	r.logger.Warn(msg, keyvals...)
}

// Error reports a fatal condition. Never suppressed.
func (r *Reporter) Error(msg string, keyvals ...interface{}) {
	r.logger.Error(msg, keyvals...)
}

// NextSteps renders the closing instructions. The content branches on
// whether the install ran privileged and whether a service unit was
// registered. Suppressed when quiet, like all informational output.
func (r *Reporter) NextSteps(binaryPath string, privileged, serviceRegistered bool) {
	if r.verbosity == config.VerbosityQuiet {
		return
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, headingStyle.Render("Installed "+binaryPath))
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, headingStyle.Render("Next steps:"))

	switch {
	case serviceRegistered:
		r.step("Enable and start the service:")
		r.step("  sudo systemctl enable --now led-matrix.service")
		r.step("Then check it is serving:")
		r.step("  curl http://localhost:8080/api/v1/status")
	case privileged:
		r.step("Service registration was skipped (--no-systemd).")
		r.step("Run the server directly:")
		r.step("  " + binaryPath + " --media-dir /var/lib/led-matrix/media --port 8080")
	default:
		r.step("Make sure " + binaryPath + " is on your PATH (~/.local/bin).")
		r.step("The LED matrix needs GPIO access, so run the server with sudo:")
		r.step("  sudo " + binaryPath + " --media-dir ./media --port 8080")
		r.step("Re-run this installer as root to register a systemd service.")
	}

	fmt.Fprintln(r.out)
}

func (r *Reporter) step(line string) {
	fmt.Fprintln(r.out, stepStyle.Render(line))
}
