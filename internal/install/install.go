// Package install places a downloaded artifact into its final location
// and performs a best-effort launch check on the result.
package install

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

const (
	// SystemInstallDir receives privileged installs.
	SystemInstallDir = "/usr/local/bin"
	// userInstallDir (under $HOME) receives unprivileged installs.
	userInstallDir = ".local/bin"

	dirPerm    = 0o755
	binaryPerm = 0o755

	smokeTestTimeout = 10 * time.Second
)

// ResolveTargetDir picks the install directory. An explicit override
// always wins; otherwise privileged runs install system-wide and
// unprivileged runs install under the user's home. Pure function, no
// failure mode.
func ResolveTargetDir(override string, euid int, home string) string {
	if override != "" {
		return override
	}
	if euid == 0 {
		return SystemInstallDir
	}
	return filepath.Join(home, userInstallDir)
}

// SmokeTester launches a freshly installed binary to confirm it runs.
type SmokeTester interface {
	Check(ctx context.Context, binaryPath string) error
}

// ExecSmokeTester runs the binary with --version under a timeout so a
// wedged binary cannot hang an unattended install.
type ExecSmokeTester struct{}

// Check invokes binaryPath --version and reports any launch failure.
func (ExecSmokeTester) Check(ctx context.Context, binaryPath string) error {
	ctx, cancel := context.WithTimeout(ctx, smokeTestTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binaryPath, "--version")
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s --version: %w (output: %s)", binaryPath, err, output)
	}
	return nil
}

// Outcome describes a completed installation.
type Outcome struct {
	// BinaryPath is where the binary now lives.
	BinaryPath string
	// SmokeTestErr is non-nil when the installed binary failed its
	// launch check. The install itself still succeeded.
	SmokeTestErr error
}

// Installer performs the filesystem half of an installation.
type Installer struct {
	binaryName string
	smoke      SmokeTester
}

// New creates an installer that places binaries under the given name.
func New(binaryName string, smoke SmokeTester) *Installer {
	if smoke == nil {
		smoke = ExecSmokeTester{}
	}
	return &Installer{binaryName: binaryName, smoke: smoke}
}

// Install moves tempFile into targetDir under the fixed binary name,
// creating the directory if needed and overwriting any previous
// installation, then marks it executable and smoke-tests it. Repeating
// an install is safe and leaves exactly one binary in place.
//
// Filesystem failures are returned as errors and mean nothing usable
// was installed. A smoke-test failure is reported in the Outcome
// instead: the binary is already correctly placed at that point, and
// the operator should be warned rather than blocked.
func (i *Installer) Install(ctx context.Context, tempFile, targetDir string) (*Outcome, error) {
	if err := os.MkdirAll(targetDir, dirPerm); err != nil {
		return nil, fmt.Errorf("create install directory %s: %w", targetDir, err)
	}

	binaryPath := filepath.Join(targetDir, i.binaryName)
	if err := moveFile(tempFile, binaryPath); err != nil {
		return nil, fmt.Errorf("install binary to %s: %w", binaryPath, err)
	}

	if err := os.Chmod(binaryPath, binaryPerm); err != nil {
		return nil, fmt.Errorf("set executable: %w", err)
	}

	outcome := &Outcome{BinaryPath: binaryPath}
	outcome.SmokeTestErr = i.smoke.Check(ctx, binaryPath)
	return outcome, nil
}

// moveFile renames src onto dst, falling back to copy-and-remove when
// the two paths live on different filesystems. The download lands in
// the system temp directory, which is often a different mount than
// /usr/local, so the fallback is the common path on real devices.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, binaryPerm)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return fmt.Errorf("copy: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("close destination: %w", err)
	}

	return os.Remove(src)
}
