// Package installer orchestrates a complete installation run: platform
// detection, artifact download, placement, and optional service
// registration, strictly in sequence. Every stage either completes or
// fails the whole run; re-running the installer from scratch is always
// safe.
package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/led-matrix/ledinstall/internal/artifact"
	"github.com/led-matrix/ledinstall/internal/config"
	"github.com/led-matrix/ledinstall/internal/install"
	"github.com/led-matrix/ledinstall/internal/platform"
	"github.com/led-matrix/ledinstall/internal/report"
	"github.com/led-matrix/ledinstall/internal/systemd"
	"github.com/led-matrix/ledinstall/internal/transport"
)

// Options injects collaborators. Zero values select the real
// implementations; tests substitute fakes.
type Options struct {
	Detector    platform.Detector
	LookPath    transport.LookPathFunc
	Tool        transport.Tool // skips tool probing entirely when set
	SmokeTester install.SmokeTester
	Registrar   ServiceRegistrar

	// EUID is the effective user id deciding privileged behavior.
	// Callers pass os.Geteuid(); tests pass fixed values.
	EUID int
	// Home is the user home directory; empty means ask the OS.
	Home string
	// TempRoot overrides the system temp directory for downloads.
	TempRoot string
}

// ServiceRegistrar registers the installed server with the service
// manager. Satisfied by systemd.Registrar.
type ServiceRegistrar interface {
	UnitPath() string
	Register(ctx context.Context) error
}

// Service runs installations.
type Service struct {
	cfg      *config.Config
	reporter *report.Reporter
	opts     Options
}

// New creates an installation service with dependency injection.
func New(cfg *config.Config, reporter *report.Reporter, opts Options) *Service {
	if opts.Detector == nil {
		opts.Detector = platform.NewDetector()
	}
	return &Service{cfg: cfg, reporter: reporter, opts: opts}
}

// Run performs one installation attempt.
func (s *Service) Run(ctx context.Context) error {
	// 1. Dependency check, before any side effect or network activity.
	tool := s.opts.Tool
	if tool == nil {
		var err error
		tool, err = transport.Select(s.opts.LookPath)
		if err != nil {
			return err
		}
	}
	s.reporter.Detail("download tool selected", "tool", tool.Name())

	// 2. Platform detection.
	info, err := s.opts.Detector.Detect(ctx)
	if err != nil {
		return err
	}
	s.reporter.Detail("platform detected", "os", info.OS, "machine", info.Machine, "arch", info.Arch)

	// 3. Target directory resolution.
	euid := s.opts.EUID
	privileged := euid == 0

	home := s.opts.Home
	if home == "" && s.cfg.InstallDir == "" && !privileged {
		home, err = os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
	}
	targetDir := install.ResolveTargetDir(s.cfg.InstallDir, euid, home)
	s.reporter.Detail("install directory resolved", "dir", targetDir)

	// 4. Artifact location.
	url := artifact.URL(info.Arch, s.cfg.Version)
	s.reporter.Detail("artifact located", "url", url)

	// 5. Download. The token itself never appears in output.
	s.reporter.Progress("downloading "+artifact.Filename(info.Arch), "version", s.cfg.Version)
	if s.cfg.AuthToken != "" {
		s.reporter.Detail("using authenticated download")
	}
	downloader := artifact.NewDownloader(tool)
	if s.opts.TempRoot != "" {
		downloader = artifact.NewDownloaderAt(tool, s.opts.TempRoot)
	}
	dl, err := downloader.Fetch(ctx, url, s.cfg.AuthToken)
	if err != nil {
		return err
	}
	defer func() { _ = dl.Cleanup() }()

	// 6. Installation. Ownership of the temp file passes to the
	// installer; the deferred Cleanup only removes the emptied
	// directory on success.
	s.reporter.Progress("installing", "dir", targetDir)
	inst := install.New(artifact.AppName, s.opts.SmokeTester)
	outcome, err := inst.Install(ctx, dl.Path, targetDir)
	if err != nil {
		return err
	}
	if outcome.SmokeTestErr != nil {
		s.reporter.Warn("installed binary failed its launch check", "err", outcome.SmokeTestErr)
	}

	// 7. Service registration, privileged runs only.
	registered := false
	if privileged && !s.cfg.NoSystemd {
		registrar := s.opts.Registrar
		if registrar == nil {
			registrar = systemd.NewRegistrar(nil)
		}
		s.reporter.Progress("registering systemd service", "unit", registrar.UnitPath())
		if filepath.Dir(systemd.EmbeddedBinaryPath) != targetDir {
			s.reporter.Warn("service unit points at "+systemd.EmbeddedBinaryPath+" but the binary was installed elsewhere",
				"installed", outcome.BinaryPath)
		}
		if err := registrar.Register(ctx); err != nil {
			return err
		}
		registered = true
	}

	// 8. Closing instructions.
	s.reporter.NextSteps(outcome.BinaryPath, privileged, registered)
	return nil
}
