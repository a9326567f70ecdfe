// Package config resolves the installer's configuration from the
// process environment and command-line arguments into one immutable
// value. Every later stage receives the resolved Config explicitly and
// never reads the environment on its own.
package config

// Verbosity is the three-level output policy. Quiet suppresses all
// non-fatal output, including verbose output, regardless of what other
// flags are set.
type Verbosity int

const (
	// VerbosityNormal prints progress and warnings.
	VerbosityNormal Verbosity = iota
	// VerbosityQuiet prints fatal errors only.
	VerbosityQuiet
	// VerbosityVerbose additionally prints diagnostic detail such as
	// resolved URLs and raw platform strings.
	VerbosityVerbose
)

// String returns the verbosity level name.
func (v Verbosity) String() string {
	switch v {
	case VerbosityQuiet:
		return "quiet"
	case VerbosityVerbose:
		return "verbose"
	default:
		return "normal"
	}
}

// Config is the immutable result of resolution.
type Config struct {
	// Version is the release selector: a literal tag or "latest".
	Version string
	// InstallDir overrides target-directory resolution when non-empty.
	InstallDir string
	// AuthToken is the optional download credential. Never logged.
	AuthToken string
	// Verbosity is the resolved output policy.
	Verbosity Verbosity
	// NoSystemd disables service registration even for privileged runs.
	NoSystemd bool
}
