package config

// Environment variables recognized by the installer. Every one of them
// is optional; flags override the environment.
const (
	// EnvVersion selects which release to install (default "latest").
	EnvVersion = "LED_MATRIX_VERSION"
	// EnvInstallDir overrides the auto-resolved install directory.
	EnvInstallDir = "LED_MATRIX_INSTALL_DIR"
	// EnvAuthToken authenticates release downloads. The value is a
	// secret and must never appear in any output.
	EnvAuthToken = "GITHUB_TOKEN"
	// EnvVerbose enables diagnostic output when set to "1".
	EnvVerbose = "LED_MATRIX_VERBOSE"
	// EnvQuiet suppresses non-fatal output when set to "1".
	EnvQuiet = "LED_MATRIX_QUIET"
)

// DefaultVersion is the release selector used when none is given.
const DefaultVersion = "latest"
