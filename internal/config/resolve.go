package config

import (
	"errors"
	"fmt"
)

// ErrHelp is returned by Resolve when --help or -h is given. The caller
// prints usage and exits successfully without resolving further.
var ErrHelp = errors.New("help requested")

// Resolve merges environment variables, command-line arguments, and
// defaults into a Config. Environment values are read first; flags
// override them, and for repeated flags the last occurrence wins.
// Unknown arguments and value-flags missing their argument are fatal.
func Resolve(args []string, getenv func(string) string) (*Config, error) {
	version := getenv(EnvVersion)
	if version == "" {
		version = DefaultVersion
	}

	verbose := getenv(EnvVerbose) == "1"
	quiet := getenv(EnvQuiet) == "1"
	noSystemd := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--help", "-h":
			return nil, ErrHelp
		case "--version":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("option --version requires an argument")
			}
			i++
			if args[i] == "" {
				return nil, fmt.Errorf("option --version requires a non-empty argument")
			}
			version = args[i]
		case "--no-systemd":
			noSystemd = true
		case "--verbose", "-v":
			verbose = true
		case "--quiet", "-q":
			quiet = true
		default:
			return nil, fmt.Errorf("unknown option: %s", arg)
		}
	}

	// Quiet wins over verbose: an unattended run that asked for silence
	// must stay silent even if a wrapper script also exported verbose.
	verbosity := VerbosityNormal
	switch {
	case quiet:
		verbosity = VerbosityQuiet
	case verbose:
		verbosity = VerbosityVerbose
	}

	return &Config{
		Version:    version,
		InstallDir: getenv(EnvInstallDir),
		AuthToken:  getenv(EnvAuthToken),
		Verbosity:  verbosity,
		NoSystemd:  noSystemd,
	}, nil
}
