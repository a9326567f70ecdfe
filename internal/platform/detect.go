package platform

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// supportedOS is the only kernel identity artifacts are built for.
const supportedOS = "linux"

// machineTags maps raw machine hardware identifiers to artifact tags.
// armv7l and armv8l fold together: an armv8l userland is a 32-bit
// userland on 64-bit silicon and runs the armv7 artifact. aarch64 and
// arm64 are two spellings of the same 64-bit identity.
var machineTags = map[string]ArchTag{
	"armv6l":  ArchARMv6,
	"armv7l":  ArchARMv7,
	"armv8l":  ArchARMv7,
	"aarch64": ArchAArch64,
	"arm64":   ArchAArch64,
}

// SupportedMachines returns the raw hardware identifiers the installer
// accepts, sorted, for use in error messages.
func SupportedMachines() []string {
	machines := make([]string, 0, len(machineTags))
	for m := range machineTags {
		machines = append(machines, m)
	}
	sort.Strings(machines)
	return machines
}

// Resolve maps raw OS and machine strings to an architecture tag.
// It is the pure core of detection, split out so the mapping table can
// be tested without touching the host.
func Resolve(osName, machine string) (ArchTag, error) {
	if osName != supportedOS {
		return "", fmt.Errorf("unsupported operating system %q: artifacts are built for %s only", osName, supportedOS)
	}

	tag, ok := machineTags[machine]
	if !ok {
		return "", fmt.Errorf("unsupported architecture %q: supported values are %s",
			machine, strings.Join(SupportedMachines(), ", "))
	}

	return tag, nil
}

// RealDetector implements Detector against the running host.
type RealDetector struct{}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect reads the kernel identity and machine hardware identifier and
// resolves them to an artifact tag. Any value outside the support table
// is a terminal error; there is no fallback tag.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	hostInfo, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("platform detection failed: %w", err)
	}

	tag, err := Resolve(hostInfo.OS, hostInfo.KernelArch)
	if err != nil {
		return nil, err
	}

	return &Info{
		OS:      hostInfo.OS,
		Machine: hostInfo.KernelArch,
		Arch:    tag,
	}, nil
}
