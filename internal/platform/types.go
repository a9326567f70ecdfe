// Package platform detects the host operating system and CPU and maps
// them onto the closed set of architecture tags that release artifacts
// are published under.
//
// The mapping table is intentionally small and exact-match: the
// installer supports Raspberry Pi class ARM hardware only, and adding a
// platform means extending the table, not generalizing the matcher.
package platform

import "context"

// ArchTag identifies which pre-built artifact variant to download.
type ArchTag string

const (
	// ArchARMv6 covers the original Pi and Pi Zero.
	ArchARMv6 ArchTag = "armv6"
	// ArchARMv7 covers 32-bit Pi 2/3/4 userlands, including 32-bit
	// userlands running on 64-bit silicon.
	ArchARMv7 ArchTag = "armv7"
	// ArchAArch64 covers 64-bit userlands.
	ArchAArch64 ArchTag = "aarch64"
)

// String returns the tag as it appears in artifact filenames.
func (t ArchTag) String() string {
	return string(t)
}

// Info contains the raw detection results alongside the resolved tag.
type Info struct {
	OS      string  // kernel identity, e.g. "linux"
	Machine string  // raw hardware identifier, e.g. "armv7l"
	Arch    ArchTag // resolved artifact tag
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}
