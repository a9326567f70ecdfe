package artifact

import (
	"fmt"

	"github.com/led-matrix/ledinstall/internal/platform"
)

const (
	// AppName is the fixed name of the installed binary and the prefix
	// of every release artifact.
	AppName = "led-matrix-rs"

	releaseHost  = "https://github.com"
	releaseOwner = "led-matrix"
	releaseRepo  = "led-matrix-rs"
)

// LatestVersion is the selector for the newest published release.
const LatestVersion = "latest"

// Filename returns the artifact filename for an architecture tag.
func Filename(tag platform.ArchTag) string {
	return fmt.Sprintf("%s-%s", AppName, tag)
}

// URL constructs the download URL for a version selector and
// architecture tag. The tag must already have been validated by
// platform detection; URL itself has no failure mode.
func URL(tag platform.ArchTag, version string) string {
	if version == LatestVersion {
		return fmt.Sprintf("%s/%s/%s/releases/latest/download/%s",
			releaseHost, releaseOwner, releaseRepo, Filename(tag))
	}
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s",
		releaseHost, releaseOwner, releaseRepo, version, Filename(tag))
}
