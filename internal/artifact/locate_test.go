package artifact

import (
	"strings"
	"testing"

	"github.com/led-matrix/ledinstall/internal/platform"
)

func TestURL(t *testing.T) {
	tests := []struct {
		name     string
		tag      platform.ArchTag
		version  string
		expected string
	}{
		{
			name:     "latest_armv7",
			tag:      platform.ArchARMv7,
			version:  "latest",
			expected: "https://github.com/led-matrix/led-matrix-rs/releases/latest/download/led-matrix-rs-armv7",
		},
		{
			name:     "tagged_armv7",
			tag:      platform.ArchARMv7,
			version:  "v1.2.3",
			expected: "https://github.com/led-matrix/led-matrix-rs/releases/download/v1.2.3/led-matrix-rs-armv7",
		},
		{
			name:     "latest_armv6",
			tag:      platform.ArchARMv6,
			version:  "latest",
			expected: "https://github.com/led-matrix/led-matrix-rs/releases/latest/download/led-matrix-rs-armv6",
		},
		{
			name:     "tagged_aarch64",
			tag:      platform.ArchAArch64,
			version:  "v2.0.0",
			expected: "https://github.com/led-matrix/led-matrix-rs/releases/download/v2.0.0/led-matrix-rs-aarch64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := URL(tt.tag, tt.version)
			if url != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, url)
			}
		})
	}
}

func TestURLVariantsDifferOnlyInReleasePath(t *testing.T) {
	latest := URL(platform.ArchAArch64, "latest")
	tagged := URL(platform.ArchAArch64, "v1.2.3")

	// Same filename on both variants, no extension.
	wantSuffix := "/" + Filename(platform.ArchAArch64)
	for _, url := range []string{latest, tagged} {
		if !strings.HasSuffix(url, wantSuffix) {
			t.Errorf("url %q does not end in %q", url, wantSuffix)
		}
	}

	wantPrefix := "https://github.com/led-matrix/led-matrix-rs/releases/"
	for _, url := range []string{latest, tagged} {
		if !strings.HasPrefix(url, wantPrefix) {
			t.Errorf("url %q does not start with %q", url, wantPrefix)
		}
	}
}

func TestFilenameHasNoExtension(t *testing.T) {
	name := Filename(platform.ArchARMv6)
	if name != "led-matrix-rs-armv6" {
		t.Errorf("unexpected filename %q", name)
	}
	if strings.Contains(name, ".") {
		t.Errorf("artifact filename must have no extension: %q", name)
	}
}
