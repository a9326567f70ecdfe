// Package transport fetches release artifacts by shelling out to an
// installed transfer tool. The installer is designed to run unattended
// from a network pipe on a freshly imaged device, so it relies on the
// tools such a device already has rather than carrying its own HTTP
// stack: curl when present, wget otherwise.
package transport

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNoTransport indicates that neither supported transfer tool is
// installed. This is checked eagerly, before any network activity.
var ErrNoTransport = errors.New("no download tool available: install curl or wget")

// Tool transfers a URL to a local file. Implementations must attach the
// auth token as an Authorization header and must never include the
// token in any error message.
type Tool interface {
	// Name returns the tool's command name, for diagnostics.
	Name() string
	// Fetch downloads url into dest, overwriting dest if it exists.
	Fetch(ctx context.Context, url, dest, authToken string) error
}

// LookPathFunc resolves a command name to an executable path. It
// matches exec.LookPath and exists so tests can control tool presence.
type LookPathFunc func(name string) (string, error)

// Select probes for the supported transfer tools and returns the first
// one found. The preference order is fixed: curl, then wget. If lookPath
// is nil, exec.LookPath is used.
func Select(lookPath LookPathFunc) (Tool, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	if path, err := lookPath("curl"); err == nil {
		return &CurlTool{path: path}, nil
	}
	if path, err := lookPath("wget"); err == nil {
		return &WgetTool{path: path}, nil
	}

	return nil, ErrNoTransport
}

// CurlTool fetches with curl.
type CurlTool struct {
	path string
}

// Name returns "curl".
func (c *CurlTool) Name() string { return "curl" }

// Fetch runs curl with fail-on-HTTP-error and redirect following, the
// flags a release download from a forge requires.
func (c *CurlTool) Fetch(ctx context.Context, url, dest, authToken string) error {
	args := []string{"--fail", "--location", "--silent", "--show-error", "--output", dest}
	if authToken != "" {
		args = append(args, "--header", "Authorization: Bearer "+authToken)
	}
	args = append(args, url)

	return runTool(ctx, c.Name(), c.path, url, args)
}

// WgetTool fetches with wget.
type WgetTool struct {
	path string
}

// Name returns "wget".
func (w *WgetTool) Name() string { return "wget" }

// Fetch runs wget. wget follows redirects by default.
func (w *WgetTool) Fetch(ctx context.Context, url, dest, authToken string) error {
	args := []string{"--quiet", "--output-document", dest}
	if authToken != "" {
		args = append(args, "--header", "Authorization: Bearer "+authToken)
	}
	args = append(args, url)

	return runTool(ctx, w.Name(), w.path, url, args)
}

// runTool executes the tool and converts a failure into an error that
// names the tool and URL but never the command line, which may carry
// the auth token.
func runTool(ctx context.Context, name, path, url string, args []string) error {
	cmd := exec.CommandContext(ctx, path, args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if detail != "" {
			return fmt.Errorf("%s failed for %s: %w: %s", name, url, err, detail)
		}
		return fmt.Errorf("%s failed for %s: %w", name, url, err)
	}

	return nil
}
