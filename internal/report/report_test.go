package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/led-matrix/ledinstall/internal/config"
)

func TestVerbosityGating(t *testing.T) {
	tests := []struct {
		name       string
		verbosity  config.Verbosity
		wantInfo   bool
		wantDetail bool
		wantError  bool
	}{
		{
			name:       "normal",
			verbosity:  config.VerbosityNormal,
			wantInfo:   true,
			wantDetail: false,
			wantError:  true,
		},
		{
			name:       "verbose",
			verbosity:  config.VerbosityVerbose,
			wantInfo:   true,
			wantDetail: true,
			wantError:  true,
		},
		{
			name:       "quiet",
			verbosity:  config.VerbosityQuiet,
			wantInfo:   false,
			wantDetail: false,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf, outBuf bytes.Buffer
			r := New(&outBuf, &logBuf, tt.verbosity)

			r.Progress("progress-marker")
			r.Detail("detail-marker")
			r.Error("error-marker")

			logged := logBuf.String()
			if got := strings.Contains(logged, "progress-marker"); got != tt.wantInfo {
				t.Errorf("progress output: got %v, want %v", got, tt.wantInfo)
			}
			if got := strings.Contains(logged, "detail-marker"); got != tt.wantDetail {
				t.Errorf("detail output: got %v, want %v", got, tt.wantDetail)
			}
			if got := strings.Contains(logged, "error-marker"); got != tt.wantError {
				t.Errorf("error output: got %v, want %v", got, tt.wantError)
			}
		})
	}
}

func TestNextStepsVariants(t *testing.T) {
	tests := []struct {
		name              string
		privileged        bool
		serviceRegistered bool
		wantFragment      string
	}{
		{
			name:              "service_registered",
			privileged:        true,
			serviceRegistered: true,
			wantFragment:      "systemctl enable --now led-matrix.service",
		},
		{
			name:         "privileged_no_service",
			privileged:   true,
			wantFragment: "--no-systemd",
		},
		{
			name:         "unprivileged",
			wantFragment: ".local/bin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf, outBuf bytes.Buffer
			r := New(&outBuf, &logBuf, config.VerbosityNormal)

			r.NextSteps("/usr/local/bin/led-matrix-rs", tt.privileged, tt.serviceRegistered)

			if !strings.Contains(outBuf.String(), tt.wantFragment) {
				t.Errorf("next steps missing %q:\n%s", tt.wantFragment, outBuf.String())
			}
		})
	}
}

func TestNextStepsSuppressedWhenQuiet(t *testing.T) {
	var logBuf, outBuf bytes.Buffer
	r := New(&outBuf, &logBuf, config.VerbosityQuiet)

	r.NextSteps("/usr/local/bin/led-matrix-rs", true, true)

	if outBuf.Len() != 0 {
		t.Errorf("quiet mode should suppress next steps, got:\n%s", outBuf.String())
	}
}
