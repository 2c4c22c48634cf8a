package e2e

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E verifies the built binary end to end: output format, exit codes
// and the absence of partial output on failure.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}

	tmpDir := t.TempDir()
	binName := "radiusfit"
	if runtime.GOOS == "windows" {
		binName = "radiusfit.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as CWD.
	rootDir := "../.."

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/radiusfit")
	cmd.Dir = rootDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build radiusfit: %v", err)
	}

	tests := []struct {
		name       string
		args       []string
		wantStdout []string
		wantStderr string
		wantCode   int
	}{
		{
			name:       "Defaults",
			args:       []string{"--no-color"},
			wantStdout: []string{"Polynomial coefficients (highest degree first):", "c4 = ", "Max error: 0.", "RMS error: 0."},
			wantCode:   0,
		},
		{
			name:       "Help",
			args:       []string{"--help"},
			wantStderr: "usage",
			wantCode:   0,
		},
		{
			name:       "Quiet Mode",
			args:       []string{"-q", "-d", "1"},
			wantStdout: []string{"# highest degree first\n"},
			wantCode:   0,
		},
		{
			name:       "Preset",
			args:       []string{"--no-color", "-ellipsoid", "intl"},
			wantStdout: []string{"Equatorial radius: 6378388.0000 m"},
			wantCode:   0,
		},
		{
			name:       "Too Few Samples",
			args:       []string{"-n", "1"},
			wantStderr: "sample_count",
			wantCode:   4,
		},
		{
			name:       "Underdetermined",
			args:       []string{"-n", "3", "-d", "5"},
			wantStderr: "at least 6 samples",
			wantCode:   3,
		},
		{
			name:       "Prolate Ellipsoid",
			args:       []string{"-re", "6356752", "-rp", "6378137"},
			wantStderr: "polar_radius",
			wantCode:   4,
		},
		{
			name:       "Unknown Flag",
			args:       []string{"--bogus"},
			wantStderr: "flag provided but not defined",
			wantCode:   4,
		},
		{
			name:       "Version Flag",
			args:       []string{"--version"},
			wantStdout: []string{"radiusfit"},
			wantCode:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			cmd := exec.Command(binPath, tt.args...)
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr
			err := cmd.Run()

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running binary: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nstdout: %s\nstderr: %s", code, tt.wantCode, stdout.String(), stderr.String())
			}

			for _, want := range tt.wantStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout missing %q, got:\n%s", want, stdout.String())
				}
			}
			if tt.wantStderr != "" && !strings.Contains(strings.ToLower(stderr.String()), strings.ToLower(tt.wantStderr)) {
				t.Errorf("stderr missing %q, got:\n%s", tt.wantStderr, stderr.String())
			}
			if tt.wantCode != 0 && stdout.Len() != 0 {
				t.Errorf("failed runs must not write to stdout, got:\n%s", stdout.String())
			}
		})
	}
}
