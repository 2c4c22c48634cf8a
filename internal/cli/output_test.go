package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/agbru/radiusfit/internal/polyfit"
	"github.com/agbru/radiusfit/internal/quality"
	"github.com/agbru/radiusfit/internal/ui"
)

func TestMain(m *testing.M) {
	ui.InitTheme(true)
	os.Exit(m.Run())
}

func mustPoly(t *testing.T, ascending ...float64) polyfit.Polynomial {
	t.Helper()
	p, err := polyfit.NewPolynomial(ascending)
	if err != nil {
		t.Fatalf("NewPolynomial(%v): %v", ascending, err)
	}
	return p
}

func TestFormatMeters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    float64
		want string
	}{
		{0, "0.0000 m"},
		{0.123456, "0.1235 m"},
		{6378137, "6378137.0000 m"},
		{1e-7, "0.0000 m"},
	}
	for _, tt := range tests {
		if got := FormatMeters(tt.v); got != tt.want {
			t.Errorf("FormatMeters(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestFormatCoefficients(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		ascending []float64
		want      []string
	}{
		{
			name:      "constant",
			ascending: []float64{6367449},
			want:      []string{"c0 = 6367449"},
		},
		{
			name:      "linear",
			ascending: []float64{6378137, -21384.5},
			want:      []string{"c1 = -21384.5 * s2", "c0 = 6378137"},
		},
		{
			name:      "quartic",
			ascending: []float64{1, 2, 3, 4, 5},
			want: []string{
				"c4 = 5 * s2^4",
				"c3 = 4 * s2^3",
				"c2 = 3 * s2^2",
				"c1 = 2 * s2",
				"c0 = 1",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := FormatCoefficients(mustPoly(t, tc.ascending...))
			if len(got) != len(tc.want) {
				t.Fatalf("got %d lines, want %d: %q", len(got), len(tc.want), got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestFormatCoefficient_Precision(t *testing.T) {
	t.Parallel()

	if got := FormatCoefficient(6378136.99987654); got != "6378137" {
		t.Errorf("FormatCoefficient = %q, want 6378137", got)
	}
	if got := FormatCoefficient(-1.2345678901234e-3); got != "-0.00123456789" {
		t.Errorf("FormatCoefficient small = %q, want -0.00123456789", got)
	}
}

func TestFormatQuietResult(t *testing.T) {
	t.Parallel()

	got := FormatQuietResult(mustPoly(t, 3, 2, 1), quality.Report{MaxAbs: 0.00012, RMS: 0.5})
	want := "# highest degree first\n1 2 3\n0.0001 0.5000"
	if got != want {
		t.Errorf("FormatQuietResult = %q, want %q", got, want)
	}

	// 3 + 2·s2 + 1·s2² must not read as the ascending 1 2 3.
	lines := strings.Split(got, "\n")
	if lines[0] != QuietOrderLine {
		t.Errorf("first line = %q, want the order statement %q", lines[0], QuietOrderLine)
	}
}
