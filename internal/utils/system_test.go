package utils

import (
	"errors"
	"os"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/passmap/internal/errors"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"Simple", "10", 10, false},
		{"Zero", "0", 0, false},
		{"LeadingPlus", "+5", 5, false},
		{"DoublePlus", "++5", 0, true},
		{"LonePlus", "+", 0, true},
		{"SurroundingSpace", " 12 ", 0, true},
		{"TrailingNewline", "12\n", 0, true},
		{"AtMaximum", "65536", MaxLength, false},
		{"AboveMaximum", "65537", 0, true},
		{"Negative", "-5", 0, true},
		{"NotANumber", "ten", 0, true},
		{"Fraction", "8.5", 0, true},
		{"Empty", "", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseLength(tc.input)
			if tc.wantErr {
				if !errors.Is(err, kerrors.ErrInvalidLength) {
					t.Fatalf("ParseLength(%q) error = %v, want ErrInvalidLength", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLength(%q) failed: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseLength(%q) = %d, expected %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestFormatNames(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got := FormatNames([]string{"gatech", "github"})
	want := "    - 'gatech'\n    - 'github'\n"
	if got != want {
		t.Errorf("FormatNames() = %q, want %q", got, want)
	}

	if FormatNames(nil) != "" {
		t.Error("Expected empty output for no names")
	}
}

func TestReadPasswordStdin(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	original := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = original })

	if _, err := w.WriteString("HfhevIUwhd\n"); err != nil {
		t.Fatalf("Failed to write to pipe: %v", err)
	}
	w.Close()

	got, err := ReadPasswordStdin()
	if err != nil {
		t.Fatalf("ReadPasswordStdin failed: %v", err)
	}
	if got != "HfhevIUwhd" {
		t.Errorf("ReadPasswordStdin() = %q, want %q", got, "HfhevIUwhd")
	}
}

func TestReadStdinEmpty(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	original := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = original })
	w.Close()

	_, err = ReadStdin()
	if err == nil || !strings.Contains(err.Error(), "stdin is empty") {
		t.Errorf("Expected empty stdin error, got %v", err)
	}
}

func TestGetUsername(t *testing.T) {
	username, err := GetUsername()
	if err != nil {
		t.Fatalf("GetUsername failed: %v", err)
	}
	if username == "" {
		t.Fatal("Expected non-empty username")
	}
}

func TestGetHostname(t *testing.T) {
	hostname, err := GetHostname()
	if err != nil {
		t.Fatalf("GetHostname failed: %v", err)
	}
	if hostname == "" {
		t.Fatal("Expected non-empty hostname")
	}
}
