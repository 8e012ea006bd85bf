package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportCommand(t *testing.T) {
	t.Run("StdoutFormats", func(t *testing.T) {
		tests := []struct {
			name   string
			format string
			want   string
		}{
			{"default json", "", `"gatech": "secret"`},
			{"json", "json", `"gatech": "secret"`},
			{"yaml", "yaml", "gatech: secret"},
			{"yml", "yml", "gatech: secret"},
			{"toml", "toml", `gatech = "secret"`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				dir := setupTestEnvironment(t)
				writeStoreFile(t, dir, `{"gatech":"secret"}`)

				args := []string{"export"}
				if tt.format != "" {
					args = append(args, "--format", tt.format)
				}
				output, err := runCLI(args...)
				if err != nil {
					t.Fatalf("export failed: %v", err)
				}
				if !strings.Contains(output, tt.want) {
					t.Errorf("Expected %q in output: %s", tt.want, output)
				}
				if !strings.Contains(output, "plain text") {
					t.Errorf("Expected plaintext warning: %s", output)
				}
			})
		}
	})

	t.Run("OutputFile", func(t *testing.T) {
		dir := setupTestEnvironment(t)
		writeStoreFile(t, dir, `{"gatech":"secret","github":"hunter2"}`)
		outPath := filepath.Join(dir, "backup.yaml")

		output, err := runCLI("export", "-f", "yaml", "-o", outPath)
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		if strings.Contains(output, "hunter2") {
			t.Errorf("Passwords should go to the file, not stdout: %s", output)
		}
		if !strings.Contains(output, "Exported 2 passwords") {
			t.Errorf("Unexpected output: %s", output)
		}

		data, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("Failed to read export: %v", err)
		}
		if !strings.Contains(string(data), "github: hunter2") {
			t.Errorf("Unexpected export content: %s", data)
		}
		info, err := os.Stat(outPath)
		if err != nil {
			t.Fatalf("Failed to stat export: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("Expected mode 0600, got %o", perm)
		}
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		setupTestEnvironment(t)

		_, err := runCLI("export", "--format", "xml")
		if err == nil || !strings.Contains(err.Error(), "xml") {
			t.Errorf("Expected invalid format error, got %v", err)
		}
	})
}
