package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigCommands(t *testing.T) {
	t.Run("InitWritesDefaults", func(t *testing.T) {
		dir := setupTestEnvironment(t)
		configPath := filepath.Join(dir, "config", "config.toml")

		output, err := runCLI("config", "init")
		if err != nil {
			t.Fatalf("config init failed: %v", err)
		}
		if !strings.Contains(output, "Wrote default settings") {
			t.Errorf("Unexpected output: %s", output)
		}
		data, err := os.ReadFile(configPath)
		if err != nil {
			t.Fatalf("Config file not written: %v", err)
		}
		if !strings.Contains(string(data), "store_path") {
			t.Errorf("Unexpected config content: %s", data)
		}

		output, err = runCLI("config", "init")
		if err != nil {
			t.Fatalf("second config init failed: %v", err)
		}
		if !strings.Contains(output, "already exists") {
			t.Errorf("Expected already exists message: %s", output)
		}

		if _, err := runCLI("config", "init", "--force"); err != nil {
			t.Fatalf("config init --force failed: %v", err)
		}
	})

	t.Run("ConfigChangesStorePath", func(t *testing.T) {
		dir := setupTestEnvironment(t)
		configDir := filepath.Join(dir, "config")
		if err := os.MkdirAll(configDir, 0700); err != nil {
			t.Fatalf("Failed to create config dir: %v", err)
		}
		config := "store_path = \"vault.json\"\nmin_length = 20\nmax_length = 21\n"
		if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0600); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}

		if _, err := runCLI("generate", "gatech"); err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		data, err := os.ReadFile(filepath.Join(dir, "vault.json"))
		if err != nil {
			t.Fatalf("Expected store at vault.json: %v", err)
		}
		if !strings.Contains(string(data), "gatech") {
			t.Errorf("Unexpected store content: %s", data)
		}

		output, err := runCLI("config", "show")
		if err != nil {
			t.Fatalf("config show failed: %v", err)
		}
		for _, want := range []string{"vault.json", "20 to 20 characters", "(loaded)"} {
			if !strings.Contains(output, want) {
				t.Errorf("Expected %q in output: %s", want, output)
			}
		}
	})

	t.Run("ShowDefaults", func(t *testing.T) {
		setupTestEnvironment(t)

		output, err := runCLI("config", "show")
		if err != nil {
			t.Fatalf("config show failed: %v", err)
		}
		for _, want := range []string{".map.json", "8 to 14 characters", "not found, using defaults", ".map.audit.jsonl"} {
			if !strings.Contains(output, want) {
				t.Errorf("Expected %q in output: %s", want, output)
			}
		}
	})
}
