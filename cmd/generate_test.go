package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/passmap/internal/errors"
	"github.com/PolarWolf314/passmap/internal/generator"
)

func TestGenerateCommand(t *testing.T) {
	t.Run("CreatesStoreWithRandomLength", func(t *testing.T) {
		dir := setupTestEnvironment(t)

		output, err := runCLI("generate", "gatech")
		if err != nil {
			t.Fatalf("generate failed: %v\n%s", err, output)
		}

		creds := readStoreFile(t, dir)
		password, ok := creds["gatech"]
		if !ok {
			t.Fatalf("Expected gatech in store, got %v", creds)
		}
		if len(password) < 8 || len(password) > 14 {
			t.Errorf("Expected length in [8, 14], got %d", len(password))
		}
		for _, r := range password {
			if !strings.ContainsRune(generator.Alphabet, r) {
				t.Errorf("Unexpected character %q in %q", r, password)
			}
		}
		if strings.Contains(output, password) {
			t.Errorf("Password should not be printed without --show: %s", output)
		}
		if !strings.Contains(output, "Generated a") {
			t.Errorf("Expected confirmation in output: %s", output)
		}
	})

	t.Run("AliasWithExplicitLength", func(t *testing.T) {
		dir := setupTestEnvironment(t)

		if _, err := runCLI("g", "gatech", "10"); err != nil {
			t.Fatalf("g failed: %v", err)
		}
		if got := len(readStoreFile(t, dir)["gatech"]); got != 10 {
			t.Errorf("Expected 10 characters, got %d", got)
		}
	})

	t.Run("OverwritesExisting", func(t *testing.T) {
		dir := setupTestEnvironment(t)
		writeStoreFile(t, dir, `{"gatech":"old","github":"keep"}`)

		output, err := runCLI("generate", "gatech", "20")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		creds := readStoreFile(t, dir)
		if len(creds["gatech"]) != 20 {
			t.Errorf("Expected regenerated password of 20 characters, got %q", creds["gatech"])
		}
		if creds["github"] != "keep" {
			t.Errorf("Other entries must be preserved, got %v", creds)
		}
		if !strings.Contains(output, "Regenerated") {
			t.Errorf("Expected Regenerated in output: %s", output)
		}
	})

	t.Run("ShowPrintsPassword", func(t *testing.T) {
		dir := setupTestEnvironment(t)

		output, err := runCLI("generate", "gatech", "12", "--show")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		password := readStoreFile(t, dir)["gatech"]
		if !strings.Contains(output, "Password for gatech: "+password) {
			t.Errorf("Expected password line in output: %s", output)
		}
	})

	t.Run("LeadingPlusLength", func(t *testing.T) {
		dir := setupTestEnvironment(t)

		if _, err := runCLI("generate", "gatech", "+9"); err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if got := len(readStoreFile(t, dir)["gatech"]); got != 9 {
			t.Errorf("Expected 9 characters, got %d", got)
		}
	})

	t.Run("ZeroLength", func(t *testing.T) {
		dir := setupTestEnvironment(t)

		if _, err := runCLI("generate", "empty", "0"); err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		creds := readStoreFile(t, dir)
		if password, ok := creds["empty"]; !ok || password != "" {
			t.Errorf("Expected empty password stored, got %v", creds)
		}
	})

	t.Run("InvalidLength", func(t *testing.T) {
		dir := setupTestEnvironment(t)

		for _, length := range []string{"abc", "-5", "-12", "1.5", " 12"} {
			_, err := runCLI("generate", "gatech", length)
			if !errors.Is(err, kerrors.ErrInvalidLength) {
				t.Errorf("length %q: expected ErrInvalidLength, got %v", length, err)
			}
		}
		if _, err := os.Stat(filepath.Join(dir, ".map.json")); !os.IsNotExist(err) {
			t.Errorf("Store must not be created for an invalid length")
		}
	})

	t.Run("UnknownLetterFlagIsNotALength", func(t *testing.T) {
		setupTestEnvironment(t)

		_, err := runCLI("generate", "gatech", "-x")
		if err == nil || errors.Is(err, kerrors.ErrInvalidLength) {
			t.Errorf("Expected an unknown flag error, got %v", err)
		}
	})

	t.Run("MissingName", func(t *testing.T) {
		setupTestEnvironment(t)

		_, err := runCLI("generate")
		if !errors.Is(err, kerrors.ErrMissingName) {
			t.Errorf("Expected ErrMissingName, got %v", err)
		}
	})
}
