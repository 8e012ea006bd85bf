package cmd

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeleteCommand(t *testing.T) {
	t.Run("RemovesEntry", func(t *testing.T) {
		dir := setupTestEnvironment(t)
		writeStoreFile(t, dir, `{"github":"a","gatech":"b"}`)

		output, err := runCLI("d", "github")
		if err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if diff := cmp.Diff(map[string]string{"gatech": "b"}, readStoreFile(t, dir)); diff != "" {
			t.Errorf("Unexpected store (-want +got):\n%s", diff)
		}
		if !strings.Contains(output, "Deleted password for 'github'") || !strings.Contains(output, "1 remaining") {
			t.Errorf("Unexpected output: %s", output)
		}
	})

	t.Run("AbsentNameLeavesStore", func(t *testing.T) {
		dir := setupTestEnvironment(t)
		writeStoreFile(t, dir, `{"gatech":"b"}`)

		output, err := runCLI("delete", "github")
		if err != nil {
			t.Fatalf("delete of a missing name should not fail: %v", err)
		}
		if !strings.Contains(output, "No password stored for 'github'") {
			t.Errorf("Unexpected output: %s", output)
		}
		if diff := cmp.Diff(map[string]string{"gatech": "b"}, readStoreFile(t, dir)); diff != "" {
			t.Errorf("Store must be unchanged (-want +got):\n%s", diff)
		}
	})
}
