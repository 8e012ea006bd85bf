// Package workflows implements the passmap operations.
//
// Each workflow loads configuration, opens the credential store, performs
// one operation, writes the store back when it changed, and records an
// audit entry. The cmd package stays a thin layer that parses arguments,
// calls a workflow, and formats its result.
//
// # Available Workflows
//
//   - Generate: stores a random password under a name
//   - Obtain: looks up the password for a name
//   - Add: stores a caller-supplied password under a name
//   - Delete: removes a name
//   - List: returns stored names, optionally filtered by a glob
//   - Export: encodes the whole map as JSON, YAML, or TOML
//   - Log: reads and filters the audit trail
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package:
//
//	result, err := workflows.Obtain(ctx, opts)
//	if errors.Is(err, kerrors.ErrCredentialNotFound) {
//	    // Print "Password not found"
//	}
//
// All workflow functions accept a context.Context as their first parameter.
package workflows
