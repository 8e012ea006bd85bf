// Package errors provides typed error values for the passmap application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Store errors: the credential file cannot be opened, read or parsed
//   - Argument errors: a required command-line argument is missing or invalid
//   - Credential errors: the requested entry does not exist
//   - Config errors: the configuration file or environment is invalid
//
// # Usage
//
// Return errors from internal packages:
//
//	if name == "" {
//	    return nil, errors.ErrMissingName
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Obtain(ctx, opts)
//	if errors.Is(err, kerrors.ErrCredentialNotFound) {
//	    // Show "Password not found"
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: %s", errors.ErrInvalidStore, path)
package errors
