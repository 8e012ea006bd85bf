package errors

import "errors"

// Store errors indicate the credential file could not be used.
var (
	// ErrStoreUnavailable indicates the credential file could not be opened or created.
	ErrStoreUnavailable = errors.New("credential store is unavailable")

	// ErrInvalidStore indicates the credential file is not a JSON object of strings.
	ErrInvalidStore = errors.New("credential store is not valid JSON")

	// ErrStoreWriteFailed indicates the credential file could not be rewritten.
	ErrStoreWriteFailed = errors.New("failed to write credential store")
)

// Argument errors indicate a command was invoked with missing or malformed input.
var (
	// ErrNoCommand indicates the program was run without a command.
	ErrNoCommand = errors.New("please specify a command")

	// ErrMissingName indicates the credential name argument was not given.
	ErrMissingName = errors.New("please specify a password name")

	// ErrMissingPassword indicates no password was supplied to add.
	ErrMissingPassword = errors.New("please specify a password")

	// ErrPasswordMismatch indicates the confirmation prompt did not match.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrInvalidLength indicates the length argument is not a valid unsigned integer.
	ErrInvalidLength = errors.New("please make sure the length value is a valid unsigned integer")

	// ErrInvalidPattern indicates a name pattern could not be parsed.
	ErrInvalidPattern = errors.New("invalid name pattern")

	// ErrInvalidFormat indicates an unsupported export format was requested.
	ErrInvalidFormat = errors.New("unsupported export format")
)

// Credential errors indicate issues with individual entries.
var (
	// ErrCredentialNotFound indicates no password is stored under the given name.
	ErrCredentialNotFound = errors.New("password not found")
)

// Config errors indicate the configuration could not be loaded.
var (
	// ErrInvalidConfig indicates the configuration file or environment is malformed.
	ErrInvalidConfig = errors.New("configuration is invalid")

	// ErrConfigExists indicates a configuration file is already present.
	ErrConfigExists = errors.New("configuration file already exists")

	// ErrNoAuditLog indicates no audit log has been written yet.
	ErrNoAuditLog = errors.New("no audit log found")
)
