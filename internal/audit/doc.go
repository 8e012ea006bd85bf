// Package audit records an audit trail of passmap operations.
//
// Each operation appends one JSON object per line to a log that sits next
// to the credential file, named after it:
//
//	.map.json  ->  .map.audit.jsonl
//
// Entries carry a UUID, a UTC timestamp with microseconds, the OS user
// and host, the operation, and the credential name. Passwords are never
// written.
//
// # Usage
//
//	entry := audit.NewEntry("generate")
//	entry.Name = "gatech"
//	entry.Length = 10
//	audit.Log(entry)
//
// # Failure Handling
//
// Audit logging is best-effort. If the log can't be written the operation
// continues. Setting audit = false in the config disables it entirely.
//
// ReadEntries() skips malformed lines so a partial write doesn't hide the
// rest of the log.
package audit
