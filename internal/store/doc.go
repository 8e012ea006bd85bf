// Package store persists the credential map in a single JSON file.
//
// The file holds one JSON object mapping credential names to passwords:
//
//	{"gatech":"HfhevIUwhd","github":"qWeRtYuIoP"}
//
// Every invocation reads the whole file and, when it changes something,
// writes the whole file back. There is no locking, encryption, temp-file
// rename, or backup of the previous version. Concurrent invocations race
// and the last writer wins.
package store
