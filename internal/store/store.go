package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	kerrors "github.com/PolarWolf314/passmap/internal/errors"
)

// Store is a handle on one credential file.
type Store struct {
	path    string
	created bool
}

// emptyObject is written into a newly created store so the file is valid
// JSON even if nothing is ever saved to it.
var emptyObject = []byte("{}")

// Open returns a Store for path, creating a file holding an empty JSON
// object if none exists.
func Open(path string) (*Store, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err == nil {
		_, writeErr := file.Write(emptyObject)
		closeErr := file.Close()
		if err := errors.Join(writeErr, closeErr); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", kerrors.ErrStoreUnavailable, path, err)
		}
		return &Store{path: path, created: true}, nil
	}

	if !errors.Is(err, fs.ErrExist) {
		return nil, fmt.Errorf("%w: %s: %w", kerrors.ErrStoreUnavailable, path, err)
	}

	info, statErr := os.Stat(path)
	if statErr != nil {
		return nil, fmt.Errorf("%w: %s: %w", kerrors.ErrStoreUnavailable, path, statErr)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", kerrors.ErrStoreUnavailable, path)
	}

	return &Store{path: path}, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Created reports whether Open created the file.
func (s *Store) Created() bool {
	return s.created
}

// Load reads and decodes the whole file. A freshly created or zero-length
// file yields an empty map.
func (s *Store) Load() (Credentials, error) {
	creds := make(Credentials)
	if s.created {
		return creds, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", kerrors.ErrStoreUnavailable, s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return creds, nil
	}

	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", kerrors.ErrInvalidStore, s.path, err)
	}

	// A literal `null` decodes to a nil map.
	if creds == nil {
		creds = make(Credentials)
	}

	return creds, nil
}

// Save truncates the file and writes creds as one JSON object.
func (s *Store) Save(creds Credentials) error {
	if creds == nil {
		creds = make(Credentials)
	}

	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %w", kerrors.ErrStoreWriteFailed, s.path, err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("%w: %s: %w", kerrors.ErrStoreWriteFailed, s.path, err)
	}

	s.created = false
	return nil
}
