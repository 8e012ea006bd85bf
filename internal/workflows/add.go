package workflows

import (
	"context"

	"github.com/PolarWolf314/passmap/internal/audit"
	kerrors "github.com/PolarWolf314/passmap/internal/errors"
)

// AddOptions configures the add workflow.
type AddOptions struct {
	Name     string
	Password string
}

// AddResult contains the outcome of an add operation.
type AddResult struct {
	Name      string
	Replaced  bool
	StorePath string
}

// Add stores Password under Name verbatim, replacing any existing entry.
//
// Returns ErrMissingName if Name is empty.
// Returns ErrMissingPassword if Password is empty.
// Returns ErrInvalidStore if the store file is not valid JSON.
func Add(ctx context.Context, opts AddOptions) (*AddResult, error) {
	if opts.Name == "" {
		return nil, kerrors.ErrMissingName
	}
	if opts.Password == "" {
		return nil, kerrors.ErrMissingPassword
	}

	s, creds, err := openStore()
	if err != nil {
		return nil, err
	}

	replaced := creds.Set(opts.Name, opts.Password)
	if err := s.Save(creds); err != nil {
		return nil, err
	}

	entry := audit.NewEntry("add")
	entry.Name = opts.Name
	entry.Replaced = replaced
	audit.Log(entry)

	return &AddResult{
		Name:      opts.Name,
		Replaced:  replaced,
		StorePath: s.Path(),
	}, nil
}
