package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/passmap/internal/audit"
	kerrors "github.com/PolarWolf314/passmap/internal/errors"
)

// DeleteOptions configures the delete workflow.
type DeleteOptions struct {
	Name string
}

// DeleteResult contains the outcome of a delete operation.
type DeleteResult struct {
	Name      string
	Remaining int
	StorePath string
}

// Delete removes Name from the store.
//
// Returns ErrMissingName if Name is empty.
// Returns ErrCredentialNotFound if nothing is stored under Name; the store
// file is left untouched in that case.
// Returns ErrInvalidStore if the store file is not valid JSON.
func Delete(ctx context.Context, opts DeleteOptions) (*DeleteResult, error) {
	if opts.Name == "" {
		return nil, kerrors.ErrMissingName
	}

	s, creds, err := openStore()
	if err != nil {
		return nil, err
	}

	if !creds.Delete(opts.Name) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrCredentialNotFound, opts.Name)
	}

	if err := s.Save(creds); err != nil {
		return nil, err
	}

	entry := audit.NewEntry("delete")
	entry.Name = opts.Name
	audit.Log(entry)

	return &DeleteResult{
		Name:      opts.Name,
		Remaining: len(creds),
		StorePath: s.Path(),
	}, nil
}
