package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/passmap/internal/audit"
	kerrors "github.com/PolarWolf314/passmap/internal/errors"
)

// ObtainOptions configures the obtain workflow.
type ObtainOptions struct {
	Name string
}

// ObtainResult contains the password found for a name.
type ObtainResult struct {
	Name     string
	Password string
}

// Obtain looks up the password stored under Name. It never writes to the
// store.
//
// Returns ErrMissingName if Name is empty.
// Returns ErrCredentialNotFound if nothing is stored under Name.
// Returns ErrInvalidStore if the store file is not valid JSON.
func Obtain(ctx context.Context, opts ObtainOptions) (*ObtainResult, error) {
	if opts.Name == "" {
		return nil, kerrors.ErrMissingName
	}

	_, creds, err := openStore()
	if err != nil {
		return nil, err
	}

	password, found := creds.Get(opts.Name)

	entry := audit.NewEntry("obtain")
	entry.Name = opts.Name
	entry.Found = &found
	audit.Log(entry)

	if !found {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrCredentialNotFound, opts.Name)
	}

	return &ObtainResult{
		Name:     opts.Name,
		Password: password,
	}, nil
}
