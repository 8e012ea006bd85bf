package workflows

import (
	"fmt"

	"github.com/PolarWolf314/passmap/internal/configs"
	"github.com/PolarWolf314/passmap/internal/store"
)

// openStore loads settings and the credential map. The store file is
// created if it does not exist yet.
func openStore() (*store.Store, store.Credentials, error) {
	if err := configs.InitSettings(); err != nil {
		return nil, nil, fmt.Errorf("loading settings: %w", err)
	}

	s, err := store.Open(configs.ActiveSettings.StorePath)
	if err != nil {
		return nil, nil, err
	}

	creds, err := s.Load()
	if err != nil {
		return nil, nil, err
	}

	return s, creds, nil
}
