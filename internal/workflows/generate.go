package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/passmap/internal/audit"
	"github.com/PolarWolf314/passmap/internal/configs"
	kerrors "github.com/PolarWolf314/passmap/internal/errors"
	"github.com/PolarWolf314/passmap/internal/generator"
	"github.com/PolarWolf314/passmap/internal/utils"
)

// GenerateOptions configures the generate workflow.
type GenerateOptions struct {
	// Name is the credential to create or regenerate.
	Name string

	// Length is the requested length as typed by the user. Empty picks a
	// random length from the configured range.
	Length string
}

// GenerateResult contains the outcome of a generate operation.
type GenerateResult struct {
	Name     string
	Password string
	Length   int

	// Replaced is true when an existing password was regenerated.
	Replaced bool

	StorePath string
}

// Generate creates a random password and stores it under Name, replacing
// any existing entry.
//
// Returns ErrMissingName if Name is empty.
// Returns ErrInvalidLength if Length is not an unsigned integer.
// Returns ErrInvalidStore if the store file is not valid JSON.
func Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	if opts.Name == "" {
		return nil, kerrors.ErrMissingName
	}

	// Validate the length before touching the store so a typo never
	// creates the file.
	explicitLength := -1
	if opts.Length != "" {
		length, err := utils.ParseLength(opts.Length)
		if err != nil {
			return nil, err
		}
		explicitLength = length
	}

	s, creds, err := openStore()
	if err != nil {
		return nil, err
	}

	settings := configs.ActiveSettings
	gen := generator.New(settings.MinLength, settings.MaxLength)

	length := explicitLength
	if length < 0 {
		length, err = gen.RandomLength()
		if err != nil {
			return nil, fmt.Errorf("choosing password length: %w", err)
		}
	}

	password, err := gen.Generate(length)
	if err != nil {
		return nil, fmt.Errorf("generating password: %w", err)
	}

	replaced := creds.Set(opts.Name, password)
	if err := s.Save(creds); err != nil {
		return nil, err
	}

	entry := audit.NewEntry("generate")
	entry.Name = opts.Name
	entry.Length = length
	entry.Replaced = replaced
	audit.Log(entry)

	return &GenerateResult{
		Name:      opts.Name,
		Password:  password,
		Length:    length,
		Replaced:  replaced,
		StorePath: s.Path(),
	}, nil
}
