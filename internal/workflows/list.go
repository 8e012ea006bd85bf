package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/passmap/internal/audit"
	kerrors "github.com/PolarWolf314/passmap/internal/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// ListOptions configures the list workflow.
type ListOptions struct {
	// Match is an optional doublestar glob applied to names, e.g. "work/**".
	Match string
}

// ListResult contains the names in the store.
type ListResult struct {
	// Names are the matching names in sorted order.
	Names []string

	// Total is the number of entries before filtering.
	Total int
}

// List returns the stored credential names. Passwords are not returned.
//
// Returns ErrInvalidPattern if Match is not a valid glob.
// Returns ErrInvalidStore if the store file is not valid JSON.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	if opts.Match != "" && !doublestar.ValidatePattern(opts.Match) {
		return nil, fmt.Errorf("%w: %q", kerrors.ErrInvalidPattern, opts.Match)
	}

	_, creds, err := openStore()
	if err != nil {
		return nil, err
	}

	all := creds.Names()
	names := all
	if opts.Match != "" {
		names = make([]string, 0, len(all))
		for _, name := range all {
			// The pattern was validated above, so Match can't fail here.
			if ok, _ := doublestar.Match(opts.Match, name); ok {
				names = append(names, name)
			}
		}
	}

	entry := audit.NewEntry("list")
	entry.Count = len(names)
	entry.Pattern = opts.Match
	audit.Log(entry)

	return &ListResult{
		Names: names,
		Total: len(all),
	}, nil
}
