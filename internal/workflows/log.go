package workflows

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/PolarWolf314/passmap/internal/audit"
	"github.com/PolarWolf314/passmap/internal/configs"
	kerrors "github.com/PolarWolf314/passmap/internal/errors"
	"github.com/dustin/go-humanize"
)

// LogOptions configures the log workflow.
type LogOptions struct {
	// Limit is the maximum number of entries to return. 0 means no limit.
	Limit int

	// Reverse orders entries from most recent to oldest when true.
	Reverse bool

	// Operations filters entries by operation (comma-separated).
	Operations string

	// Name filters entries by credential name.
	Name string
}

// LogResult contains the outcome of a log operation.
type LogResult struct {
	Entries []audit.Entry

	// TotalEntriesBeforeFilter is the count of entries before filtering.
	TotalEntriesBeforeFilter int

	LogPath string
}

// Log reads and filters the audit trail. It does not open the credential
// store.
//
// Returns ErrNoAuditLog if no audit log has been written.
func Log(ctx context.Context, opts LogOptions) (*LogResult, error) {
	if err := configs.InitSettings(); err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	logPath := audit.LogPath()
	entries, err := audit.ReadEntries()
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrNoAuditLog, logPath)
	}
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}

	result := &LogResult{
		TotalEntriesBeforeFilter: len(entries),
		LogPath:                  logPath,
	}

	filtered := entries

	if opts.Operations != "" {
		var ops []string
		for _, op := range strings.Split(opts.Operations, ",") {
			if op = strings.TrimSpace(op); op != "" {
				ops = append(ops, op)
			}
		}
		filtered = filterEntries(filtered, func(e audit.Entry) bool {
			return slices.Contains(ops, e.Operation)
		})
	}

	if opts.Name != "" {
		filtered = filterEntries(filtered, func(e audit.Entry) bool {
			return e.Name == opts.Name
		})
	}

	if opts.Reverse {
		slices.Reverse(filtered)
	}

	// The limit always keeps the most recent entries.
	if opts.Limit > 0 && len(filtered) > opts.Limit {
		if opts.Reverse {
			filtered = filtered[:opts.Limit]
		} else {
			filtered = filtered[len(filtered)-opts.Limit:]
		}
	}

	result.Entries = filtered
	return result, nil
}

func filterEntries(entries []audit.Entry, keep func(audit.Entry) bool) []audit.Entry {
	out := make([]audit.Entry, 0, len(entries))
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// FormatRelativeTime renders an entry timestamp as "3 minutes ago".
// Unparseable timestamps are returned unchanged.
func FormatRelativeTime(ts string, now time.Time) string {
	t, err := audit.ParseTimestamp(ts)
	if err != nil {
		return ts
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// FormatDateTime renders an entry timestamp as "2006-01-02 15:04:05" in UTC.
func FormatDateTime(ts string) string {
	t, err := audit.ParseTimestamp(ts)
	if err != nil {
		return ts
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}

// FormatDate renders an entry timestamp as "2006-01-02" in UTC.
func FormatDate(ts string) string {
	t, err := audit.ParseTimestamp(ts)
	if err != nil {
		return ts
	}
	return t.UTC().Format("2006-01-02")
}

// FormatDetails summarises the operation-specific fields of an entry.
func FormatDetails(e audit.Entry) string {
	var parts []string

	if e.Name != "" {
		parts = append(parts, e.Name)
	}
	if e.Length > 0 {
		parts = append(parts, fmt.Sprintf("length=%d", e.Length))
	}
	if e.Replaced {
		parts = append(parts, "replaced")
	}
	if e.Found != nil && !*e.Found {
		parts = append(parts, "not found")
	}
	if e.Pattern != "" {
		parts = append(parts, "match="+e.Pattern)
	}
	if e.Format != "" {
		parts = append(parts, "format="+e.Format)
	}
	if e.Count > 0 {
		parts = append(parts, fmt.Sprintf("count=%d", e.Count))
	}
	if e.OutputPath != "" {
		parts = append(parts, "-> "+e.OutputPath)
	}

	return strings.Join(parts, " ")
}
