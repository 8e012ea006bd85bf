package workflows

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/PolarWolf314/passmap/internal/audit"
	kerrors "github.com/PolarWolf314/passmap/internal/errors"
	"github.com/PolarWolf314/passmap/internal/store"
	"gopkg.in/yaml.v3"
)

// ExportFormat selects the encoding of an export.
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatYAML ExportFormat = "yaml"
	FormatTOML ExportFormat = "toml"
)

// ExportFormats lists the supported formats in display order.
var ExportFormats = []ExportFormat{FormatJSON, FormatYAML, FormatTOML}

// ParseExportFormat resolves a user-supplied format name. "yml" is
// accepted as an alias for yaml.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: json, yaml, toml)", kerrors.ErrInvalidFormat, s)
	}
}

// ExportOptions configures the export workflow.
type ExportOptions struct {
	// Format defaults to JSON when empty.
	Format ExportFormat

	// OutputPath receives the export when set. Otherwise the encoded data
	// is returned for the caller to print.
	OutputPath string
}

// ExportResult contains the outcome of an export operation.
type ExportResult struct {
	Data       []byte
	Format     ExportFormat
	Count      int
	OutputPath string
}

// Export encodes every credential, passwords included, in the requested
// format.
//
// Returns ErrInvalidFormat for an unknown format.
// Returns ErrInvalidStore if the store file is not valid JSON.
func Export(ctx context.Context, opts ExportOptions) (*ExportResult, error) {
	format := FormatJSON
	if opts.Format != "" {
		parsed, err := ParseExportFormat(string(opts.Format))
		if err != nil {
			return nil, err
		}
		format = parsed
	}

	_, creds, err := openStore()
	if err != nil {
		return nil, err
	}

	data, err := encodeCredentials(creds, format)
	if err != nil {
		return nil, fmt.Errorf("encoding %s export: %w", format, err)
	}

	if opts.OutputPath != "" {
		if err := writeExportFile(opts.OutputPath, data); err != nil {
			return nil, fmt.Errorf("writing export to %s: %w", opts.OutputPath, err)
		}
	}

	entry := audit.NewEntry("export")
	entry.Count = len(creds)
	entry.Format = string(format)
	entry.OutputPath = opts.OutputPath
	audit.Log(entry)

	return &ExportResult{
		Data:       data,
		Format:     format,
		Count:      len(creds),
		OutputPath: opts.OutputPath,
	}, nil
}

// writeExportFile writes data to path with mode 0600. An existing file has
// its mode tightened before any data is written to it.
func writeExportFile(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	if err := file.Chmod(0600); err != nil {
		file.Close()
		return err
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func encodeCredentials(creds store.Credentials, format ExportFormat) ([]byte, error) {
	// Plain map so encoders don't see the named type.
	m := map[string]string(creds)

	switch format {
	case FormatYAML:
		return yaml.Marshal(m)

	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(m); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	default:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}
