package audit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PolarWolf314/passmap/internal/configs"
	"github.com/PolarWolf314/passmap/internal/utils"
	"github.com/google/uuid"
)

// TimestampFormat is the layout of Entry.Timestamp.
const TimestampFormat = "2006-01-02T15:04:05.000000Z"

// Entry represents a single audit log entry.
type Entry struct {
	ID        string `json:"id"`
	Timestamp string `json:"ts"`
	User      string `json:"user"`
	Host      string `json:"host,omitempty"`
	Operation string `json:"op"`

	Name       string `json:"name,omitempty"`        // Credential name.
	Length     int    `json:"length,omitempty"`      // For generate.
	Replaced   bool   `json:"replaced,omitempty"`    // For generate/add.
	Found      *bool  `json:"found,omitempty"`       // For obtain.
	Count      int    `json:"count,omitempty"`       // For list/export.
	Pattern    string `json:"pattern,omitempty"`     // For list.
	Format     string `json:"format,omitempty"`      // For export.
	OutputPath string `json:"output_path,omitempty"` // For export.
}

// NewEntry returns an entry for op with the ID, user, and host filled in.
func NewEntry(op string) Entry {
	entry := Entry{
		ID:        uuid.New().String(),
		Operation: op,
	}

	if username, err := utils.GetUsername(); err == nil {
		entry.User = username
	}
	if hostname, err := utils.GetHostname(); err == nil {
		entry.Host = hostname
	}

	return entry
}

// Log appends an entry to the audit log. Failures are swallowed.
func Log(entry Entry) {
	if !configs.ActiveSettings.Audit {
		return
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(TimestampFormat)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	// #nosec G302 -- the log holds names only, never passwords.
	f, err := os.OpenFile(LogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the audit log path for the active store.
func LogPath() string {
	return PathFor(configs.ActiveSettings.StorePath)
}

// PathFor derives the audit log path from a store path by replacing its
// extension with ".audit.jsonl".
func PathFor(storePath string) string {
	dir, base := filepath.Split(storePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+".audit.jsonl")
}

// ReadEntries reads all entries from the audit log.
// Returns os.ErrNotExist (wrapped) if the log has not been written yet.
func ReadEntries() ([]Entry, error) {
	data, err := os.ReadFile(LogPath())
	if err != nil {
		return nil, err
	}
	return ParseEntries(data), nil
}

// ParseEntries parses JSON Lines data into audit entries.
// Blank and malformed lines are skipped.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// ParseTimestamp parses an Entry timestamp, falling back to plain RFC3339.
func ParseTimestamp(ts string) (time.Time, error) {
	t, err := time.Parse(TimestampFormat, ts)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, ts)
}
