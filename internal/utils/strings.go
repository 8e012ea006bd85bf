package utils

import (
	"fmt"
	"strconv"
	"strings"

	kerrors "github.com/PolarWolf314/passmap/internal/errors"
	"github.com/PolarWolf314/passmap/internal/ui"
)

// MaxLength bounds explicit length arguments.
const MaxLength = 1 << 16

// ParseLength parses a password length given on the command line.
// It accepts unsigned decimal integers up to MaxLength, including 0, with
// an optional leading '+'. Whitespace is not trimmed.
func ParseLength(s string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", kerrors.ErrInvalidLength, s)
	}
	if n > MaxLength {
		return 0, fmt.Errorf("%w: %d exceeds the maximum of %d", kerrors.ErrInvalidLength, n, MaxLength)
	}
	return int(n), nil
}

// FormatNames formats credential names into an indented list.
func FormatNames(names []string) string {
	var b strings.Builder
	for _, name := range names {
		b.WriteString("    - ")
		b.WriteString(ui.Highlight.Sprint(name))
		b.WriteString("\n")
	}
	return b.String()
}
