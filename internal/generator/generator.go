package generator

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Alphabet is the set of characters a generated password is drawn from.
const Alphabet = "AaBbCcDdEeFfGgHhIiJjKkLlMmNnOoPpQqRrSsTtUuVvWwXxYyZz"

// Generator draws passwords from Alphabet.
type Generator struct {
	// Source supplies random bytes. Nil means crypto/rand.Reader.
	Source io.Reader

	// MinLength and MaxLength bound RandomLength as [MinLength, MaxLength).
	MinLength int
	MaxLength int
}

// New returns a Generator backed by crypto/rand.
func New(minLength, maxLength int) *Generator {
	return &Generator{
		Source:    rand.Reader,
		MinLength: minLength,
		MaxLength: maxLength,
	}
}

func (g *Generator) source() io.Reader {
	if g.Source == nil {
		return rand.Reader
	}
	return g.Source
}

// RandomLength returns a length drawn uniformly from [MinLength, MaxLength).
func (g *Generator) RandomLength() (int, error) {
	if g.MinLength < 0 || g.MaxLength <= g.MinLength {
		return 0, fmt.Errorf("invalid length range [%d, %d)", g.MinLength, g.MaxLength)
	}

	n, err := rand.Int(g.source(), big.NewInt(int64(g.MaxLength-g.MinLength)))
	if err != nil {
		return 0, fmt.Errorf("failed to draw password length: %w", err)
	}

	return g.MinLength + int(n.Int64()), nil
}

// Generate returns a password of exactly length characters.
func (g *Generator) Generate(length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("invalid password length %d", length)
	}

	size := big.NewInt(int64(len(Alphabet)))

	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(g.source(), size)
		if err != nil {
			return "", fmt.Errorf("failed to draw password character: %w", err)
		}
		b.WriteByte(Alphabet[n.Int64()])
	}

	return b.String(), nil
}

// GenerateRandomLength picks a length with RandomLength and generates a
// password of that length.
func (g *Generator) GenerateRandomLength() (string, error) {
	length, err := g.RandomLength()
	if err != nil {
		return "", err
	}
	return g.Generate(length)
}
