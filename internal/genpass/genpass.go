// Package genpass generates random passwords from unambiguous character sets.
// It also serves as the random source for BLAKE3 keys.
package genpass

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/nbutton23/zxcvbn-go"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// Character classes. Glyphs that are easy to confuse (I, O, o, 0) are left out.
const (
	upperChars  = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnpqrstuvwxyz"
	numberChars = "123456789"
	symbolChars = "!@#$%^&*_"
)

// Options selects the password length and the character classes to draw from.
type Options struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Number    bool
	Symbol    bool
}

// AllClasses returns Options of the given length with every character class enabled.
func AllClasses(length int) Options {
	return Options{
		Length:    length,
		Uppercase: true,
		Lowercase: true,
		Number:    true,
		Symbol:    true,
	}
}

// Generator draws passwords from an entropy source.
type Generator struct {
	rand io.Reader
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{rand: rand.Reader}
}

// NewWithSource returns a Generator that reads entropy from src.
func NewWithSource(src io.Reader) *Generator {
	return &Generator{rand: src}
}

// Generate returns a password using crypto/rand.
func Generate(opts Options) (string, error) {
	return New().Generate(opts)
}

// Generate returns a password containing at least one character from every
// enabled class, with the remaining positions drawn from their union.
func (g *Generator) Generate(opts Options) (string, error) {
	classes := opts.classes()
	if len(classes) == 0 {
		return "", fmt.Errorf("%w: at least one character class must be enabled", errors.ErrInvalidArgument)
	}
	if opts.Length < len(classes) || opts.Length > constants.MaxPasswordLength {
		return "", fmt.Errorf("%w: length must be between %d and %d, got %d",
			errors.ErrInvalidArgument, len(classes), constants.MaxPasswordLength, opts.Length)
	}

	var pool string
	password := make([]byte, 0, opts.Length)
	for _, class := range classes {
		pool += class
		c, err := g.pick(class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for len(password) < opts.Length {
		c, err := g.pick(pool)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := g.shuffle(password); err != nil {
		return "", err
	}
	return string(password), nil
}

func (o Options) classes() []string {
	var classes []string
	if o.Uppercase {
		classes = append(classes, upperChars)
	}
	if o.Lowercase {
		classes = append(classes, lowerChars)
	}
	if o.Number {
		classes = append(classes, numberChars)
	}
	if o.Symbol {
		classes = append(classes, symbolChars)
	}
	return classes
}

func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrGeneration, err)
	}
	return int(v.Int64()), nil
}

func (g *Generator) pick(set string) (byte, error) {
	i, err := g.intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// shuffle is a Fisher-Yates shuffle driven by the generator's entropy source.
func (g *Generator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

// Strength returns the zxcvbn score of password, from 0 (weak) to 4 (strong).
func Strength(password string) int {
	return zxcvbn.PasswordStrength(password, nil).Score
}
