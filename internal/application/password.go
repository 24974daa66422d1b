package application

import (
	"fmt"
	"strings"

	"github.com/ericfisherdev/genpass/internal/domain/model"
)

// MaxPasswordLength bounds the requested password length.
const MaxPasswordLength = 256

// CharacterSets holds the source strings of each password character class and
// the two exclusion sets.
type CharacterSets struct {
	Uppercase string
	Lowercase string
	Numbers   string
	Symbols   string
	Similar   string // Removed from the fill pool when ExcludeSimilar is set.
	Ambiguous string // Removed from the fill pool when ExcludeAmbiguous is set.
}

// DefaultCharacterSets returns the built-in character classes.
func DefaultCharacterSets() CharacterSets {
	return CharacterSets{
		Uppercase: "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		Lowercase: "abcdefghijklmnopqrstuvwxyz",
		Numbers:   "0123456789",
		Symbols:   "!@#$%^&*()_+-=[]{}|;:,.<>?",
		Similar:   "0O1lI",
		Ambiguous: "{}[]()/\\'\"`~,;.<>",
	}
}

// PasswordGenerator builds passwords that contain at least one character of
// every enabled class.
type PasswordGenerator struct {
	rnd  *Random
	sets CharacterSets
}

// NewPasswordGenerator creates a PasswordGenerator using DefaultCharacterSets.
func NewPasswordGenerator(rnd *Random) *PasswordGenerator {
	return NewPasswordGeneratorWithSets(rnd, DefaultCharacterSets())
}

// NewPasswordGeneratorWithSets creates a PasswordGenerator with custom character classes.
func NewPasswordGeneratorWithSets(rnd *Random, sets CharacterSets) *PasswordGenerator {
	return &PasswordGenerator{rnd: rnd, sets: sets}
}

// Generate builds one password of max(cfg.Length, enabled class count)
// characters.
//
// One character of each enabled class is drawn from the unfiltered class
// string, so a seed character may be one the exclusion options would have
// removed. The remaining positions are drawn from the filtered pool and the
// whole sequence is shuffled before returning.
func (g *PasswordGenerator) Generate(cfg model.PasswordConfig) (string, error) {
	if cfg.Length < 1 || cfg.Length > MaxPasswordLength {
		return "", fmt.Errorf("%w: password length must be between 1 and %d, got %d", ErrInvalidInput, MaxPasswordLength, cfg.Length)
	}

	classes := g.enabledClasses(cfg)
	if len(classes) == 0 {
		return "", ErrNoCharacterClassSelected
	}

	charset := strings.Join(classes, "")
	if cfg.ExcludeSimilar {
		charset = removeChars(charset, g.sets.Similar)
	}
	if cfg.ExcludeAmbiguous {
		charset = removeChars(charset, g.sets.Ambiguous)
	}

	password := make([]byte, 0, max(cfg.Length, len(classes)))
	for _, class := range classes {
		c, err := g.rnd.Char(class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for len(password) < cfg.Length {
		if charset == "" {
			return "", ErrEmptyCharset
		}
		c, err := g.rnd.Char(charset)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := g.rnd.Shuffle(password); err != nil {
		return "", err
	}
	return string(password), nil
}

// enabledClasses returns the source strings of the enabled classes in the
// fixed order uppercase, lowercase, numbers, symbols.
func (g *PasswordGenerator) enabledClasses(cfg model.PasswordConfig) []string {
	var classes []string
	if cfg.IncludeUppercase {
		classes = append(classes, g.sets.Uppercase)
	}
	if cfg.IncludeLowercase {
		classes = append(classes, g.sets.Lowercase)
	}
	if cfg.IncludeNumbers {
		classes = append(classes, g.sets.Numbers)
	}
	if cfg.IncludeSymbols {
		classes = append(classes, g.sets.Symbols)
	}
	return classes
}

// removeChars drops every character of s that occurs in remove.
func removeChars(s, remove string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(remove, r) {
			return -1
		}
		return r
	}, s)
}
