package application

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ericfisherdev/genpass/internal/domain/model"
)

// minUsernameLength is the length usernames are padded to with digits when
// the requested length allows it.
const minUsernameLength = 4

// MaxUsernameLength bounds the requested username length.
const MaxUsernameLength = 64

// UsernameGenerator builds usernames from themed word banks.
type UsernameGenerator struct {
	rnd   *Random
	banks model.WordBanks
}

// NewUsernameGenerator creates a UsernameGenerator. A nil banks selects
// model.DefaultWordBanks().
func NewUsernameGenerator(rnd *Random, banks model.WordBanks) *UsernameGenerator {
	if banks == nil {
		banks = model.DefaultWordBanks()
	}
	return &UsernameGenerator{rnd: rnd, banks: banks}
}

// Generate builds one username. The custom prefix always comes first, a core
// fragment from the style's word bank fills the space left for the suffix,
// and the suffix is appended only when it still fits. The result never exceeds
// cfg.Length runes and is padded with digits up to min(cfg.Length, 4).
func (g *UsernameGenerator) Generate(cfg model.UsernameConfig) (string, error) {
	if cfg.Length < 1 || cfg.Length > MaxUsernameLength {
		return "", fmt.Errorf("%w: username length must be between 1 and %d, got %d", ErrInvalidInput, MaxUsernameLength, cfg.Length)
	}

	bank := g.banks.Lookup(cfg.Style)
	prefix := strings.TrimSpace(cfg.Prefix)
	suffix := strings.TrimSpace(cfg.Suffix)
	suffixLen := utf8.RuneCountInString(suffix)

	username := []rune(prefix)

	remaining := cfg.Length - len(username) - suffixLen
	if remaining > 0 {
		core, err := g.coreFragment(bank)
		if err != nil {
			return "", err
		}
		username = append(username, truncateRunes([]rune(core), remaining)...)
	}

	if suffix != "" && len(username)+suffixLen <= cfg.Length {
		username = append(username, []rune(suffix)...)
	}

	username = truncateRunes(username, cfg.Length)

	for len(username) < min(cfg.Length, minUsernameLength) {
		d, err := g.rnd.Int(0, 9)
		if err != nil {
			return "", err
		}
		username = append(username, rune('0'+d))
	}

	return string(username), nil
}

// coreFragment picks one of five construction patterns uniformly and applies it.
func (g *UsernameGenerator) coreFragment(bank model.WordBank) (string, error) {
	patterns := []func(model.WordBank) (string, error){
		g.prefixWord,
		g.wordSuffix,
		g.prefixTwoDigits,
		g.wordThreeDigits,
		g.prefixWordStem,
	}

	i, err := g.rnd.Index(len(patterns))
	if err != nil {
		return "", err
	}
	return patterns[i](bank)
}

func (g *UsernameGenerator) prefixWord(bank model.WordBank) (string, error) {
	return g.join(bank.Prefixes, bank.Words)
}

func (g *UsernameGenerator) wordSuffix(bank model.WordBank) (string, error) {
	return g.join(bank.Words, bank.Suffixes)
}

func (g *UsernameGenerator) prefixTwoDigits(bank model.WordBank) (string, error) {
	return g.withNumber(bank.Prefixes, 10, 99)
}

func (g *UsernameGenerator) wordThreeDigits(bank model.WordBank) (string, error) {
	return g.withNumber(bank.Words, 100, 999)
}

// prefixWordStem joins a prefix with the first three characters of a word.
func (g *UsernameGenerator) prefixWordStem(bank model.WordBank) (string, error) {
	prefix, err := g.rnd.Pick(bank.Prefixes)
	if err != nil {
		return "", err
	}
	word, err := g.rnd.Pick(bank.Words)
	if err != nil {
		return "", err
	}
	return prefix + string(truncateRunes([]rune(word), 3)), nil
}

func (g *UsernameGenerator) join(first, second []string) (string, error) {
	a, err := g.rnd.Pick(first)
	if err != nil {
		return "", err
	}
	b, err := g.rnd.Pick(second)
	if err != nil {
		return "", err
	}
	return a + b, nil
}

func (g *UsernameGenerator) withNumber(words []string, lo, hi int) (string, error) {
	w, err := g.rnd.Pick(words)
	if err != nil {
		return "", err
	}
	n, err := g.rnd.Int(lo, hi)
	if err != nil {
		return "", err
	}
	return w + strconv.Itoa(n), nil
}

func truncateRunes(r []rune, n int) []rune {
	if len(r) > n {
		return r[:n]
	}
	return r
}
