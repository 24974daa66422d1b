package application

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Random draws uniformly distributed values from a cryptographically secure
// byte source.
type Random struct {
	src io.Reader
}

// NewRandom creates a Random reading from src. A nil src selects crypto/rand.Reader.
func NewRandom(src io.Reader) *Random {
	if src == nil {
		src = rand.Reader
	}
	return &Random{src: src}
}

// Index returns a uniform integer in [0, n).
func (r *Random) Index(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: cannot pick from %d candidates", ErrInvalidInput, n)
	}
	v, err := rand.Int(r.src, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random source: %w", err)
	}
	return int(v.Int64()), nil
}

// Int returns a uniform integer in [min, max], both inclusive.
func (r *Random) Int(min, max int) (int, error) {
	if max < min {
		return 0, fmt.Errorf("%w: empty range [%d, %d]", ErrInvalidInput, min, max)
	}
	i, err := r.Index(max - min + 1)
	if err != nil {
		return 0, err
	}
	return min + i, nil
}

// Char returns a uniform byte of s.
func (r *Random) Char(s string) (byte, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty character source", ErrInvalidInput)
	}
	i, err := r.Index(len(s))
	if err != nil {
		return 0, err
	}
	return s[i], nil
}

// Pick returns a uniform element of list.
func (r *Random) Pick(list []string) (string, error) {
	if len(list) == 0 {
		return "", fmt.Errorf("%w: empty word list", ErrInvalidInput)
	}
	i, err := r.Index(len(list))
	if err != nil {
		return "", err
	}
	return list[i], nil
}

// Shuffle permutes b in place with a Fisher-Yates shuffle, so every
// permutation is equally likely.
func (r *Random) Shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := r.Index(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
