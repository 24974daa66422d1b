package application

import (
	"unicode/utf8"

	"github.com/ericfisherdev/genpass/internal/domain/model"
)

// ScoreStrength rates a password on a 0-9 scale.
//
// One point each for: length >= 8, length >= 12, an uppercase letter, a
// lowercase letter, a digit, a non-alphanumeric character, and at least
// 70% distinct characters. Lengths of 16 and 20 earn one bonus point each.
// An empty password scores 0 with the StrengthNone label.
func ScoreStrength(password string) model.Strength {
	if password == "" {
		return model.Strength{Score: 0, Label: model.StrengthNone}
	}

	length := utf8.RuneCountInString(password)
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	distinct := make(map[rune]struct{}, length)

	for _, r := range password {
		distinct[r] = struct{}{}
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	checks := []bool{
		length >= 8,
		length >= 12,
		hasUpper,
		hasLower,
		hasDigit,
		hasSymbol,
		float64(len(distinct)) >= float64(length)*0.7,
		length >= 16,
		length >= 20,
	}

	score := 0
	for _, ok := range checks {
		if ok {
			score++
		}
	}

	return model.Strength{Score: score, Label: strengthLabel(score)}
}

func strengthLabel(score int) model.StrengthLabel {
	switch {
	case score <= 3:
		return model.StrengthWeak
	case score <= 5:
		return model.StrengthMedium
	case score <= 7:
		return model.StrengthStrong
	default:
		return model.StrengthVeryStrong
	}
}
