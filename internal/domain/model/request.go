package model

// UsernameConfig controls the construction of a single username.
type UsernameConfig struct {
	Length int
	Style  Style
	Prefix string // Optional; always placed first.
	Suffix string // Optional; appended only when it still fits.
}

// PasswordConfig controls the construction of a single password.
type PasswordConfig struct {
	Length           int
	IncludeUppercase bool
	IncludeLowercase bool
	IncludeNumbers   bool
	IncludeSymbols   bool
	ExcludeSimilar   bool
	ExcludeAmbiguous bool
}

// EnabledClassCount returns how many character classes are switched on.
func (c PasswordConfig) EnabledClassCount() int {
	n := 0
	for _, on := range []bool{c.IncludeUppercase, c.IncludeLowercase, c.IncludeNumbers, c.IncludeSymbols} {
		if on {
			n++
		}
	}
	return n
}

// GenerationRequest describes one batch generation.
type GenerationRequest struct {
	UsernameEnabled bool
	PasswordEnabled bool
	Count           int
	Username        UsernameConfig
	Password        PasswordConfig
}

// DefaultGenerationRequest returns a request mirroring the form defaults for
// the given settings: one credential pair with every character class enabled.
func DefaultGenerationRequest(s Settings) GenerationRequest {
	return GenerationRequest{
		UsernameEnabled: true,
		PasswordEnabled: true,
		Count:           1,
		Username: UsernameConfig{
			Length: s.DefaultUsernameLength,
			Style:  DefaultStyle,
		},
		Password: PasswordConfig{
			Length:           s.DefaultPasswordLength,
			IncludeUppercase: true,
			IncludeLowercase: true,
			IncludeNumbers:   true,
			IncludeSymbols:   true,
		},
	}
}
