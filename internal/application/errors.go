package application

import "errors"

// Sentinel errors returned by the generation core. None of them is fatal; the
// caller aborts the single request and reports the message.
var (
	// ErrInvalidInput indicates an empty random source or an out-of-range parameter.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoCharacterClassSelected indicates a password was requested with every
	// character class disabled.
	ErrNoCharacterClassSelected = errors.New("select at least one character type for passwords")

	// ErrEmptyCharset indicates the exclusion filters removed every candidate
	// character needed to fill a password.
	ErrEmptyCharset = errors.New("no characters left after applying exclusions")

	// ErrNoGeneratorEnabled indicates a batch was requested with both the
	// username and the password generator disabled.
	ErrNoGeneratorEnabled = errors.New("enable at least one generator")

	// ErrInvalidCount indicates a batch size outside [1, MaxBatchCount].
	ErrInvalidCount = errors.New("invalid credential count")

	// ErrNothingToExport indicates an export of an empty result set.
	ErrNothingToExport = errors.New("no results to export")

	// ErrUnsupportedFormat indicates an unknown export format.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrInvalidSettings indicates a settings update that failed validation.
	ErrInvalidSettings = errors.New("invalid settings")
)

// IsUserError reports whether err stems from bad caller input rather than an
// infrastructure failure. Driving adapters use it to pick between a warning
// and an internal error.
func IsUserError(err error) bool {
	for _, target := range []error{
		ErrInvalidInput,
		ErrNoCharacterClassSelected,
		ErrEmptyCharset,
		ErrNoGeneratorEnabled,
		ErrInvalidCount,
		ErrNothingToExport,
		ErrUnsupportedFormat,
		ErrInvalidSettings,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
