package uri

import (
	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
)

// Error represents a URI grammar error.
// See [grammar.Error].
type Error = grammar.Error

// Parse errors.
const (
	// ErrEmptyScheme is returned when a URI has a ':' scheme delimiter
	// but no scheme text before it.
	ErrEmptyScheme = grammar.ErrEmptyScheme
	// ErrIllegalCharacter is returned when a URI component contains a
	// character its grammar does not allow. The error message names the
	// component.
	ErrIllegalCharacter = grammar.ErrIllegalCharacter
	// ErrIllegalPercentEncoding is returned for a '%' not followed by
	// two hexadecimal digits.
	ErrIllegalPercentEncoding = grammar.ErrIllegalPercentEncoding
	// ErrIllegalPortNumber is returned when the port text is not a
	// decimal number in [0, 65535].
	ErrIllegalPortNumber = grammar.ErrIllegalPortNumber
	// ErrTruncatedHost is returned when a host ends mid-escape, inside
	// an unclosed IP literal bracket, or on a dangling separator.
	ErrTruncatedHost = grammar.ErrTruncatedHost
)

// IP literal errors.
const (
	ErrInvalidDecimalOctet = grammar.ErrInvalidDecimalOctet
	ErrTooFewAddressParts  = grammar.ErrTooFewAddressParts
	ErrTooManyAddressParts = grammar.ErrTooManyAddressParts
	ErrTooManyDigits       = grammar.ErrTooManyDigits
	ErrTooManyDoubleColons = grammar.ErrTooManyDoubleColons
)

// IsGrammarErr returns true if the error is a grammar error.
func IsGrammarErr(err error) bool {
	return errorutil.IsGrammarErr(err)
}
