// Package grammar implements the RFC 3986 character-level grammar:
// character classes, the percent-encoding codec, host/port parsing and
// IP literal validation.
package grammar

//go:generate go tool errtrace -w .

import (
	"github.com/ghettovoice/gouri/internal/errorutil"
)

// Error is a grammar-level parse error.
type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyScheme            Error = "scheme expected but missing"
	ErrIllegalCharacter       Error = "illegal character"
	ErrIllegalPercentEncoding Error = "illegal percent encoding"
	ErrIllegalPortNumber      Error = "illegal port number"
	ErrInvalidDecimalOctet    Error = "invalid decimal octet"
	ErrTooFewAddressParts     Error = "too few address parts"
	ErrTooManyAddressParts    Error = "too many address parts"
	ErrTooManyDigits          Error = "too many digits in IPv6 address group"
	ErrTooManyDoubleColons    Error = "too many double-colons in IPv6 address"
	ErrTruncatedHost          Error = "truncated host"
)

// Component names used to give illegal-character errors their context.
const (
	CtxScheme      = "scheme"
	CtxUserInfo    = "user info"
	CtxHost        = "host"
	CtxIPv4Address = "IPv4 address"
	CtxIPv6Address = "IPv6 address"
	CtxIPvFuture   = "IPvFuture"
	CtxPath        = "path"
	CtxQuery       = "query"
	CtxFragment    = "fragment"
)

// NewIllegalCharacterError returns [ErrIllegalCharacter] annotated with
// the URI component it was found in.
func NewIllegalCharacterError(component string) error {
	return errorutil.NewWrapperError(ErrIllegalCharacter, "in %s", component) //errtrace:skip
}
