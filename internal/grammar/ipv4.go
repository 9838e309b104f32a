package grammar

import (
	"strconv"

	"braces.dev/errtrace"
)

type ipv4State int

const (
	// stNotInOctet expects the first digit of a decimal octet.
	stNotInOctet ipv4State = iota
	// stExpectDigitOrDot is inside an octet, expecting another digit or '.'.
	stExpectDigitOrDot
)

type ipv4Validator struct {
	state     ipv4State
	numGroups int
	octet     []byte
}

// ValidateIPv4Address checks the "dotted decimal" IPv4 address grammar:
// exactly four groups of decimal octets in the range 0-255.
func ValidateIPv4Address(s string) error {
	v := &ipv4Validator{state: stNotInOctet}
	for i := 0; i < len(s); i++ {
		if err := v.next(s[i]); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return errtrace.Wrap(v.finalize())
}

func (v *ipv4Validator) next(c byte) error {
	switch v.state {
	case stNotInOctet:
		if !Digit.Contains(c) {
			return errtrace.Wrap(NewIllegalCharacterError(CtxIPv4Address))
		}
		v.octet = append(v.octet, c)
		v.state = stExpectDigitOrDot
		return nil
	case stExpectDigitOrDot:
		switch {
		case c == '.':
			v.numGroups++
			if v.numGroups > 4 {
				return errtrace.Wrap(ErrTooManyAddressParts)
			}
			if err := v.checkOctet(); err != nil {
				return errtrace.Wrap(err)
			}
			v.octet = v.octet[:0]
			v.state = stNotInOctet
			return nil
		case Digit.Contains(c):
			v.octet = append(v.octet, c)
			return nil
		default:
			return errtrace.Wrap(NewIllegalCharacterError(CtxIPv4Address))
		}
	default:
		panic("unreachable IPv4 state")
	}
}

func (v *ipv4Validator) checkOctet() error {
	if _, err := strconv.ParseUint(string(v.octet), 10, 8); err != nil {
		return errtrace.Wrap(ErrInvalidDecimalOctet)
	}
	return nil
}

func (v *ipv4Validator) finalize() error {
	if v.state == stNotInOctet {
		return errtrace.Wrap(ErrTruncatedHost)
	}
	if len(v.octet) > 0 {
		v.numGroups++
		if err := v.checkOctet(); err != nil {
			return errtrace.Wrap(err)
		}
	}
	switch {
	case v.numGroups == 4:
		return nil
	case v.numGroups < 4:
		return errtrace.Wrap(ErrTooFewAddressParts)
	default:
		return errtrace.Wrap(ErrTooManyAddressParts)
	}
}
