package grammar

import "braces.dev/errtrace"

type ipv6State int

const (
	// stNoGroupsYet is the initial state, before any group or colon.
	stNoGroupsYet ipv6State = iota
	// stColonButNoGroupsYet has seen a single leading ':'.
	stColonButNoGroupsYet
	// stAfterDoubleColon has just consumed a "::".
	stAfterDoubleColon
	// stInGroupNotIPv4 is inside a group that cannot be an IPv4 trailer.
	stInGroupNotIPv4
	// stInGroupCouldBeIPv4 is inside an all-decimal group that may turn out
	// to start an embedded IPv4 address.
	stInGroupCouldBeIPv4
	// stInGroupIPv4 marks the rest of the address as an IPv4 trailer.
	stInGroupIPv4
	// stColonAfterGroup has seen the ':' terminating a complete group.
	stColonAfterGroup
)

type ipv6Validator struct {
	state       ipv6State
	numGroups   int
	numDigits   int
	doubleColon bool
	ipv4Start   int
}

// ValidateIPv6Address checks the textual IPv6 address grammar of
// RFC 3986 appendix A: 16-bit hex groups separated by ':', at most one
// "::" elision, at most 4 digits per group, and an optional trailing
// embedded IPv4 address in place of the last two groups.
func ValidateIPv6Address(s string) error {
	v := &ipv6Validator{state: stNoGroupsYet}
	for i := 0; i < len(s); i++ {
		ipv4Trailer, err := v.next(i, s[i])
		if err != nil {
			return errtrace.Wrap(err)
		}
		if ipv4Trailer {
			// The rest of the address is validated as a whole by the
			// IPv4 grammar, starting at the group that began it.
			v.state = stInGroupIPv4
			break
		}
	}
	return errtrace.Wrap(v.finalize(s))
}

func (v *ipv6Validator) next(i int, c byte) (ipv4Trailer bool, err error) {
	switch v.state {
	case stNoGroupsYet:
		return false, errtrace.Wrap(v.nextNoGroupsYet(i, c))
	case stColonButNoGroupsYet:
		return false, errtrace.Wrap(v.nextColonButNoGroupsYet(c))
	case stAfterDoubleColon:
		return false, errtrace.Wrap(v.nextAfterDoubleColon(i, c))
	case stInGroupNotIPv4:
		return false, errtrace.Wrap(v.nextInGroupNotIPv4(c))
	case stInGroupCouldBeIPv4:
		return errtrace.Wrap2(v.nextInGroupCouldBeIPv4(c))
	case stColonAfterGroup:
		return false, errtrace.Wrap(v.nextColonAfterGroup(i, c))
	default:
		panic("unreachable IPv6 state")
	}
}

func (v *ipv6Validator) nextNoGroupsYet(i int, c byte) error {
	switch {
	case c == ':':
		v.state = stColonButNoGroupsYet
	case Digit.Contains(c):
		v.ipv4Start = i
		v.numDigits = 1
		v.state = stInGroupCouldBeIPv4
	case HexDig.Contains(c):
		v.numDigits = 1
		v.state = stInGroupNotIPv4
	default:
		return errtrace.Wrap(NewIllegalCharacterError(CtxIPv6Address))
	}
	return nil
}

func (v *ipv6Validator) nextColonButNoGroupsYet(c byte) error {
	if c != ':' {
		return errtrace.Wrap(NewIllegalCharacterError(CtxIPv6Address))
	}
	v.doubleColon = true
	v.state = stAfterDoubleColon
	return nil
}

func (v *ipv6Validator) nextAfterDoubleColon(i int, c byte) error {
	v.numDigits++
	switch {
	case v.numDigits > 4:
		return errtrace.Wrap(ErrTooManyDigits)
	case Digit.Contains(c):
		v.ipv4Start = i
		v.state = stInGroupCouldBeIPv4
	case HexDig.Contains(c):
		v.state = stInGroupNotIPv4
	default:
		return errtrace.Wrap(NewIllegalCharacterError(CtxIPv6Address))
	}
	return nil
}

func (v *ipv6Validator) nextInGroupNotIPv4(c byte) error {
	switch {
	case c == ':':
		v.numDigits = 0
		v.numGroups++
		v.state = stColonAfterGroup
	case HexDig.Contains(c):
		v.numDigits++
		if v.numDigits > 4 {
			return errtrace.Wrap(ErrTooManyDigits)
		}
	default:
		return errtrace.Wrap(NewIllegalCharacterError(CtxIPv6Address))
	}
	return nil
}

func (v *ipv6Validator) nextInGroupCouldBeIPv4(c byte) (ipv4Trailer bool, err error) {
	switch {
	case c == ':':
		v.numDigits = 0
		v.numGroups++
		v.state = stColonAfterGroup
	case c == '.':
		return true, nil
	default:
		v.numDigits++
		switch {
		case v.numDigits > 4:
			return false, errtrace.Wrap(ErrTooManyDigits)
		case Digit.Contains(c):
		case HexDig.Contains(c):
			v.state = stInGroupNotIPv4
		default:
			return false, errtrace.Wrap(NewIllegalCharacterError(CtxIPv6Address))
		}
	}
	return false, nil
}

func (v *ipv6Validator) nextColonAfterGroup(i int, c byte) error {
	switch {
	case c == ':':
		if v.doubleColon {
			return errtrace.Wrap(ErrTooManyDoubleColons)
		}
		v.doubleColon = true
		v.state = stAfterDoubleColon
	case Digit.Contains(c):
		v.ipv4Start = i
		v.numDigits++
		v.state = stInGroupCouldBeIPv4
	case HexDig.Contains(c):
		v.numDigits++
		v.state = stInGroupNotIPv4
	default:
		return errtrace.Wrap(NewIllegalCharacterError(CtxIPv6Address))
	}
	return nil
}

func (v *ipv6Validator) finalize(s string) error {
	switch v.state {
	case stInGroupNotIPv4, stInGroupCouldBeIPv4:
		// Count the trailing group.
		v.numGroups++
	case stInGroupIPv4:
		if err := ValidateIPv4Address(s[v.ipv4Start:]); err != nil {
			return errtrace.Wrap(err)
		}
		v.numGroups += 2
	}
	switch v.state {
	case stColonButNoGroupsYet, stColonAfterGroup:
		return errtrace.Wrap(ErrTruncatedHost)
	}
	switch {
	case v.doubleColon && v.numGroups <= 7:
		return nil
	case !v.doubleColon && v.numGroups == 8:
		return nil
	case !v.doubleColon && v.numGroups < 8:
		return errtrace.Wrap(ErrTooFewAddressParts)
	default:
		return errtrace.Wrap(ErrTooManyAddressParts)
	}
}
