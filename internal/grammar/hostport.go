package grammar

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/util"
)

// hostPortState enumerates the states of the host/port automaton.
// Each state has a dedicated transition method so that the machine stays
// inspectable and testable state by state.
type hostPortState int

const (
	// stNotIPLiteral collects a reg-name (or IPv4 literal text) until ':' or end.
	stNotIPLiteral hostPortState = iota
	// stPercentEncodedChar consumes the hex digits of a '%' escape inside a reg-name.
	stPercentEncodedChar
	// stIPv6Address collects the bracketed IPv6 literal body until ']'.
	stIPv6Address
	// stIPvFutureNumber consumes the version digits of an IPvFuture literal.
	stIPvFutureNumber
	// stIPvFutureBody collects the address body of an IPvFuture literal until ']'.
	stIPvFutureBody
	// stGarbageCheck permits only ':' or end after a closing ']'.
	stGarbageCheck
	// stPort collects the port text after ':'.
	stPort
)

type hostPortParser struct {
	state         hostPortState
	host          []byte
	hostIsRegName bool
	ipv6          []byte
	futureDigits  int
	dec           PctDecoder
	port          []byte
}

// ParseHostPort parses the host[:port] tail of an authority.
// Reg-name hosts are percent-decoded and lower-cased; IP literals are
// validated and kept as typed, with the brackets stripped.
func ParseHostPort(s string) (host string, port uint16, hasPort bool, err error) {
	p := &hostPortParser{}
	switch {
	case strings.HasPrefix(s, "[v"):
		p.state = stIPvFutureNumber
		p.host = append(p.host, 'v')
		s = s[2:]
	case strings.HasPrefix(s, "["):
		p.state = stIPv6Address
		s = s[1:]
	default:
		p.state = stNotIPLiteral
		p.hostIsRegName = true
	}
	for i := 0; i < len(s); i++ {
		if err := p.next(s[i]); err != nil {
			return "", 0, false, errtrace.Wrap(err)
		}
	}
	return errtrace.Wrap4(p.finalize())
}

func (p *hostPortParser) next(c byte) error {
	switch p.state {
	case stNotIPLiteral:
		return errtrace.Wrap(p.nextNotIPLiteral(c))
	case stPercentEncodedChar:
		return errtrace.Wrap(p.nextPercentEncodedChar(c))
	case stIPv6Address:
		return errtrace.Wrap(p.nextIPv6Address(c))
	case stIPvFutureNumber:
		return errtrace.Wrap(p.nextIPvFutureNumber(c))
	case stIPvFutureBody:
		return errtrace.Wrap(p.nextIPvFutureBody(c))
	case stGarbageCheck:
		return errtrace.Wrap(p.nextGarbageCheck(c))
	case stPort:
		return errtrace.Wrap(p.nextPort(c))
	default:
		panic("unreachable host/port state")
	}
}

func (p *hostPortParser) nextNotIPLiteral(c byte) error {
	switch {
	case c == '%':
		p.dec = NewPctDecoder()
		p.state = stPercentEncodedChar
	case c == ':':
		p.state = stPort
	case RegNameNotPctEncoded.Contains(c):
		p.host = append(p.host, c)
	default:
		return errtrace.Wrap(NewIllegalCharacterError(CtxHost))
	}
	return nil
}

func (p *hostPortParser) nextPercentEncodedChar(c byte) error {
	b, done, err := p.dec.Next(c)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if done {
		p.host = append(p.host, b)
		p.state = stNotIPLiteral
	}
	return nil
}

func (p *hostPortParser) nextIPv6Address(c byte) error {
	if c == ']' {
		if err := ValidateIPv6Address(string(p.ipv6)); err != nil {
			return errtrace.Wrap(err)
		}
		p.host = p.ipv6
		p.state = stGarbageCheck
		return nil
	}
	p.ipv6 = append(p.ipv6, c)
	return nil
}

func (p *hostPortParser) nextIPvFutureNumber(c byte) error {
	switch {
	case c == '.':
		if p.futureDigits == 0 {
			return errtrace.Wrap(NewIllegalCharacterError(CtxIPvFuture))
		}
		p.host = append(p.host, '.')
		p.state = stIPvFutureBody
	case c == ']':
		return errtrace.Wrap(ErrTruncatedHost)
	case HexDig.Contains(c):
		p.host = append(p.host, c)
		p.futureDigits++
	default:
		return errtrace.Wrap(NewIllegalCharacterError(CtxIPvFuture))
	}
	return nil
}

func (p *hostPortParser) nextIPvFutureBody(c byte) error {
	switch {
	case c == ']':
		p.state = stGarbageCheck
	case IPvFutureLastPart.Contains(c):
		p.host = append(p.host, c)
	default:
		return errtrace.Wrap(NewIllegalCharacterError(CtxIPvFuture))
	}
	return nil
}

func (p *hostPortParser) nextGarbageCheck(c byte) error {
	// Nothing may follow the closing bracket except a port delimiter.
	if c != ':' {
		return errtrace.Wrap(NewIllegalCharacterError(CtxHost))
	}
	p.state = stPort
	return nil
}

func (p *hostPortParser) nextPort(c byte) error {
	// Collected verbatim; validated as a whole in finalize.
	p.port = append(p.port, c)
	return nil
}

func (p *hostPortParser) finalize() (host string, port uint16, hasPort bool, err error) {
	switch p.state {
	case stPercentEncodedChar, stIPv6Address, stIPvFutureNumber, stIPvFutureBody:
		return "", 0, false, errtrace.Wrap(ErrTruncatedHost)
	}
	host = string(p.host)
	if p.hostIsRegName {
		host = util.LCase(host)
	}
	if len(p.port) > 0 {
		n, err := strconv.ParseUint(string(p.port), 10, 16)
		if err != nil {
			return "", 0, false, errtrace.Wrap(errorutil.NewWrapperError(ErrIllegalPortNumber, err))
		}
		return host, uint16(n), true, nil
	}
	return host, 0, false, nil
}
