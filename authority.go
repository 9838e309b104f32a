package uri

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/constraints"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/internal/util"
)

// Authority represents the authority component of a URI: optional user
// info, a host and an optional port. The zero value is an empty
// authority ("//" when rendered as part of a URI).
type Authority struct {
	userInfo    string
	hasUserInfo bool
	host        string
	port        uint16
	hasPort     bool
}

// ParseAuthority parses the authority component from a given input s
// (string or []byte). The input must not include the leading "//"
// marker. User info is split off at the last '@'; the remainder is
// parsed as host and optional port.
func ParseAuthority[T constraints.Byteseq](s T) (*Authority, error) {
	a := &Authority{}
	hostPort := string(s)
	if i := strings.LastIndexByte(hostPort, '@'); i >= 0 {
		userInfo, err := grammar.DecodeElement(hostPort[:i], grammar.UserInfoNotPctEncoded, grammar.CtxUserInfo)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		a.userInfo = userInfo
		a.hasUserInfo = true
		hostPort = hostPort[i+1:]
	}
	host, port, hasPort, err := grammar.ParseHostPort(hostPort)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	a.host = host
	a.port = port
	a.hasPort = hasPort
	return a, nil
}

// UserInfo returns the decoded user info and whether it is present.
func (a *Authority) UserInfo() (string, bool) {
	if a == nil {
		return "", false
	}
	return a.userInfo, a.hasUserInfo
}

// SetUserInfo sets the user info to the given decoded value.
func (a *Authority) SetUserInfo(userInfo string) {
	a.userInfo = userInfo
	a.hasUserInfo = true
}

// ClearUserInfo removes the user info.
func (a *Authority) ClearUserInfo() {
	a.userInfo = ""
	a.hasUserInfo = false
}

// Host returns the decoded host. Reg-name hosts are lower-cased,
// IP literal hosts are kept without their brackets.
func (a *Authority) Host() string {
	if a == nil {
		return ""
	}
	return a.host
}

// SetHost sets the host to the given decoded value.
func (a *Authority) SetHost(host string) {
	a.host = host
}

// Port returns the port number and whether it is present.
func (a *Authority) Port() (uint16, bool) {
	if a == nil {
		return 0, false
	}
	return a.port, a.hasPort
}

// SetPort sets the port number.
func (a *Authority) SetPort(port uint16) {
	a.port = port
	a.hasPort = true
}

// ClearPort removes the port number.
func (a *Authority) ClearPort() {
	a.port = 0
	a.hasPort = false
}

// IsZero reports whether the authority has no user info, host or port.
func (a *Authority) IsZero() bool {
	return a == nil || (!a.hasUserInfo && a.host == "" && !a.hasPort)
}

// Clone returns a deep copy of the authority.
func (a *Authority) Clone() *Authority {
	if a == nil {
		return nil
	}
	a2 := *a
	return &a2
}

// RenderTo writes the authority to the provided writer.
// Hosts whose text forms a valid IPv6 address render bracketed with
// lower-cased hex; any other host renders as a percent-encoded reg-name.
func (a *Authority) RenderTo(w io.Writer) (num int, err error) {
	if a == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if a.hasUserInfo {
		cw.WriteString(grammar.EncodeElement(a.userInfo, grammar.UserInfoNotPctEncoded))
		cw.WriteString("@")
	}
	if grammar.ValidateIPv6Address(a.host) == nil {
		cw.WriteString("[")
		cw.WriteString(util.LCase(a.host))
		cw.WriteString("]")
	} else {
		cw.WriteString(grammar.EncodeElement(a.host, grammar.RegNameNotPctEncoded))
	}
	if a.hasPort {
		cw.WriteString(":")
		cw.WriteString(strconv.FormatUint(uint64(a.port), 10))
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the authority.
func (a *Authority) Render() string {
	if a == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	a.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the authority.
func (a *Authority) String() string {
	if a == nil {
		return ""
	}
	return a.Render()
}

// Format implements fmt.Formatter for custom formatting of the authority.
func (a *Authority) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			a.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, a.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(a.String()))
		return
	default:
		type hideMethods Authority
		type Authority hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Authority)(a))
		return
	}
}

// Equal compares this authority with another for equality.
// Presence of user info and port is part of the comparison, so an empty
// user info differs from an absent one.
func (a *Authority) Equal(val any) bool {
	var other *Authority
	switch v := val.(type) {
	case Authority:
		other = &v
	case *Authority:
		other = v
	default:
		return false
	}

	if a == other {
		return true
	} else if a == nil || other == nil {
		return false
	}

	return a.hasUserInfo == other.hasUserInfo &&
		a.userInfo == other.userInfo &&
		a.host == other.host &&
		a.hasPort == other.hasPort &&
		a.port == other.port
}

// MarshalText implements [encoding.TextMarshaler].
func (a *Authority) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Authority) UnmarshalText(text []byte) error {
	a1, err := ParseAuthority(text)
	if err != nil {
		*a = Authority{}
		return errtrace.Wrap(err)
	}
	*a = *a1
	return nil
}
