package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/constraints"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/internal/util"
)

// URI represents a parsed RFC 3986 URI reference.
//
// Component values are stored decoded; percent-encoding is applied
// again on rendering, per component. Optional components track their
// presence separately from emptiness, so "http://host?" keeps its
// empty-but-present query.
type URI struct {
	scheme      string
	authority   *Authority
	path        []string
	query       string
	hasQuery    bool
	fragment    string
	hasFragment bool
}

// Parse parses a URI reference from a given input s (string or []byte).
// It either returns a fully formed URI or an error; a failure in any
// component fails the whole parse.
func Parse[T constraints.Byteseq](s T) (*URI, error) {
	scheme, rest, err := parseScheme(string(s))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	// The query and fragment cannot contain an unencoded '/', so the
	// first of '?' or '#' ends the authority and path.
	pathEnd := strings.IndexAny(rest, "?#")
	if pathEnd < 0 {
		pathEnd = len(rest)
	}
	authority, path, err := splitAuthorityFromPath(rest[:pathEnd])
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	fragment, hasFragment, possibleQuery, err := parseFragment(rest[pathEnd:])
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	query, hasQuery, err := parseQuery(possibleQuery)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &URI{
		scheme:      scheme,
		authority:   authority,
		path:        path,
		query:       query,
		hasQuery:    hasQuery,
		fragment:    fragment,
		hasFragment: hasFragment,
	}, nil
}

// parseScheme searches for the ':' scheme delimiter only before the
// first '/', because the authority and path may contain colons as well.
func parseScheme(s string) (scheme, rest string, err error) {
	end := strings.IndexByte(s, '/')
	if end < 0 {
		end = len(s)
	}
	i := strings.IndexByte(s[:end], ':')
	if i < 0 {
		return "", s, nil
	}
	if err := checkScheme(s[:i]); err != nil {
		return "", "", errtrace.Wrap(err)
	}
	return util.LCase(s[:i]), s[i+1:], nil
}

func checkScheme(scheme string) error {
	if scheme == "" {
		return errtrace.Wrap(error(ErrEmptyScheme))
	}
	for i := 0; i < len(scheme); i++ {
		valid := grammar.SchemeNotFirst
		if i == 0 {
			valid = grammar.Alpha
		}
		if !valid.Contains(scheme[i]) {
			return errtrace.Wrap(grammar.NewIllegalCharacterError(grammar.CtxScheme))
		}
	}
	return nil
}

func splitAuthorityFromPath(s string) (*Authority, []string, error) {
	if !strings.HasPrefix(s, "//") {
		path, err := parsePath(s)
		return nil, path, errtrace.Wrap(err)
	}
	s = s[2:]
	end := strings.IndexByte(s, '/')
	if end < 0 {
		end = len(s)
	}
	authority, err := ParseAuthority(s[:end])
	if err != nil {
		return nil, nil, errtrace.Wrap(err)
	}
	// An authority with no path still has the absolute empty path.
	if s[end:] == "" {
		return authority, []string{""}, nil
	}
	path, err := parsePath(s[end:])
	if err != nil {
		return nil, nil, errtrace.Wrap(err)
	}
	return authority, path, nil
}

func parseFragment(queryAndOrFragment string) (fragment string, hasFragment bool, rest string, err error) {
	i := strings.IndexByte(queryAndOrFragment, '#')
	if i < 0 {
		return "", false, queryAndOrFragment, nil
	}
	fragment, err = grammar.DecodeElement(queryAndOrFragment[i+1:], grammar.QueryOrFragmentNotPctEncoded, grammar.CtxFragment)
	if err != nil {
		return "", false, "", errtrace.Wrap(err)
	}
	return fragment, true, queryAndOrFragment[:i], nil
}

func parseQuery(possibleQuery string) (query string, hasQuery bool, err error) {
	if possibleQuery == "" {
		return "", false, nil
	}
	// possibleQuery still carries its leading '?'.
	query, err = grammar.DecodeElement(possibleQuery[1:], grammar.QueryOrFragmentNotPctEncoded, grammar.CtxQuery)
	if err != nil {
		return "", false, errtrace.Wrap(err)
	}
	return query, true, nil
}

// Scheme returns the lower-cased scheme, or an empty string if the URI
// is a relative reference.
func (u *URI) Scheme() string {
	if u == nil {
		return ""
	}
	return u.scheme
}

// SetScheme sets the scheme after validating it against the scheme
// grammar: a letter followed by letters, digits, '+', '-' or '.'.
func (u *URI) SetScheme(scheme string) error {
	if err := checkScheme(scheme); err != nil {
		return errtrace.Wrap(err)
	}
	u.scheme = scheme
	return nil
}

// ClearScheme removes the scheme, turning the URI into a relative
// reference.
func (u *URI) ClearScheme() {
	u.scheme = ""
}

// Authority returns the authority component, or nil if the URI has none.
func (u *URI) Authority() *Authority {
	if u == nil {
		return nil
	}
	return u.authority
}

// SetAuthority sets the authority component. A nil authority removes it.
func (u *URI) SetAuthority(authority *Authority) {
	u.authority = authority
}

// UserInfo returns the decoded user info and whether it is present.
func (u *URI) UserInfo() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.authority.UserInfo()
}

// SetUserInfo sets the user info, creating an empty authority if the
// URI has none.
func (u *URI) SetUserInfo(userInfo string) {
	if u.authority == nil {
		u.authority = &Authority{}
	}
	u.authority.SetUserInfo(userInfo)
}

// ClearUserInfo removes the user info if an authority is present.
func (u *URI) ClearUserInfo() {
	if u.authority != nil {
		u.authority.ClearUserInfo()
	}
}

// Host returns the decoded host and whether an authority is present.
func (u *URI) Host() (string, bool) {
	if u == nil || u.authority == nil {
		return "", false
	}
	return u.authority.Host(), true
}

// SetHost sets the host, creating an empty authority if the URI has none.
func (u *URI) SetHost(host string) {
	if u.authority == nil {
		u.authority = &Authority{}
	}
	u.authority.SetHost(host)
}

// Port returns the port number and whether it is present.
func (u *URI) Port() (uint16, bool) {
	if u == nil {
		return 0, false
	}
	return u.authority.Port()
}

// SetPort sets the port, creating an empty authority if the URI has none.
func (u *URI) SetPort(port uint16) {
	if u.authority == nil {
		u.authority = &Authority{}
	}
	u.authority.SetPort(port)
}

// ClearPort removes the port if an authority is present.
func (u *URI) ClearPort() {
	if u.authority != nil {
		u.authority.ClearPort()
	}
}

// Path returns the decoded path segments. A leading empty segment marks
// an absolute path, a trailing empty segment marks a trailing slash,
// and a single empty segment is the absolute empty path "/".
func (u *URI) Path() []string {
	if u == nil {
		return nil
	}
	return u.path
}

// SetPath sets the path to the given decoded segments.
func (u *URI) SetPath(path []string) {
	u.path = path
}

// SetPathString sets the path from its string form, splitting on '/'.
// The segments are taken verbatim, without percent-decoding.
func (u *URI) SetPathString(path string) {
	if path == "" {
		u.path = nil
		return
	}
	u.path = strings.Split(path, "/")
}

// PathString returns the path as a single '/'-joined string.
func (u *URI) PathString() string {
	if u == nil {
		return ""
	}
	if len(u.path) == 1 && u.path[0] == "" {
		return "/"
	}
	return strings.Join(u.path, "/")
}

// Query returns the decoded query and whether it is present.
func (u *URI) Query() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.query, u.hasQuery
}

// SetQuery sets the query to the given decoded value.
func (u *URI) SetQuery(query string) {
	u.query = query
	u.hasQuery = true
}

// ClearQuery removes the query.
func (u *URI) ClearQuery() {
	u.query = ""
	u.hasQuery = false
}

// Fragment returns the decoded fragment and whether it is present.
func (u *URI) Fragment() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.fragment, u.hasFragment
}

// SetFragment sets the fragment to the given decoded value.
func (u *URI) SetFragment(fragment string) {
	u.fragment = fragment
	u.hasFragment = true
}

// ClearFragment removes the fragment.
func (u *URI) ClearFragment() {
	u.fragment = ""
	u.hasFragment = false
}

// IsRelativeReference reports whether the URI has no scheme.
func (u *URI) IsRelativeReference() bool {
	return u == nil || u.scheme == ""
}

// ContainsRelativePath reports whether the path is not absolute.
func (u *URI) ContainsRelativePath() bool {
	return u == nil || !isPathAbsolute(u.path)
}

// NormalizePath removes dot segments from the path in place, per
// RFC 3986 section 5.2.4. It is idempotent.
func (u *URI) NormalizePath() {
	u.path = normalizePath(u.path)
}

// Clone returns a deep copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.authority = u.authority.Clone()
	u2.path = slices.Clone(u.path)
	return &u2
}

// RenderTo writes the URI to the provided writer in canonical form:
// each component percent-encoded against its own character class, with
// '+' in the query always encoded as "%2B".
func (u *URI) RenderTo(w io.Writer) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if u.scheme != "" {
		cw.WriteString(u.scheme)
		cw.WriteString(":")
	}
	if u.authority != nil {
		cw.WriteString("//")
		cw.Call(u.authority.RenderTo)
	}
	// Special case: absolute but otherwise empty path.
	if isPathAbsolute(u.path) && len(u.path) == 1 {
		cw.WriteString("/")
	}
	for i, segment := range u.path {
		cw.WriteString(grammar.EncodeElement(segment, grammar.PCharNotPctEncoded))
		if i+1 < len(u.path) {
			cw.WriteString("/")
		}
	}
	if u.hasQuery {
		cw.WriteString("?")
		cw.WriteString(grammar.EncodeElement(u.query, grammar.QueryNotPctEncodedWithoutPlus))
	}
	if u.hasFragment {
		cw.WriteString("#")
		cw.WriteString(grammar.EncodeElement(u.fragment, grammar.QueryOrFragmentNotPctEncoded))
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the URI.
func (u *URI) Render() string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the URI.
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	return u.Render()
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// Equal compares this URI with another for structural equality,
// including the presence flags of the optional components.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return u.scheme == other.scheme &&
		u.authority.Equal(other.authority) &&
		slices.Equal(u.path, other.path) &&
		u.hasQuery == other.hasQuery &&
		u.query == other.query &&
		u.hasFragment == other.hasFragment &&
		u.fragment == other.fragment
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
