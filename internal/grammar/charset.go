package grammar

// CharSet is an immutable set of byte values.
// Sets compose by union at construction time, so membership tests stay
// a single mask lookup no matter how a set was built.
type CharSet struct {
	bits [4]uint64
}

// Chars returns a CharSet containing exactly the given bytes.
func Chars(chars ...byte) CharSet {
	var cs CharSet
	for _, c := range chars {
		cs.bits[c>>6] |= 1 << (c & 63)
	}
	return cs
}

// CharRange returns a CharSet containing the inclusive byte range [lo, hi].
func CharRange(lo, hi byte) CharSet {
	var cs CharSet
	for c := int(lo); c <= int(hi); c++ {
		cs.bits[c>>6] |= 1 << (c & 63)
	}
	return cs
}

// Union returns the union of the given sets.
func Union(sets ...CharSet) CharSet {
	var cs CharSet
	for _, s := range sets {
		for i := range cs.bits {
			cs.bits[i] |= s.bits[i]
		}
	}
	return cs
}

// Contains reports whether c is a member of the set.
func (cs CharSet) Contains(c byte) bool {
	return cs.bits[c>>6]&(1<<(c&63)) != 0
}

// Character classes of RFC 3986 appendix A, each named after the rule it
// implements. The *NotPctEncoded sets leave out the "pct-encoded"
// alternative, which the codec handles separately.
var (
	// Alpha is the ALPHA rule.
	Alpha = Union(CharRange('a', 'z'), CharRange('A', 'Z'))

	// Digit is the DIGIT rule.
	Digit = CharRange('0', '9')

	// HexDig is the HEXDIG rule, extended with lower-case digits as
	// percent-encodings are decoded case-insensitively.
	HexDig = Union(Digit, CharRange('A', 'F'), CharRange('a', 'f'))

	// Unreserved is the "unreserved" rule.
	Unreserved = Union(Alpha, Digit, Chars('-', '.', '_', '~'))

	// SubDelims is the "sub-delims" rule.
	SubDelims = Chars('!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=')

	// SchemeNotFirst holds the characters allowed in a scheme after its
	// first character.
	SchemeNotFirst = Union(Alpha, Digit, Chars('+', '-', '.'))

	// PCharNotPctEncoded is the "pchar" rule.
	PCharNotPctEncoded = Union(Unreserved, SubDelims, Chars(':', '@'))

	// QueryOrFragmentNotPctEncoded is the "query" and "fragment" rule.
	QueryOrFragmentNotPctEncoded = Union(PCharNotPctEncoded, Chars('/', '?'))

	// QueryNotPctEncodedWithoutPlus is the "query" rule minus '+'.
	// Some web services treat a literal '+' as an encoded space, so '+'
	// is always percent-encoded when a query is generated.
	QueryNotPctEncodedWithoutPlus = Union(
		Unreserved,
		Chars('!', '$', '&', '\'', '(', ')', '*', ',', ';', '=', ':', '@', '/', '?'),
	)

	// UserInfoNotPctEncoded is the "userinfo" rule.
	UserInfoNotPctEncoded = Union(Unreserved, SubDelims, Chars(':'))

	// RegNameNotPctEncoded is the "reg-name" rule.
	RegNameNotPctEncoded = Union(Unreserved, SubDelims)

	// IPvFutureLastPart holds the characters allowed after the '.' of an
	// IPvFuture literal.
	IPvFutureLastPart = Union(Unreserved, SubDelims, Chars(':'))
)
