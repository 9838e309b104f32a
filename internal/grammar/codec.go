package grammar

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/constraints"
	"github.com/ghettovoice/gouri/internal/util"
)

// DecodeElement percent-decodes a raw URI element against the set of
// characters allowed to appear unencoded in it. Any byte outside the
// allowed set that is not part of a valid percent-encoded triplet fails
// the whole decode. component names the element for error context.
func DecodeElement[T constraints.Byteseq](s T, allowed CharSet, component string) (string, error) {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '%':
			if i+2 >= len(s) {
				return "", errtrace.Wrap(ErrIllegalPercentEncoding)
			}
			dec := NewPctDecoder()
			var (
				b    byte
				done bool
				err  error
			)
			for !done {
				i++
				if b, done, err = dec.Next(s[i]); err != nil {
					return "", errtrace.Wrap(err)
				}
			}
			sb.WriteByte(b)
		case allowed.Contains(c):
			sb.WriteByte(c)
		default:
			return "", errtrace.Wrap(NewIllegalCharacterError(component))
		}
	}
	return sb.String(), nil
}

const upperhex = "0123456789ABCDEF"

// EncodeElement percent-encodes every byte of a decoded URI element that
// is not allowed to appear unencoded in it.
func EncodeElement(s string, allowed CharSet) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i := 0; i < len(s); i++ {
		if c := s[i]; allowed.Contains(c) {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('%')
			sb.WriteByte(upperhex[c>>4])
			sb.WriteByte(upperhex[c&15])
		}
	}
	return sb.String()
}
