package grammar

import "braces.dev/errtrace"

// PctDecoder decodes the two hexadecimal digits following a '%'.
// A fresh decoder is required per percent-encoded triplet.
type PctDecoder struct {
	decoded    byte
	digitsLeft int
}

// NewPctDecoder returns a decoder expecting two hexadecimal digits.
func NewPctDecoder() PctDecoder {
	return PctDecoder{digitsLeft: 2}
}

// Next feeds the decoder one character. It returns the decoded byte with
// done=true once both digits have been consumed. Any character outside
// HEXDIG fails the whole decode.
func (d *PctDecoder) Next(c byte) (b byte, done bool, err error) {
	if !HexDig.Contains(c) {
		return 0, false, errtrace.Wrap(ErrIllegalPercentEncoding)
	}
	d.decoded = d.decoded<<4 | unhex(c)
	d.digitsLeft--
	if d.digitsLeft == 0 {
		return d.decoded, true, nil
	}
	return 0, false, nil
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
