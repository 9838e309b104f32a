package grammar_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/gouri/internal/grammar"
)

func TestValidateIPv6Address(t *testing.T) {
	t.Parallel()

	good := []string{
		"::1",
		"::ffff:1.2.3.4",
		"2001:db8:85a3:8d3:1319:8a2e:370:7348",
		"2001:db8:85a3:8d3:1319:8a2e:370::",
		"2001:db8:85a3:8d3:1319:8a2e::1",
		"fFfF::1",
		"1234::1",
		"fFfF:1:2:3:4:5:6:a",
		"2001:db8:85a3::8a2e:0",
		"2001:db8:85a3:8a2e::",
		"::",
	}
	for _, in := range good {
		if err := grammar.ValidateIPv6Address(in); err != nil {
			t.Errorf("grammar.ValidateIPv6Address(%q) = %v, want nil", in, err)
		}
	}

	bad := []struct {
		in      string
		wantErr error
	}{
		{"::fFfF::1", grammar.ErrTooManyDoubleColons},
		{"::ffff:1.2.x.4", grammar.ErrIllegalCharacter},
		{"::ffff:1.2.3.4.8", grammar.ErrTooManyAddressParts},
		{"::ffff:1.2.3", grammar.ErrTooFewAddressParts},
		{"::ffff:1.2.3.", grammar.ErrTruncatedHost},
		{"::ffff:1.2.3.256", grammar.ErrInvalidDecimalOctet},
		{"::fxff:1.2.3.4", grammar.ErrIllegalCharacter},
		{"::ffff:1.2.3.-4", grammar.ErrIllegalCharacter},
		{"::ffff:1.2.3. 4", grammar.ErrIllegalCharacter},
		{"::ffff:1.2.3.4 ", grammar.ErrIllegalCharacter},
		{"2001:db8:85a3:8d3:1319:8a2e:370:7348:0000", grammar.ErrTooManyAddressParts},
		{"2001:db8:85a3:8d3:1319:8a2e:370:7348::1", grammar.ErrTooManyAddressParts},
		{"2001:db8:85a3:8d3:1319:8a2e:370::1", grammar.ErrTooManyAddressParts},
		{"2001:db8:85a3::8a2e:0:", grammar.ErrTruncatedHost},
		{"2001:db8:85a3::8a2e::", grammar.ErrTooManyDoubleColons},
		{"", grammar.ErrTooFewAddressParts},
		{":", grammar.ErrTruncatedHost},
		{"12345::1", grammar.ErrTooManyDigits},
		{"1:2:3:4:5:6:7", grammar.ErrTooFewAddressParts},
	}
	for _, c := range bad {
		err := grammar.ValidateIPv6Address(c.in)
		if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
			t.Errorf("grammar.ValidateIPv6Address(%q) = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
		}
	}
}
