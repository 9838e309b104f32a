package grammar_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/gouri/internal/grammar"
)

func TestValidateIPv4Address(t *testing.T) {
	t.Parallel()

	good := []string{
		"0.0.0.0",
		"1.2.3.4",
		"255.255.255.255",
		"10.0.255.1",
	}
	for _, in := range good {
		if err := grammar.ValidateIPv4Address(in); err != nil {
			t.Errorf("grammar.ValidateIPv4Address(%q) = %v, want nil", in, err)
		}
	}

	bad := []struct {
		in      string
		wantErr error
	}{
		{"", grammar.ErrTruncatedHost},
		{"1.2.3", grammar.ErrTooFewAddressParts},
		{"1.2.3.", grammar.ErrTruncatedHost},
		{"1.2.3.4.5", grammar.ErrTooManyAddressParts},
		{"1.2.3.256", grammar.ErrInvalidDecimalOctet},
		{"1.2.x.4", grammar.ErrIllegalCharacter},
		{"1.2.3.-4", grammar.ErrIllegalCharacter},
		{"1.2.3. 4", grammar.ErrIllegalCharacter},
		{"1.2.3.4 ", grammar.ErrIllegalCharacter},
	}
	for _, c := range bad {
		err := grammar.ValidateIPv4Address(c.in)
		if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
			t.Errorf("grammar.ValidateIPv4Address(%q) = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
		}
	}
}
