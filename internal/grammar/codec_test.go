package grammar_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/gouri/internal/grammar"
)

func TestDecodeElement(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		allowed grammar.CharSet
		want    string
		wantErr error
	}{
		{name: "plain", in: "abc", allowed: grammar.PCharNotPctEncoded, want: "abc"},
		{name: "empty", in: "", allowed: grammar.PCharNotPctEncoded, want: ""},
		{name: "upper-case escape", in: "%41", allowed: grammar.PCharNotPctEncoded, want: "A"},
		{name: "lower-case escape", in: "%4a", allowed: grammar.PCharNotPctEncoded, want: "J"},
		{name: "mixed text and escapes", in: "hello,%20w%6Frld", allowed: grammar.PCharNotPctEncoded, want: "hello, world"},
		{name: "non-ASCII byte", in: "%bc", allowed: grammar.PCharNotPctEncoded, want: "\xBC"},
		{name: "disallowed character", in: "a[b", allowed: grammar.PCharNotPctEncoded, wantErr: grammar.ErrIllegalCharacter},
		{name: "bad escape digit", in: "%4x", allowed: grammar.PCharNotPctEncoded, wantErr: grammar.ErrIllegalPercentEncoding},
		{name: "truncated escape", in: "abc%4", allowed: grammar.PCharNotPctEncoded, wantErr: grammar.ErrIllegalPercentEncoding},
		{name: "lone percent", in: "%", allowed: grammar.PCharNotPctEncoded, wantErr: grammar.ErrIllegalPercentEncoding},
		{name: "query class", in: "a%20b", allowed: grammar.QueryOrFragmentNotPctEncoded, want: "a b"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := grammar.DecodeElement(c.in, c.allowed, grammar.CtxPath)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("grammar.DecodeElement(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if c.wantErr != nil {
				return
			}
			if got != c.want {
				t.Errorf("grammar.DecodeElement(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestEncodeElement(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		allowed grammar.CharSet
		want    string
	}{
		{name: "plain", in: "abc", allowed: grammar.PCharNotPctEncoded, want: "abc"},
		{name: "space", in: "a b", allowed: grammar.PCharNotPctEncoded, want: "a%20b"},
		{name: "upper-hex digits", in: "\xBC", allowed: grammar.PCharNotPctEncoded, want: "%BC"},
		{name: "plus in query", in: "foo+bar", allowed: grammar.QueryNotPctEncodedWithoutPlus, want: "foo%2Bbar"},
		{name: "plus in fragment kept", in: "foo+bar", allowed: grammar.QueryOrFragmentNotPctEncoded, want: "foo+bar"},
		{name: "UTF-8 bytes", in: "ሴ", allowed: grammar.RegNameNotPctEncoded, want: "%E1%88%B4"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := grammar.EncodeElement(c.in, c.allowed); got != c.want {
				t.Errorf("grammar.EncodeElement(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestPctDecoder(t *testing.T) {
	t.Parallel()

	dec := grammar.NewPctDecoder()
	if _, done, err := dec.Next('4'); err != nil || done {
		t.Fatalf("dec.Next('4') = _, %v, %v, want false, nil", done, err)
	}
	b, done, err := dec.Next('1')
	if err != nil || !done || b != 'A' {
		t.Fatalf("dec.Next('1') = %q, %v, %v, want 'A', true, nil", b, done, err)
	}

	dec = grammar.NewPctDecoder()
	if _, _, err := dec.Next('x'); err == nil {
		t.Fatal("dec.Next('x') error = nil, want non-nil")
	}
}
