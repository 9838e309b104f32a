package uri_test

import (
	"testing"

	uri "github.com/ghettovoice/gouri"
)

func TestURI_Resolve(t *testing.T) {
	t.Parallel()

	cases := []struct {
		base   string
		ref    string
		target string
	}{
		// Section 5.4.1 of RFC 3986.
		{"http://a/b/c/d;p?q", "g:h", "g:h"},
		{"http://a/b/c/d;p?q", "g", "http://a/b/c/g"},
		{"http://a/b/c/d;p?q", "./g", "http://a/b/c/g"},
		{"http://a/b/c/d;p?q", "g/", "http://a/b/c/g/"},
		{"http://a/b/c/d;p?q", "//g", "http://g"},
		{"http://a/b/c/d;p?q", "?y", "http://a/b/c/d;p?y"},
		{"http://a/b/c/d;p?q", "g?y", "http://a/b/c/g?y"},
		{"http://a/b/c/d;p?q", "#s", "http://a/b/c/d;p?q#s"},
		{"http://a/b/c/d;p?q", "g#s", "http://a/b/c/g#s"},
		{"http://a/b/c/d;p?q", "g?y#s", "http://a/b/c/g?y#s"},
		{"http://a/b/c/d;p?q", ";x", "http://a/b/c/;x"},
		{"http://a/b/c/d;p?q", "g;x", "http://a/b/c/g;x"},
		{"http://a/b/c/d;p?q", "g;x?y#s", "http://a/b/c/g;x?y#s"},
		{"http://a/b/c/d;p?q", "", "http://a/b/c/d;p?q"},
		{"http://a/b/c/d;p?q", ".", "http://a/b/c/"},
		{"http://a/b/c/d;p?q", "./", "http://a/b/c/"},
		{"http://a/b/c/d;p?q", "..", "http://a/b/"},
		{"http://a/b/c/d;p?q", "../", "http://a/b/"},
		{"http://a/b/c/d;p?q", "../g", "http://a/b/g"},
		{"http://a/b/c/d;p?q", "../..", "http://a"},
		{"http://a/b/c/d;p?q", "../../", "http://a"},
		{"http://a/b/c/d;p?q", "../../g", "http://a/g"},

		// Extra vectors beyond the RFC table.
		{"http://example.com", "foo", "http://example.com/foo"},
		{"http://example.com/", "foo", "http://example.com/foo"},
		{"http://example.com", "foo/", "http://example.com/foo/"},
		{"http://example.com/", "foo/", "http://example.com/foo/"},
		{"http://example.com", "/foo", "http://example.com/foo"},
		{"http://example.com/", "/foo", "http://example.com/foo"},
		{"http://example.com", "/foo/", "http://example.com/foo/"},
		{"http://example.com/", "/foo/", "http://example.com/foo/"},
		{"http://example.com/", "?foo", "http://example.com/?foo"},
		{"http://example.com/", "#foo", "http://example.com/#foo"},
	}

	for _, c := range cases {
		t.Run(c.base+" + "+c.ref, func(t *testing.T) {
			t.Parallel()

			base, err := uri.Parse(c.base)
			if err != nil {
				t.Fatalf("uri.Parse(%q) error = %v, want nil", c.base, err)
			}
			ref, err := uri.Parse(c.ref)
			if err != nil {
				t.Fatalf("uri.Parse(%q) error = %v, want nil", c.ref, err)
			}
			want, err := uri.Parse(c.target)
			if err != nil {
				t.Fatalf("uri.Parse(%q) error = %v, want nil", c.target, err)
			}

			got := base.Resolve(ref)
			if !got.Equal(want) {
				t.Errorf("uri.Parse(%q).Resolve(%q) = %q, want %q", c.base, c.ref, got, want)
			}
		})
	}
}

func TestURI_Resolve_DoesNotMutate(t *testing.T) {
	t.Parallel()

	base, err := uri.Parse("http://a/b/c/d;p?q")
	if err != nil {
		t.Fatal(err)
	}
	ref, err := uri.Parse("../../g")
	if err != nil {
		t.Fatal(err)
	}
	baseBefore, refBefore := base.String(), ref.String()

	base.Resolve(ref)
	if got := base.String(); got != baseBefore {
		t.Errorf("base changed from %q to %q", baseBefore, got)
	}
	if got := ref.String(); got != refBefore {
		t.Errorf("reference changed from %q to %q", refBefore, got)
	}
}
