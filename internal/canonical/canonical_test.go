package canonical

import (
	"strings"
	"testing"
)

func TestCanonicalize_StripsTrackingParamsAndWWW(t *testing.T) {
	c := NewDefaultCanonicalizer(DefaultTrackingParams)

	a := c.Canonicalize("https://www.example.com/post?utm_source=x&id=1", false)
	b := c.Canonicalize("https://example.com/post?id=1", false)

	if a != b {
		t.Errorf("Canonicalize() = %q, want equal to %q", a, b)
	}
}

func TestCanonicalize_SortsQueryParams(t *testing.T) {
	c := NewDefaultCanonicalizer(nil)

	a := c.Canonicalize("https://example.com/p?b=2&a=1", false)
	b := c.Canonicalize("https://example.com/p?a=1&b=2", false)

	if a != b {
		t.Errorf("Canonicalize() = %q, want equal to %q", a, b)
	}
}

func TestCanonicalize_StripsTrailingSlash(t *testing.T) {
	c := NewDefaultCanonicalizer(nil)

	a := c.Canonicalize("https://example.com/post/", false)
	b := c.Canonicalize("https://example.com/post", false)

	if a != b {
		t.Errorf("Canonicalize() = %q, want equal to %q", a, b)
	}
}

func TestCanonicalize_KeepFragment(t *testing.T) {
	c := NewDefaultCanonicalizer(nil)

	withFrag := c.Canonicalize("https://example.com/p#s1", true)
	withoutFrag := c.Canonicalize("https://example.com/p#s1", false)

	if withFrag == withoutFrag {
		t.Error("Canonicalize() keepFragment=true and false produced equal output")
	}
}

func TestCanonicalize_WWWNotStrippedOffBareETLDPlusOne(t *testing.T) {
	c := NewDefaultCanonicalizer(nil)

	// "co.uk" is a public suffix, so "www.co.uk" has no label below the
	// eTLD+1 boundary once "www." is removed; stripWWW must leave it alone
	// rather than strip to a bare public suffix.
	got := c.Canonicalize("https://www.co.uk/p", false)
	if got == "" {
		t.Fatal("Canonicalize() returned empty")
	}
	if !strings.Contains(got, "www.co.uk") {
		t.Errorf("Canonicalize() = %q, want host www.co.uk kept", got)
	}
}

func TestCanonicalize_MalformedInputReturnedUnchanged(t *testing.T) {
	c := NewDefaultCanonicalizer(nil)
	raw := "http://%zz"
	got := c.Canonicalize(raw, false)
	if got != raw {
		t.Errorf("Canonicalize() = %q, want unchanged %q", got, raw)
	}
}
