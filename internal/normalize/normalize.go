// Package normalize implements the engine's field normalizers: pure,
// total functions from optional raw strings to optional canonical
// strings. Every normalizer here returns absent (nil) for whitespace-only
// input, and never panics on malformed input — that is the canonicalizer
// collaborator's contract too (spec §4.1, §6).
package normalize

import (
	"regexp"
	"strings"

	"github.com/feedlattice/classify/internal/canonical"
	"github.com/feedlattice/classify/internal/model"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

func trimmedOrNil(raw *string) (string, bool) {
	if raw == nil {
		return "", false
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}

func isHTTPURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func ptr(s string) *string { return &s }

// Link normalizes a link field with the fragment stripped (spec §4.1).
func Link(raw *string, c canonical.Canonicalizer) *string {
	trimmed, ok := trimmedOrNil(raw)
	if !ok {
		return nil
	}
	canonicalized := c.Canonicalize(trimmed, false)
	if canonicalized == "" {
		return nil
	}
	return ptr(canonicalized)
}

// LinkWithFragment normalizes a link field preserving the fragment.
func LinkWithFragment(raw *string, c canonical.Canonicalizer) *string {
	trimmed, ok := trimmedOrNil(raw)
	if !ok {
		return nil
	}
	canonicalized := c.Canonicalize(trimmed, true)
	if canonicalized == "" {
		return nil
	}
	return ptr(canonicalized)
}

// LinkFragment returns the fragment-preserving normalization only when the
// raw value actually contains a fragment; absent otherwise. Two items
// sharing a link but differing only in fragment get distinct linkFragment
// hashes, which is what lets the match selector and depth resolver treat
// "#s1" and "#s2" as different identities at the linkFragment rung.
func LinkFragment(raw *string, c canonical.Canonicalizer) *string {
	trimmed, ok := trimmedOrNil(raw)
	if !ok {
		return nil
	}
	if !strings.Contains(trimmed, "#") {
		return nil
	}
	return LinkWithFragment(&trimmed, c)
}

// Guid normalizes a GUID field. URL-shaped GUIDs delegate to the link
// normalizer; anything else is used as-is once trimmed.
func Guid(raw *string, c canonical.Canonicalizer) *string {
	trimmed, ok := trimmedOrNil(raw)
	if !ok {
		return nil
	}
	if isHTTPURL(trimmed) {
		if normalized := Link(&trimmed, c); normalized != nil {
			return normalized
		}
		return ptr(trimmed)
	}
	return ptr(trimmed)
}

// GuidFragment is absent unless the GUID is a URL containing a fragment,
// in which case it is the fragment-preserving normalization of that URL.
func GuidFragment(raw *string, c canonical.Canonicalizer) *string {
	trimmed, ok := trimmedOrNil(raw)
	if !ok {
		return nil
	}
	if !isHTTPURL(trimmed) || !strings.Contains(trimmed, "#") {
		return nil
	}
	return LinkWithFragment(&trimmed, c)
}

// Text normalizes title-like fields: trim, collapse whitespace runs to a
// single space, lowercase.
func Text(raw *string) *string {
	trimmed, ok := trimmedOrNil(raw)
	if !ok {
		return nil
	}
	collapsed := whitespaceRun.ReplaceAllString(trimmed, " ")
	return ptr(strings.ToLower(collapsed))
}

// HTML normalizes summary/content fields. It is currently identical to
// Text — a true tag-stripping pass is an open question (spec §9), not
// implemented here; callers should not assume markup is removed.
func HTML(raw *string) *string {
	return Text(raw)
}

// Enclosure selects the item's canonical enclosure and normalizes its URL
// like a link. Among the input sequence: prefer the first entry with
// IsDefault set and a non-empty URL; failing that, the first entry with
// any non-empty URL. Absent if no usable URL exists.
func Enclosure(encs []model.Enclosure, c canonical.Canonicalizer) *string {
	var fallback *string
	for _, e := range encs {
		if e.URL == "" {
			continue
		}
		if e.IsDefault {
			url := e.URL
			return Link(&url, c)
		}
		if fallback == nil {
			url := e.URL
			fallback = &url
		}
	}
	if fallback == nil {
		return nil
	}
	return Link(fallback, c)
}
