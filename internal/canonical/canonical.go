// Package canonical is the URL canonicalization collaborator the engine
// depends on (spec §6): a pure function from a raw URL string and a
// keep-fragment flag to a canonical form, used to equate link variants
// that differ only in scheme, auth, www, trailing slash, query-parameter
// order, tracking parameters, percent-encoding, or Unicode form.
//
// Malformed input is returned unchanged — the engine itself guards
// whitespace-only input before ever calling this collaborator.
package canonical

import (
	"net/url"
	"sort"
	"strings"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/text/unicode/norm"
)

// Canonicalizer normalizes a URL to a canonical form for hashing and
// comparison. Implementations must be pure and total.
type Canonicalizer interface {
	Canonicalize(raw string, keepFragment bool) string
}

// DefaultTrackingParams is the default strip-parameter list: common
// analytics and session-tracking query keys that carry no identity
// information about the linked resource.
var DefaultTrackingParams = []string{
	"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content",
	"gclid", "gclsrc", "fbclid", "msclkid",
	"_ga", "_gid", "_gl",
	"ref", "ref_src", "ref_url", "source",
	"mc_cid", "mc_eid",
	"igshid", "si",
}

// Default is a DefaultCanonicalizer with the default tracking-parameter
// list, suitable for use wherever no policy override is configured.
var Default Canonicalizer = NewDefaultCanonicalizer(DefaultTrackingParams)

// DefaultCanonicalizer is the engine's concrete, runnable implementation
// of Canonicalizer. It strips scheme, basic-auth, a leading "www." label
// (only when doing so still leaves a registrable domain), trailing
// slashes, and a configurable tracking-parameter list; sorts remaining
// query parameters; normalizes percent-encoding via net/url's own
// escaping; and applies Unicode NFC to the result.
type DefaultCanonicalizer struct {
	stripParams map[string]struct{}
}

// NewDefaultCanonicalizer builds a canonicalizer that strips the given
// query parameters (case-sensitive, as they appear in the query string).
func NewDefaultCanonicalizer(stripParams []string) *DefaultCanonicalizer {
	set := make(map[string]struct{}, len(stripParams))
	for _, p := range stripParams {
		set[p] = struct{}{}
	}
	return &DefaultCanonicalizer{stripParams: set}
}

// Canonicalize implements Canonicalizer.
func (c *DefaultCanonicalizer) Canonicalize(raw string, keepFragment bool) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return raw
	}

	host := stripDefaultPort(strings.ToLower(parsed.Hostname()), parsed.Scheme)
	host = stripWWW(host)

	path := normalizePath(parsed.Path)

	out := &url.URL{
		Host: host,
		Path: path,
	}

	if parsed.RawQuery != "" {
		if q := c.normalizeQuery(parsed.RawQuery); q != "" {
			out.RawQuery = q
		}
	}

	if keepFragment && parsed.Fragment != "" {
		out.Fragment = parsed.Fragment
	}

	result := out.String()
	return norm.NFC.String(result)
}

func stripDefaultPort(host, scheme string) string {
	switch {
	case strings.EqualFold(scheme, "http") && strings.HasSuffix(host, ":80"):
		return strings.TrimSuffix(host, ":80")
	case strings.EqualFold(scheme, "https") && strings.HasSuffix(host, ":443"):
		return strings.TrimSuffix(host, ":443")
	default:
		return host
	}
}

// stripWWW removes a leading "www." label only when the remainder is
// still at least as specific as the host's registrable domain (eTLD+1) —
// it never strips "www." off a bare eTLD+1 like "www.co.uk" where "www"
// is load-bearing.
func stripWWW(host string) string {
	if !strings.HasPrefix(host, "www.") {
		return host
	}
	withoutWWW := strings.TrimPrefix(host, "www.")

	etld1, err := publicsuffix.EffectiveTLDPlusOne(withoutWWW)
	if err != nil {
		return host
	}
	if withoutWWW == etld1 || strings.HasSuffix(withoutWWW, "."+etld1) {
		return withoutWWW
	}
	return host
}

func normalizePath(path string) string {
	if path == "" || path == "/" {
		return "/"
	}

	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}

	segments := strings.Split(path, "/")
	resolved := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case ".":
			continue
		case "..":
			if len(resolved) > 0 {
				resolved = resolved[:len(resolved)-1]
			}
		default:
			resolved = append(resolved, seg)
		}
	}

	joined := strings.Join(resolved, "/")
	if len(joined) > 1 && strings.HasSuffix(joined, "/") {
		joined = strings.TrimSuffix(joined, "/")
	}
	if joined == "" {
		joined = "/"
	}
	return joined
}

func (c *DefaultCanonicalizer) normalizeQuery(rawQuery string) string {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return rawQuery
	}

	for param := range c.stripParams {
		values.Del(param)
	}
	if len(values) == 0 {
		return ""
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		vs := values[k]
		sort.Strings(vs)
		for _, v := range vs {
			parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(v))
		}
	}
	return strings.Join(parts, "&")
}
