package render

import "strings"

// DeriveURL turns the literal text of a hyperlink-flagged object into an
// absolute URL, or returns "" when no link can be derived. Rules, first
// match wins: already absolute stays as-is, a www. prefix or a bare
// domain-looking token gets https prepended, a leading-slash path gets
// the site origin prepended. Everything else is not a link, flag or not.
func DeriveURL(text, origin string) string {
	s := strings.TrimSpace(text)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	if strings.HasPrefix(s, "www.") {
		return "https://" + s
	}
	if strings.HasPrefix(s, "/") {
		if origin == "" {
			return ""
		}
		return strings.TrimSuffix(origin, "/") + s
	}
	if looksLikeDomain(s) {
		return "https://" + s
	}
	return ""
}

// looksLikeDomain reports whether s is a single token with an interior
// dot, e.g. "example.com" or "example.com/page".
func looksLikeDomain(s string) bool {
	if strings.ContainsAny(s, " \t\n") {
		return false
	}
	host := s
	if i := strings.IndexByte(s, '/'); i >= 0 {
		host = s[:i]
	}
	dot := strings.IndexByte(host, '.')
	return dot > 0 && dot < len(host)-1
}
