package validation

import (
	"net/url"
	"regexp"
	"strings"
)

var schemePrefix = regexp.MustCompile(`^https?://`)

// IsValidHTTPURL reports whether s is an absolute http or https URL.
// Blank strings are accepted because every URL field except a resource's
// own url is optional.
func IsValidHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// CleanDuplicatedURL trims s and, when the field holds the same URL pasted
// twice (back to back or separated by whitespace), keeps a single copy. A URL
// that merely embeds another scheme, such as a Wayback link, is left alone.
func CleanDuplicatedURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if fields := strings.Fields(s); len(fields) == 2 && fields[0] == fields[1] {
		return fields[0]
	}
	if len(s)%2 == 0 {
		half := s[:len(s)/2]
		if half == s[len(s)/2:] && schemePrefix.MatchString(half) {
			return half
		}
	}
	return s
}
