package utils

import (
	"net/url"
	"regexp"
	"strings"
)

var instagramPostIDPattern = regexp.MustCompile(`/p/([a-zA-Z0-9_-]+)`)

// IsValidURL reports whether raw parses as an absolute URL
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// IsValidInstagramURL reports whether raw is a well-formed URL referencing
// the instagram.com domain
func IsValidInstagramURL(raw string) bool {
	return IsValidURL(raw) && strings.Contains(raw, "instagram.com")
}

// ExtractInstagramPostID extracts the post ID from an Instagram post URL,
// e.g. https://www.instagram.com/p/CoU5jX/ -> CoU5jX. Returns an empty
// string when the URL has no /p/<id> segment.
func ExtractInstagramPostID(raw string) string {
	match := instagramPostIDPattern.FindStringSubmatch(raw)
	if match == nil {
		return ""
	}
	return match[1]
}
