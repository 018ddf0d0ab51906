package site

import (
	"regexp"
	"strings"
)

var externalProtocol = regexp.MustCompile(`(?i)^(https?:|mailto:|tel:|data:|blob:)`)

// NormalizeExternalURL trims v and prefixes https:// unless it already carries a
// known protocol or is site-relative. Empty input yields "".
func NormalizeExternalURL(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if externalProtocol.MatchString(v) || strings.HasPrefix(v, "/") {
		return v
	}
	return "https://" + v
}

// ResolveAssetURL prefixes relative asset paths with base.
func ResolveAssetURL(base, v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if externalProtocol.MatchString(v) || strings.HasPrefix(v, "/") {
		return v
	}
	return base + v
}

// SectionTarget reports the section id a CTA target points to, or false when the
// target is an external link.
func SectionTarget(target string) (string, bool) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", false
	}
	if strings.HasPrefix(target, "http") || strings.HasPrefix(target, "mailto:") || strings.HasPrefix(target, "tel:") {
		return "", false
	}
	return strings.TrimPrefix(target, "#"), true
}
