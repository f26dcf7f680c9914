package service

import (
	"net/url"
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// HostContext carries the externally visible identity of this deployment for
// one request. It is used for self-reference rejection and for composing the
// short URL shown to the caller; only the slug is ever persisted.
type HostContext struct {
	Scheme string
	Host   string
}

// ShortURL composes the fully-qualified short URL for a slug.
func (h HostContext) ShortURL(slug string) string {
	return h.Scheme + "://" + h.Host + "/" + slug
}

// ValidateInput checks a creation request and returns the normalized slug.
// An empty result slug with a nil error means the caller wants one generated.
func ValidateInput(rawSlug string, rawTarget string, host HostContext) (string, error) {
	target := strings.TrimSpace(rawTarget)
	if target == "" {
		return "", ErrInvalidTarget
	}

	parsed, err := url.Parse(target)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return "", ErrInvalidTarget
	}

	// Substring containment on purpose: matches the historical behaviour,
	// alternate names or IP literals for the same service pass through.
	if host.Host != "" && strings.Contains(target, host.Host) {
		return "", ErrSelfReferential
	}

	slug := strings.TrimSpace(rawSlug)
	if slug == "" {
		return "", nil
	}

	if !slugPattern.MatchString(slug) {
		return "", ErrInvalidSlug
	}

	// Lowercased before the uniqueness check, so ABC and abc are one identity.
	return strings.ToLower(slug), nil
}
