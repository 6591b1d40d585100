// Package siteurl canonicalizes and classifies URLs relative to one site.
package siteurl

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	assetExtPattern = regexp.MustCompile(`(?i)\.(pdf|jpg|jpeg|png|gif|zip|doc|docx)$`)
	pageExtPattern  = regexp.MustCompile(`\.(php|html|htm)$`)
	slugCharPattern = regexp.MustCompile(`[^a-z0-9\-]+`)
	slugDashPattern = regexp.MustCompile(`-+`)
)

var skipHrefPrefixes = []string{"#", "javascript:", "mailto:", "tel:"}

// Site resolves and classifies URLs against a single base site.
type Site struct {
	base *url.URL
}

// New parses baseURL into a Site. The base must carry a host.
func New(baseURL string) (*Site, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base URL %q has no host", baseURL)
	}
	return &Site{base: u}, nil
}

// Base returns the base URL string.
func (s *Site) Base() string {
	return s.base.String()
}

// Host returns the registered site host.
func (s *Site) Host() string {
	return s.base.Host
}

// URL returns the parsed base URL.
func (s *Site) URL() *url.URL {
	return s.base
}

// IsInternal reports whether raw belongs to the site. A URL without a host
// component is a relative link and counts as internal; otherwise the host
// must match the site host exactly.
func (s *Site) IsInternal(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Host == "" {
		return true
	}
	return u.Host == s.base.Host
}

// Resolve joins href against the site base URL.
func (s *Site) Resolve(href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return s.base.ResolveReference(ref).String()
}

// Normalize strips the query string and fragment, and removes trailing
// slashes unless the path is the domain root. Idempotent.
func Normalize(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	clean := u.Scheme + "://" + u.Host + u.Path
	if len(u.Path) > 1 {
		clean = strings.TrimRight(clean, "/")
	}
	return clean
}

// IsAsset reports whether a cleaned URL points at a non-content file
// (PDFs, images, archives, office documents).
func IsAsset(clean string) bool {
	return assetExtPattern.MatchString(clean)
}

// SkippableHref reports whether href is an anchor, script, mail, or
// telephone link that never leads to a page.
func SkippableHref(href string) bool {
	for _, prefix := range skipHrefPrefixes {
		if strings.HasPrefix(href, prefix) {
			return true
		}
	}
	return false
}

// Slug derives a page slug from the URL path: the last non-extension
// segment, lower-cased, with non-alphanumeric runs collapsed to single
// hyphens. The root path yields "home".
func Slug(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "home"
	}
	path := strings.Trim(u.Path, "/")
	if path == "" {
		return "home"
	}
	path = pageExtPattern.ReplaceAllString(path, "")
	segments := strings.Split(path, "/")
	slug := strings.ToLower(segments[len(segments)-1])
	slug = slugCharPattern.ReplaceAllString(slug, "-")
	slug = slugDashPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "home"
	}
	return slug
}

// Path returns the URL path, or "/" when empty.
func Path(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" {
		return "/"
	}
	return u.Path
}
