// Package common holds input cleanup shared by the CLI commands.
package common

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)

// SanitizeBaseURL performs basic cleanup on a pasted base URL: trims
// whitespace and stray punctuation, unwraps markdown links, defaults the
// scheme to https, and drops any trailing slash so path handling starts
// from a known shape.
func SanitizeBaseURL(rawURL string) (string, error) {
	cleaned := strings.TrimSpace(rawURL)

	// Extract URL from markdown link format: [text](url) -> url
	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	// Common trailing punctuation from copy-paste
	trailingChars := []string{",", ".", ")", "}", "]", "\"", "'", ">", ";"}
	for _, char := range trailingChars {
		cleaned = strings.TrimSuffix(cleaned, char)
	}
	leadingChars := []string{"(", "[", "<", "\"", "'"}
	for _, char := range leadingChars {
		cleaned = strings.TrimPrefix(cleaned, char)
	}
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return "", fmt.Errorf("empty URL")
	}
	if strings.Contains(cleaned, " ") {
		return "", fmt.Errorf("URL %q contains a literal space, encode it as %%20", rawURL)
	}

	if !strings.HasPrefix(cleaned, "http://") && !strings.HasPrefix(cleaned, "https://") {
		cleaned = "https://" + cleaned
	}
	cleaned = strings.TrimRight(cleaned, "/")

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("URL %q has no host", rawURL)
	}
	if strings.ContainsAny(parsed.Host, "{}[]<>\"'") {
		return "", fmt.Errorf("URL %q has a malformed host", rawURL)
	}

	return cleaned, nil
}
