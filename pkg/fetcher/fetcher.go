// Package fetcher wraps the HTTP transport used for all site requests.
package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/cms-site-parser/pkg/caching"
	"golang.org/x/net/html/charset"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

type Fetcher struct {
	client *http.Client
	cache  *caching.Cache
}

// New builds a Fetcher with a per-request timeout. A timed-out or failed
// request is reported as an error and treated by callers as "no content".
func New(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// NewCached builds a Fetcher that consults a page cache before the
// network. Only successful HTML bodies are cached.
func NewCached(timeout time.Duration, cache *caching.Cache) *Fetcher {
	f := New(timeout)
	f.cache = cache
	return f
}

// GetDocument fetches url and parses the response body as HTML.
func (f *Fetcher) GetDocument(url string) (*goquery.Document, error) {
	body, err := f.GetHTML(url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// GetHTML fetches url and returns the decoded body. Only 200 responses
// with a text/html content type qualify; anything else is an error.
func (f *Fetcher) GetHTML(url string) (string, error) {
	if f.cache != nil {
		if body, ok := f.cache.Get(url); ok {
			return string(body), nil
		}
	}

	body, err := f.fetchHTML(url)
	if err != nil {
		return "", err
	}
	if f.cache != nil {
		// A failed cache write is not a failed fetch.
		_ = f.cache.Set(url, []byte(body))
	}
	return body, nil
}

func (f *Fetcher) fetchHTML(url string) (string, error) {
	resp, err := f.get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "text/html") {
		return "", fmt.Errorf("not an HTML response: %q", contentType)
	}

	reader, err := charset.NewReader(resp.Body, contentType)
	if err != nil {
		reader = resp.Body
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}

// GetBytes fetches url without requiring an HTML content type. Used for
// sitemap probing.
func (f *Fetcher) GetBytes(url string) ([]byte, error) {
	resp, err := f.get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

func (f *Fetcher) get(url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp, nil
}
