// Package frontier discovers the crawlable page set for one site via
// sitemap seeding and breadth-first link traversal.
package frontier

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/cms-site-parser/pkg/siteurl"
)

// Fetcher is the transport collaborator used during discovery.
type Fetcher interface {
	GetDocument(url string) (*goquery.Document, error)
	GetBytes(url string) ([]byte, error)
}

// State tracks discovered, queued, and visited URLs for one run.
// Invariants: a URL enters the queue at most once, and the discovered set
// always contains both the queued and the visited URLs.
type State struct {
	mu         sync.Mutex
	discovered map[string]struct{}
	queue      []string
	visited    map[string]struct{}
}

func NewState() *State {
	return &State{
		discovered: make(map[string]struct{}),
		visited:    make(map[string]struct{}),
	}
}

// Add records url as discovered and queues it unless it was seen before.
func (s *State) Add(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.discovered[url]; ok {
		return false
	}
	s.discovered[url] = struct{}{}
	s.queue = append(s.queue, url)
	return true
}

// Pop removes and returns the head of the pending queue.
func (s *State) Pop() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return "", false
	}
	url := s.queue[0]
	s.queue = s.queue[1:]
	return url, true
}

// MarkVisited records that url was successfully fetched.
func (s *State) MarkVisited(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visited[url] = struct{}{}
}

// Visited reports whether url was already fetched.
func (s *State) Visited(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.visited[url]
	return ok
}

// DiscoveredCount returns the size of the discovered set.
func (s *State) DiscoveredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.discovered)
}

// VisitedCount returns the number of fetched URLs.
func (s *State) VisitedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visited)
}

// Discovered returns every discovered URL, sorted.
func (s *State) Discovered() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	urls := make([]string, 0, len(s.discovered))
	for u := range s.discovered {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}

// Crawler walks a site's internal link graph.
type Crawler struct {
	site    *siteurl.Site
	fetcher Fetcher
	logger  *slog.Logger
}

func NewCrawler(site *siteurl.Site, fetcher Fetcher, logger *slog.Logger) *Crawler {
	return &Crawler{site: site, fetcher: fetcher, logger: logger}
}

// DiscoverPages returns every internal content URL reachable from the
// sitemap seeds and breadth-first link traversal, sorted. A fetch failure
// skips that URL and never aborts the traversal; termination is bounded by
// the number of distinct internal URLs since the discovered set only grows
// and each URL is queued once.
func (c *Crawler) DiscoverPages() []string {
	state := NewState()

	seeds := c.sitemapURLs()
	for _, u := range seeds {
		state.Add(u)
	}
	// The base URL is always seeded, even when absent from every sitemap.
	state.Add(siteurl.Normalize(c.site.Base()))
	c.logger.Info("sitemap discovery complete", "seed_count", len(seeds))

	for {
		url, ok := state.Pop()
		if !ok {
			break
		}
		if state.Visited(url) {
			continue
		}

		doc, err := c.fetcher.GetDocument(url)
		if err != nil {
			c.logger.Warn("skipping unreachable page", "url", url, "error", err)
			continue
		}
		state.MarkVisited(url)

		for _, link := range c.pageLinks(doc) {
			state.Add(link)
		}
	}

	c.logger.Info("link traversal complete",
		"discovered", state.DiscoveredCount(), "visited", state.VisitedCount())
	return state.Discovered()
}

// sitemapURLs probes the conventional sitemap paths in a fixed order and
// collects every <loc> entry, normalized.
func (c *Crawler) sitemapURLs() []string {
	var urls []string
	for _, path := range sitemapPaths {
		data, err := c.fetcher.GetBytes(c.site.Base() + path)
		if err != nil {
			continue
		}
		locs := parseLocs(data)
		if len(locs) == 0 {
			continue
		}
		for _, loc := range locs {
			urls = append(urls, siteurl.Normalize(loc))
		}
	}
	return urls
}

// pageLinks extracts every internal, non-asset anchor target, normalized.
func (c *Crawler) pageLinks(doc *goquery.Document) []string {
	var links []string
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if siteurl.SkippableHref(href) {
			return
		}
		absolute := c.site.Resolve(href)
		if absolute == "" || !c.site.IsInternal(absolute) {
			return
		}
		clean := siteurl.Normalize(absolute)
		if siteurl.IsAsset(clean) {
			return
		}
		links = append(links, clean)
	})
	return links
}
