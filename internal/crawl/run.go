package crawl

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/cms-site-parser/models"
	"github.com/dtnitsch/cms-site-parser/pkg/caching"
	"github.com/dtnitsch/cms-site-parser/pkg/chrome"
	"github.com/dtnitsch/cms-site-parser/pkg/classifier"
	"github.com/dtnitsch/cms-site-parser/pkg/contacts"
	"github.com/dtnitsch/cms-site-parser/pkg/db"
	"github.com/dtnitsch/cms-site-parser/pkg/dedup"
	"github.com/dtnitsch/cms-site-parser/pkg/fetcher"
	"github.com/dtnitsch/cms-site-parser/pkg/frontier"
	"github.com/dtnitsch/cms-site-parser/pkg/language"
	"github.com/dtnitsch/cms-site-parser/pkg/parser"
	"github.com/dtnitsch/cms-site-parser/pkg/siteurl"
)

// run executes one full crawl: discovery, home page globals, concurrent
// page fetching, and sequential duplicate-gated assembly. Pages appear in
// the output in sorted URL order, each distinct content body exactly once.
func run(logger *slog.Logger, config *models.CrawlConfig, site *siteurl.Site, database *db.DB) (*models.Website, *runStats, error) {
	f := fetcher.New(config.Timeout)
	if config.CacheDir != "" {
		cache, err := caching.NewCache(config.CacheDir, config.CacheTTL)
		if err != nil {
			logger.Warn("page cache unavailable, fetching everything", "error", err)
		} else {
			f = fetcher.NewCached(config.Timeout, cache)
		}
	}
	p := parser.New(site)
	stats := &runStats{}

	var runID int64
	if database != nil {
		id, err := database.InsertRun(site.Base())
		if err != nil {
			logger.Warn("journal disabled for this run", "error", err)
			database = nil
		} else {
			runID = id
		}
	}

	logger.Info("Starting page discovery", "base_url", site.Base())
	crawler := frontier.NewCrawler(site, f, logger)
	urls := crawler.DiscoverPages()
	stats.Discovered = len(urls)

	// The home page anchors the whole analysis. If it cannot be fetched
	// there is no site to describe.
	homeHTML, err := f.GetHTML(site.Base())
	if err != nil {
		return nil, stats, fmt.Errorf("failed to fetch home page %s: %w", site.Base(), err)
	}
	homeDoc, err := goquery.NewDocumentFromReader(strings.NewReader(homeHTML))
	if err != nil {
		return nil, stats, fmt.Errorf("failed to parse home page: %w", err)
	}

	extractor := chrome.NewExtractor(site, contacts.RegexExtractor{})
	name, description := extractor.Metadata(homeDoc, homeHTML)
	website := &models.Website{
		Name:        name,
		URL:         site.Base(),
		Description: description,
		GlobalComponents: models.GlobalComponents{
			Header: extractor.Header(homeDoc),
			Footer: extractor.Footer(homeDoc),
		},
		Pages: []models.Page{},
	}

	detector := language.NewDetector()
	bodyText := classifier.VisibleText(homeDoc.Find("body"))
	if code, confidence := detector.Detect(bodyText); code != "" {
		stats.Language = code
		stats.Confidence = confidence
		logger.Info("Detected site language", "language", code, "confidence", fmt.Sprintf("%.2f", confidence))
	}

	results := fetchPages(logger, f, p, urls, config.WorkerCount)

	// Duplicate gating is order-sensitive: results are re-walked in the
	// sorted discovery order so the first URL owning a content body wins,
	// no matter how the workers interleaved.
	seen := dedup.NewDetector()
	for _, r := range results {
		if r.Error != nil {
			stats.Failed++
			logger.Warn("Skipping failed page", "url", r.URL, "error", r.Error)
			journalPage(logger, database, runID, r.URL, db.StatusFailed, "", "", 0)
			continue
		}
		if seen.SeenBefore(r.Result.Fingerprint) {
			stats.Duplicates++
			logger.Info("Skipping duplicate page", "url", r.URL)
			journalPage(logger, database, runID, r.URL, db.StatusDuplicate, string(r.Result.Fingerprint), "", 0)
			continue
		}
		stats.Parsed++
		page := r.Result.Page
		website.Pages = append(website.Pages, page)
		journalPage(logger, database, runID, r.URL, db.StatusParsed, string(r.Result.Fingerprint), page.Slug, len(page.Components))
	}

	if database != nil {
		if err := database.FinishRun(runID, stats.Discovered, stats.Parsed, stats.Duplicates, stats.Failed, stats.Language); err != nil {
			logger.Warn("failed to finalize journal run", "error", err)
		}
	}

	logger.Info("Crawl complete",
		"discovered", stats.Discovered, "parsed", stats.Parsed,
		"duplicates", stats.Duplicates, "failed", stats.Failed)
	return website, stats, nil
}

// fetchPages runs the fetch+parse phase across a worker pool and returns
// the results realigned to the input order.
func fetchPages(logger *slog.Logger, f *fetcher.Fetcher, p *parser.Parser, urls []string, workerCount int) []pageResult {
	if workerCount < 1 {
		workerCount = 1
	}
	logger.Info("Starting concurrent fetch phase", "url_count", len(urls), "workers", workerCount)

	var wg sync.WaitGroup
	jobs := make(chan pageJob, len(urls))
	results := make(chan pageResult, len(urls))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(w, logger, f, p, &wg, jobs, results)
	}

	for i, url := range urls {
		jobs <- pageJob{Index: i, URL: url}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All fetch workers finished")

	ordered := make([]pageResult, 0, len(urls))
	for r := range results {
		ordered = append(ordered, r)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Index < ordered[j].Index
	})
	return ordered
}

func worker(id int, logger *slog.Logger, f *fetcher.Fetcher, p *parser.Parser, wg *sync.WaitGroup, jobs <-chan pageJob, results chan<- pageResult) {
	defer wg.Done()
	for job := range jobs {
		doc, err := f.GetDocument(job.URL)
		if err != nil {
			logger.Warn("Error fetching page", "worker_id", id, "url", job.URL, "error", err)
			results <- pageResult{Index: job.Index, URL: job.URL, Error: err}
			continue
		}
		result := p.Parse(parser.Request{URL: job.URL, Doc: doc})
		logger.Info("Parsed page", "worker_id", id, "url", job.URL, "slug", result.Page.Slug, "components", len(result.Page.Components))
		results <- pageResult{Index: job.Index, URL: job.URL, Result: &result}
	}
}

// journalPage is best-effort: a journal write never fails the crawl.
func journalPage(logger *slog.Logger, database *db.DB, runID int64, url, status, hash, slug string, componentCount int) {
	if database == nil {
		return
	}
	if err := database.InsertPage(runID, url, status, hash, slug, componentCount); err != nil {
		logger.Warn("failed to journal page", "url", url, "error", err)
	}
}
