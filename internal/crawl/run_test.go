package crawl

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dtnitsch/cms-site-parser/models"
	"github.com/dtnitsch/cms-site-parser/pkg/siteurl"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const homeHTML = `<html>
<head>
	<title>Acme Corp - Industrial Solutions</title>
	<meta name="description" content="Acme builds industrial machinery.">
</head>
<body>
	<header>
		<img src="/logo.png" alt="Acme">
		<nav><a href="/">Home</a><a href="/about">About Us</a></nav>
	</header>
	<main>
		<div class="hero"><h1>Welcome to Acme</h1><p>Machinery and spare parts for every industry sector.</p></div>
		<a href="/about">Read more about us</a>
	</main>
	<footer>
		<a href="/terms">Terms</a>
		<a href="https://facebook.com/acme">Facebook</a>
	</footer>
</body>
</html>`

const aboutHTML = `<html>
<head><title>About - Acme Corp</title></head>
<body>
	<main>
		<section><h2>Who We Are</h2><p>Acme has been manufacturing machinery for over forty years, serving customers in more than twenty countries worldwide.</p></section>
	</main>
</body>
</html>`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	serve := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, body)
		}
	}

	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprintf(w, `<urlset><url><loc>%s/about</loc></url><url><loc>%s/about-copy</loc></url></urlset>`,
			server.URL, server.URL)
	})
	mux.HandleFunc("/", serve(homeHTML))
	mux.HandleFunc("/about", serve(aboutHTML))
	// Same body as /about, so it must be dropped as a duplicate.
	mux.HandleFunc("/about-copy", serve(aboutHTML))
	mux.HandleFunc("/terms", serve(`<html><head><title>Terms</title></head><body><main>
		<section><h2>Terms of Use</h2><p>These terms govern the use of this website and all of the materials published on it by Acme.</p></section>
	</main></body></html>`))
	return server
}

func TestRun(t *testing.T) {
	server := newTestServer(t)

	site, err := siteurl.New(server.URL)
	if err != nil {
		t.Fatalf("failed to build site: %v", err)
	}
	config := &models.CrawlConfig{
		BaseURL:     server.URL,
		Timeout:     5 * time.Second,
		WorkerCount: 2,
		Format:      "json",
	}

	website, stats, err := run(testLogger(), config, site, nil)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if website.Name != "Acme Corp" {
		t.Errorf("Name = %q, want Acme Corp", website.Name)
	}
	if website.Description != "Acme builds industrial machinery." {
		t.Errorf("Description = %q", website.Description)
	}
	if website.URL != server.URL {
		t.Errorf("URL = %q, want %q", website.URL, server.URL)
	}

	if website.GlobalComponents.Header.Logo != "Acme" {
		t.Errorf("Header.Logo = %q", website.GlobalComponents.Header.Logo)
	}
	wantNav := []string{"Home", "About Us"}
	if len(website.GlobalComponents.Header.Navigation) != len(wantNav) ||
		website.GlobalComponents.Header.Navigation[0] != wantNav[0] ||
		website.GlobalComponents.Header.Navigation[1] != wantNav[1] {
		t.Errorf("Navigation = %v, want %v", website.GlobalComponents.Header.Navigation, wantNav)
	}
	if len(website.GlobalComponents.Footer.SocialLinks) != 1 ||
		website.GlobalComponents.Footer.SocialLinks[0] != "facebook" {
		t.Errorf("SocialLinks = %v", website.GlobalComponents.Footer.SocialLinks)
	}

	// Two duplicates: about-copy mirrors about, and the root is discovered
	// under both its bare and its trailing-slash spelling.
	if stats.Duplicates != 2 {
		t.Errorf("Duplicates = %d, want 2", stats.Duplicates)
	}
	if stats.Failed != 0 {
		t.Errorf("Failed = %d, want 0", stats.Failed)
	}
	if stats.Language != "en" {
		t.Errorf("Language = %q, want en", stats.Language)
	}

	slugs := make(map[string]models.Page)
	for _, page := range website.Pages {
		slugs[page.Slug] = page
	}
	if _, ok := slugs["home"]; !ok {
		t.Errorf("missing home page, got pages %v", pageSlugs(website.Pages))
	}
	about, ok := slugs["about"]
	if !ok {
		t.Fatalf("missing about page, got pages %v", pageSlugs(website.Pages))
	}
	if _, dup := slugs["about-copy"]; dup {
		t.Error("duplicate page about-copy survived dedup")
	}

	if len(about.Components) == 0 {
		t.Fatal("about page has no components")
	}
	if about.Components[0].Type != models.ComponentRichText {
		t.Errorf("about component = %s, want rich_text", about.Components[0].Type)
	}
	if about.Components[0].Heading != "Who We Are" {
		t.Errorf("about heading = %q", about.Components[0].Heading)
	}
}

func pageSlugs(pages []models.Page) []string {
	slugs := make([]string, len(pages))
	for i, p := range pages {
		slugs[i] = p.Slug
	}
	return slugs
}

func TestRunHomePageFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	site, err := siteurl.New(server.URL)
	if err != nil {
		t.Fatalf("failed to build site: %v", err)
	}
	config := &models.CrawlConfig{
		BaseURL:     server.URL,
		Timeout:     2 * time.Second,
		WorkerCount: 1,
	}

	if _, _, err := run(testLogger(), config, site, nil); err == nil {
		t.Error("run() succeeded with unreachable home page")
	}
}
