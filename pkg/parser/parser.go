// Package parser turns one fetched page into its structured representation:
// a slug, a typed component list, and categorized outbound links.
package parser

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/cms-site-parser/models"
	"github.com/dtnitsch/cms-site-parser/pkg/classifier"
	"github.com/dtnitsch/cms-site-parser/pkg/dedup"
	"github.com/dtnitsch/cms-site-parser/pkg/siteurl"
)

const (
	maxSectionCandidates = 10
	maxHeadingFallbacks  = 5
	maxInternalLinks     = 20
	maxExternalLinks     = 10
	fallbackTextMinLen   = 50
	fallbackTextMaxLen   = 600
)

var (
	heroCandidatePattern = regexp.MustCompile(`(?i)hero|banner|slider|jumbotron|intro`)
	mainRegionPattern    = regexp.MustCompile(`(?i)content|main`)
	sectionClassPattern  = regexp.MustCompile(`(?i)section|block|component|paragraph|content-block|region`)
)

// Parser assembles pages for a single site.
type Parser struct {
	site *siteurl.Site
}

func New(site *siteurl.Site) *Parser {
	return &Parser{site: site}
}

// Request is one page to parse.
type Request struct {
	URL string
	Doc *goquery.Document
}

// Result pairs a parsed page with its content fingerprint. The caller
// decides whether the fingerprint has been seen before; the parser itself
// is stateless.
type Result struct {
	Page        models.Page
	Fingerprint dedup.Fingerprint
}

// Parse assembles the page: identity from the URL, components from the main
// content region, links from the whole document minus chrome.
func (p *Parser) Parse(req Request) Result {
	doc := req.Doc

	region := doc.Find("main").First()
	if region.Length() == 0 {
		region = doc.Find("body").First()
	}
	fingerprint := dedup.FingerprintText(region.Text())

	page := models.Page{
		Slug:       siteurl.Slug(req.URL),
		Title:      strings.TrimSpace(doc.Find("title").First().Text()),
		Path:       siteurl.Path(req.URL),
		Components: p.components(doc),
		Links:      p.links(doc),
	}
	return Result{Page: page, Fingerprint: fingerprint}
}

// mainRegion locates the page's content root: <main>, then a div whose id
// or class reads like a content wrapper, then the body. Chrome subtrees
// never qualify.
func (p *Parser) mainRegion(doc *goquery.Document) *goquery.Selection {
	if main := doc.Find("main").First(); main.Length() > 0 {
		return main
	}
	if div := firstMatching(doc, "div[id]", func(s *goquery.Selection) bool {
		return outsideChrome(s) && mainRegionPattern.MatchString(s.AttrOr("id", ""))
	}); div != nil {
		return div
	}
	if div := firstMatching(doc, "div[class]", func(s *goquery.Selection) bool {
		return outsideChrome(s) && mainRegionPattern.MatchString(s.AttrOr("class", ""))
	}); div != nil {
		return div
	}
	return doc.Find("body").First()
}

// components scans the main region in a fixed order: one hero candidate,
// every form, every table, then the first ten content sections. Every scan
// stays outside header and footer subtrees, which matters when the region
// has fallen back to the body. When nothing matches, heading parents and
// finally the region's own text serve as fallbacks so no page comes back
// empty-handed.
func (p *Parser) components(doc *goquery.Document) []models.Component {
	main := p.mainRegion(doc)
	components := []models.Component{}

	if hero := firstMatching(main, "div, section", func(s *goquery.Selection) bool {
		return outsideChrome(s) && heroCandidatePattern.MatchString(s.AttrOr("class", ""))
	}); hero != nil {
		if comp := classifier.Classify(hero); comp != nil {
			components = append(components, *comp)
		}
	}

	main.Find("form").Each(func(_ int, form *goquery.Selection) {
		if !outsideChrome(form) {
			return
		}
		if comp := classifier.Classify(form); comp != nil {
			components = append(components, *comp)
		}
	})

	main.Find("table").Each(func(_ int, table *goquery.Selection) {
		if !outsideChrome(table) {
			return
		}
		if comp := classifier.Classify(table); comp != nil {
			components = append(components, *comp)
		}
	})

	sections := main.Find("section, article")
	if sections.Length() == 0 {
		sections = main.Find("div[class]").FilterFunction(func(_ int, s *goquery.Selection) bool {
			return sectionClassPattern.MatchString(s.AttrOr("class", ""))
		})
	}
	candidates := 0
	sections.EachWithBreak(func(_ int, section *goquery.Selection) bool {
		if !outsideChrome(section) {
			return true
		}
		candidates++
		if comp := classifier.Classify(section); comp != nil && !containsComponent(components, *comp) {
			components = append(components, *comp)
		}
		return candidates < maxSectionCandidates
	})

	if len(components) == 0 {
		components = p.headingFallback(main)
	}
	if len(components) == 0 {
		text := classifier.CollapseWhitespace(classifier.VisibleTextExcluding(main, "header", "footer"))
		if len(text) > fallbackTextMinLen {
			components = append(components, models.Component{
				Type:    models.ComponentTextBlock,
				Content: classifier.Truncate(text, fallbackTextMaxLen),
			})
		}
	}
	return components
}

// headingFallback classifies the parents of the first few non-chrome
// headings, for pages whose markup offers no sectioning elements at all.
// The parent may be the body itself on entirely flat pages.
func (p *Parser) headingFallback(main *goquery.Selection) []models.Component {
	components := []models.Component{}
	scanned := 0
	main.Find("h1, h2, h3").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if !outsideChrome(h) {
			return true
		}
		scanned++
		if comp := classifier.Classify(h.Parent()); comp != nil && !containsComponent(components, *comp) {
			components = append(components, *comp)
		}
		return scanned < maxHeadingFallbacks
	})
	return components
}

// links collects the page's outbound links from the content area, skipping
// anchors inside chrome regions and cookie banner controls. Internal links
// are normalized and deduplicated; externals are kept verbatim.
func (p *Parser) links(doc *goquery.Document) models.Links {
	scope := doc.Find("main").First()
	if scope.Length() == 0 {
		scope = doc.Find("body").First()
	}

	links := models.Links{Internal: []string{}, External: []string{}}
	seenInternal := make(map[string]struct{})
	seenExternal := make(map[string]struct{})

	scope.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		if !outsideChromeNav(a) {
			return
		}
		href, _ := a.Attr("href")
		if siteurl.SkippableHref(href) || strings.Contains(strings.ToLower(href), "cookie") {
			return
		}

		if p.site.IsInternal(href) {
			if len(links.Internal) >= maxInternalLinks {
				return
			}
			clean := siteurl.Normalize(p.site.Resolve(href))
			if strings.HasSuffix(strings.ToLower(clean), ".pdf") {
				return
			}
			if _, ok := seenInternal[clean]; ok {
				return
			}
			seenInternal[clean] = struct{}{}
			links.Internal = append(links.Internal, clean)
			return
		}

		if len(links.External) >= maxExternalLinks {
			return
		}
		if strings.HasSuffix(strings.ToLower(href), ".pdf") {
			return
		}
		if _, ok := seenExternal[href]; ok {
			return
		}
		seenExternal[href] = struct{}{}
		links.External = append(links.External, href)
	})
	return links
}

// outsideChrome reports whether sel sits outside every header and footer
// subtree.
func outsideChrome(sel *goquery.Selection) bool {
	return sel.ParentsFiltered("header, footer").Length() == 0
}

// outsideChromeNav additionally excludes nav subtrees, the stricter rule
// used for link harvesting.
func outsideChromeNav(sel *goquery.Selection) bool {
	return sel.ParentsFiltered("header, footer, nav").Length() == 0
}

// firstMatching returns the first selection under root matching the
// selector and predicate, or nil.
func firstMatching(root interface {
	Find(string) *goquery.Selection
}, selector string, ok func(*goquery.Selection) bool) *goquery.Selection {
	var found *goquery.Selection
	root.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if ok(s) {
			found = s
			return false
		}
		return true
	})
	return found
}

// containsComponent reports whether an identical component was already
// collected, so repeated boilerplate sections collapse to one entry.
func containsComponent(components []models.Component, comp models.Component) bool {
	for i := range components {
		if reflect.DeepEqual(components[i], comp) {
			return true
		}
	}
	return false
}
