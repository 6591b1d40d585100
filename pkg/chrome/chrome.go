// Package chrome extracts the site-wide surfaces of a website: identity
// metadata plus the header and footer regions of the home page. These are
// computed once per crawl, never per page.
package chrome

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/cms-site-parser/models"
	"github.com/dtnitsch/cms-site-parser/pkg/classifier"
	"github.com/dtnitsch/cms-site-parser/pkg/contacts"
	"github.com/dtnitsch/cms-site-parser/pkg/siteurl"
	readability "github.com/go-shiori/go-readability"
)

const (
	maxNavLinks       = 10
	minNavTextLen     = 3
	maxNavTextLen     = 50
	maxFooterLinks    = 10
	maxFooterLinkText = 30
	descriptionMaxLen = 300
)

var (
	titleSuffixPattern = regexp.MustCompile(`\s*[-|–]\s*.*$`)
	headerClassPattern = regexp.MustCompile(`(?i)header|navbar|navigation|menu`)

	socialHosts = []string{"twitter", "facebook", "linkedin", "youtube", "instagram"}
)

// Extractor pulls site-wide chrome from the home page document.
type Extractor struct {
	site     *siteurl.Site
	contacts contacts.Extractor
}

func NewExtractor(site *siteurl.Site, c contacts.Extractor) *Extractor {
	return &Extractor{site: site, contacts: c}
}

// Metadata derives the site name and description. The name is the <title>
// with any "- Tagline" style suffix removed; the description prefers the
// meta description tag, then falls back to a readability excerpt of the
// home page itself.
func (e *Extractor) Metadata(doc *goquery.Document, rawHTML string) (name, description string) {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	name = strings.TrimSpace(titleSuffixPattern.ReplaceAllString(title, ""))

	description, _ = doc.Find(`meta[name="description"]`).First().Attr("content")
	description = strings.TrimSpace(description)
	if description == "" && rawHTML != "" {
		article, err := readability.FromReader(strings.NewReader(rawHTML), e.site.URL())
		if err == nil {
			description = classifier.Truncate(classifier.CollapseWhitespace(article.Excerpt), descriptionMaxLen)
		}
	}
	return name, description
}

// Header extracts the logo, the filtered navigation link texts, and any
// contact facts present in the header region.
func (e *Extractor) Header(doc *goquery.Document) models.Header {
	header := findHeader(doc)
	out := models.Header{Navigation: []string{}}
	if header.Length() == 0 {
		return out
	}

	out.Logo = header.Find("img").First().AttrOr("alt", "")

	seen := make(map[string]struct{})
	header.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		text := classifier.VisibleText(a)
		href, _ := a.Attr("href")
		if !navLinkOK(text, href) {
			return true
		}
		if _, ok := seen[text]; ok {
			return true
		}
		seen[text] = struct{}{}
		out.Navigation = append(out.Navigation, text)
		return len(out.Navigation) < maxNavLinks
	})

	if c := e.contacts.Contacts(classifier.VisibleText(header)); !c.Empty() {
		out.Contact = &c
	}
	return out
}

// Footer extracts address fragments, contact facts, internal footer links,
// and the set of social platforms linked from the footer.
func (e *Extractor) Footer(doc *goquery.Document) models.Footer {
	footer := doc.Find("footer").First()
	var out models.Footer
	if footer.Length() == 0 {
		return out
	}

	text := classifier.VisibleText(footer)
	if addr := e.contacts.Address(text); !addr.Empty() {
		out.Address = &addr
	}
	c := e.contacts.FooterContacts(text)
	out.Email = c.Email
	out.Phone = c.Phone

	seen := make(map[string]struct{})
	footer.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		text := classifier.VisibleText(a)
		if !e.site.IsInternal(href) || strings.HasSuffix(strings.ToLower(href), ".pdf") {
			return true
		}
		if text == "" || len(text) >= maxFooterLinkText {
			return true
		}
		if _, ok := seen[text]; ok {
			return true
		}
		seen[text] = struct{}{}
		out.FooterLinks = append(out.FooterLinks, text)
		return len(out.FooterLinks) < maxFooterLinks
	})

	out.SocialLinks = socialPlatforms(footer)
	return out
}

// findHeader locates the header region: a <header> element when present,
// otherwise the first nav or div whose class reads like navigation chrome.
func findHeader(doc *goquery.Document) *goquery.Selection {
	if header := doc.Find("header").First(); header.Length() > 0 {
		return header
	}
	var found *goquery.Selection
	doc.Find("nav, div").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if headerClassPattern.MatchString(s.AttrOr("class", "")) {
			found = s
			return false
		}
		return true
	})
	if found != nil {
		return found
	}
	return doc.Find("header") // empty selection
}

// navLinkOK filters navigation anchors down to real menu entries: short
// human labels, no mail links, no social or document targets, no cookie
// banner controls.
func navLinkOK(text, href string) bool {
	if len(text) < minNavTextLen || len(text) > maxNavTextLen {
		return false
	}
	if strings.Contains(text, "@") {
		return false
	}
	lowerHref := strings.ToLower(href)
	for _, host := range socialHosts {
		if strings.Contains(lowerHref, host) {
			return false
		}
	}
	if strings.HasSuffix(lowerHref, ".pdf") || strings.Contains(lowerHref, "policy") {
		return false
	}
	lowerText := strings.ToLower(text)
	for _, word := range []string{"cookie", "consent", "refuse"} {
		if strings.Contains(lowerText, word) {
			return false
		}
	}
	return true
}

// socialPlatforms returns the deduplicated platform names linked from the
// region, in first-seen order. Each anchor contributes at most one.
func socialPlatforms(region *goquery.Selection) []string {
	var platforms []string
	seen := make(map[string]struct{})
	region.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := strings.ToLower(a.AttrOr("href", ""))
		for _, host := range socialHosts {
			if !strings.Contains(href, host) {
				continue
			}
			if _, ok := seen[host]; !ok {
				seen[host] = struct{}{}
				platforms = append(platforms, host)
			}
			break
		}
	})
	return platforms
}
