package classifier

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// VisibleText extracts a subtree's text the way the classifier measures
// it: every text node trimmed, empties dropped, the rest joined with
// single spaces.
func VisibleText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, nil, &parts)
	}
	return strings.Join(parts, " ")
}

// VisibleTextExcluding is VisibleText with subtrees rooted at any of the
// excluded tags skipped, so chrome regions can be ignored without cloning
// and mutating the document.
func VisibleTextExcluding(sel *goquery.Selection, excluded ...string) string {
	skip := make(map[string]bool, len(excluded))
	for _, tag := range excluded {
		skip[tag] = true
	}
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, skip, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, skip map[string]bool, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	if n.Type == html.ElementNode && skip[n.Data] {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, skip, parts)
	}
}

// CollapseWhitespace reduces runs of whitespace to single spaces and trims
// the result.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// Truncate caps s at max characters, appending an ellipsis marker when the
// text was cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return s
}
