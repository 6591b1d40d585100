// Package classifier assigns semantic component types to DOM subtrees.
//
// Classification is an ordered heuristic cascade: structurally distinctive
// markers (hero/banner class names, form and table elements) outrank the
// generic prose heuristics at the bottom, and the first heuristic that
// emits a component wins.
package classifier

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/cms-site-parser/models"
)

const (
	minComponentTextLen = 20

	subtitleMinLen  = 20
	subtitleMaxLen  = 200
	maxSubtitleScan = 3

	maxFieldLabelLen = 50

	scannedTableRows = 6
	maxSampleRows    = 5

	minListItems   = 3
	maxListItems   = 10
	maxListItemLen = 200

	minGalleryImages = 2
	maxGalleryImages = 5

	proseMinLen        = 100
	richTextPreviewLen = 300
	textBlockMinLen    = 50
	textBlockMaxLen    = 400
)

var (
	heroClassPattern      = regexp.MustCompile(`(?i)hero|banner|slider|carousel|jumbotron`)
	heroChildClassPattern = regexp.MustCompile(`(?i)hero|banner|slider|carousel`)
)

// Classify inspects one subtree and returns at most one component, or nil
// when every heuristic fails. Subtrees whose visible text is too short to
// be a meaningful component are rejected outright.
func Classify(sel *goquery.Selection) *models.Component {
	if sel == nil || sel.Length() == 0 {
		return nil
	}
	text := VisibleText(sel)
	if len(text) < minComponentTextLen {
		return nil
	}

	if comp := classifyHero(sel); comp != nil {
		return comp
	}
	if comp := classifyForm(sel); comp != nil {
		return comp
	}
	if comp := classifyTable(sel); comp != nil {
		return comp
	}
	if comp := classifyList(sel); comp != nil {
		return comp
	}
	if comp := classifyGallery(sel); comp != nil {
		return comp
	}
	return classifyProse(sel, text)
}

// classifyHero matches subtrees carrying a hero/banner class vocabulary,
// on the element itself or any descendant. Falls through when neither a
// title nor a subtitle can be found.
func classifyHero(sel *goquery.Selection) *models.Component {
	if !heroClassPattern.MatchString(sel.AttrOr("class", "")) &&
		!hasDescendantClass(sel, heroChildClassPattern) {
		return nil
	}

	title := VisibleText(sel.Find("h1, h2, h3").First())

	var subtitle string
	sel.Find("p").EachWithBreak(func(i int, p *goquery.Selection) bool {
		if i >= maxSubtitleScan {
			return false
		}
		t := VisibleText(p)
		if len(t) > subtitleMinLen && len(t) < subtitleMaxLen {
			subtitle = t
			return false
		}
		return true
	})

	if title == "" && subtitle == "" {
		return nil
	}
	return &models.Component{
		Type:     models.ComponentHeroBanner,
		Title:    title,
		Subtitle: subtitle,
	}
}

// classifyForm derives an ordered field list from a form's controls.
// Submit, button, and hidden controls carry no user-facing field.
func classifyForm(sel *goquery.Selection) *models.Component {
	form := sel
	if goquery.NodeName(sel) != "form" {
		form = sel.Find("form").First()
		if form.Length() == 0 {
			return nil
		}
	}

	labelCleaner := strings.NewReplacer("_", " ", "-", " ")
	var fields []string
	seen := make(map[string]struct{})
	form.Find("input, textarea, select").Each(func(_ int, input *goquery.Selection) {
		fieldType := input.AttrOr("type", "text")
		if fieldType == "submit" || fieldType == "button" || fieldType == "hidden" {
			return
		}

		label := input.AttrOr("placeholder", "")
		if label == "" {
			label = input.AttrOr("name", "")
		}
		if label == "" {
			label = input.AttrOr("id", "")
		}
		label = strings.TrimSpace(labelCleaner.Replace(label))
		if label == "" || len(label) >= maxFieldLabelLen {
			return
		}

		label = titleCase(label)
		if _, ok := seen[label]; ok {
			return
		}
		seen[label] = struct{}{}
		fields = append(fields, label)
	})

	if len(fields) == 0 {
		return nil
	}
	return &models.Component{Type: models.ComponentForm, Fields: fields}
}

// classifyTable collects column headers and up to five sample rows.
// Header-only rows feed the columns list, not the samples.
func classifyTable(sel *goquery.Selection) *models.Component {
	table := sel
	if goquery.NodeName(sel) != "table" {
		table = sel.Find("table").First()
		if table.Length() == 0 {
			return nil
		}
	}

	var columns []string
	table.Find("th").Each(func(_ int, th *goquery.Selection) {
		if t := VisibleText(th); t != "" {
			columns = append(columns, t)
		}
	})

	var rows [][]string
	table.Find("tr").EachWithBreak(func(i int, tr *goquery.Selection) bool {
		if i >= scannedTableRows {
			return false
		}
		var cells []string
		nonEmpty := false
		headerOnly := true
		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			t := VisibleText(cell)
			cells = append(cells, t)
			if t != "" {
				nonEmpty = true
			}
			if goquery.NodeName(cell) != "th" {
				headerOnly = false
			}
		})
		if len(cells) == 0 || !nonEmpty || headerOnly {
			return true
		}
		rows = append(rows, cells)
		return true
	})

	if len(columns) == 0 && len(rows) <= 1 {
		return nil
	}
	if len(rows) > maxSampleRows {
		rows = rows[:maxSampleRows]
	}
	return &models.Component{
		Type:       models.ComponentTable,
		Columns:    columns,
		SampleData: rows,
	}
}

// classifyList requires at least three qualifying direct items in the
// first list element; navigation and chrome subtrees never count.
func classifyList(sel *goquery.Selection) *models.Component {
	switch goquery.NodeName(sel) {
	case "nav", "header", "footer":
		return nil
	}

	list := sel.Find("ul, ol").First()
	if list.Length() == 0 {
		return nil
	}

	var items []string
	list.ChildrenFiltered("li").EachWithBreak(func(i int, li *goquery.Selection) bool {
		if i >= maxListItems {
			return false
		}
		t := VisibleText(li)
		if t != "" && len(t) < maxListItemLen {
			items = append(items, t)
		}
		return true
	})

	if len(items) < minListItems {
		return nil
	}
	return &models.Component{Type: models.ComponentList, Items: items}
}

// classifyGallery matches subtrees with two or more images. The reported
// count covers every image; the samples only those with a src.
func classifyGallery(sel *goquery.Selection) *models.Component {
	images := sel.Find("img")
	if images.Length() < minGalleryImages {
		return nil
	}

	var info []models.Image
	images.EachWithBreak(func(i int, img *goquery.Selection) bool {
		if i >= maxGalleryImages {
			return false
		}
		src := img.AttrOr("src", "")
		if src == "" {
			return true
		}
		info = append(info, models.Image{
			Alt: img.AttrOr("alt", "Image"),
			Src: src,
		})
		return true
	})

	if len(info) == 0 {
		return nil
	}
	return &models.Component{
		Type:       models.ComponentMediaGallery,
		ImageCount: images.Length(),
		Images:     info,
	}
}

// classifyProse handles the bottom of the cascade: rich text when a
// heading is present, plain text blocks otherwise. Both require the
// subtree to carry a substantial amount of text.
func classifyProse(sel *goquery.Selection, text string) *models.Component {
	if len(text) <= proseMinLen {
		return nil
	}

	heading := sel.Find("h1, h2, h3, h4, h5").First()
	if heading.Length() > 0 {
		headingText := VisibleText(heading)
		content := strings.TrimSpace(strings.Replace(text, headingText, "", 1))
		return &models.Component{
			Type:           models.ComponentRichText,
			Heading:        headingText,
			ContentPreview: Truncate(content, richTextPreviewLen),
		}
	}

	collapsed := CollapseWhitespace(text)
	if len(collapsed) <= textBlockMinLen {
		return nil
	}
	return &models.Component{
		Type:    models.ComponentTextBlock,
		Content: Truncate(collapsed, textBlockMaxLen),
	}
}

func hasDescendantClass(sel *goquery.Selection, pattern *regexp.Regexp) bool {
	found := false
	sel.Find("[class]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if pattern.MatchString(s.AttrOr("class", "")) {
			found = true
			return false
		}
		return true
	})
	return found
}

// titleCase uppercases the first letter of every word and lowercases the
// rest, so form field labels read uniformly.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
