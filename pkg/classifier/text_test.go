package classifier

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func docFor(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	return doc
}

func TestVisibleText(t *testing.T) {
	doc := docFor(t, `<html><body><div>  Hello  <span>world</span><p></p><b> again </b></div></body></html>`)
	got := VisibleText(doc.Find("div"))
	if got != "Hello world again" {
		t.Errorf("VisibleText() = %q, want %q", got, "Hello world again")
	}
}

func TestVisibleTextExcluding(t *testing.T) {
	doc := docFor(t, `<html><body><header>Chrome text</header><p>Body text</p><footer>More chrome</footer></body></html>`)
	got := VisibleTextExcluding(doc.Find("body"), "header", "footer")
	if got != "Body text" {
		t.Errorf("VisibleTextExcluding() = %q, want %q", got, "Body text")
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  a  b\n\tc  ", "a b c"},
		{"single", "single"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CollapseWhitespace(tt.in); got != tt.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short untouched", in: "abc", max: 5, want: "abc"},
		{name: "exact length untouched", in: "abcde", max: 5, want: "abcde"},
		{name: "long gets ellipsis", in: "abcdef", max: 5, want: "abcde..."},
		{name: "multibyte safe", in: "éééééé", max: 3, want: "ééé..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
