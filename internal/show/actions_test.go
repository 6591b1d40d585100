package show

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dtnitsch/cms-site-parser/models"
	"gopkg.in/yaml.v3"
)

func testOutput(t *testing.T) models.Output {
	t.Helper()
	return models.Output{
		Website: models.Website{
			Name:        "Acme Corp",
			URL:         "https://example.com",
			Description: "Acme builds industrial machinery.",
			Pages: []models.Page{
				{
					Slug:  "home",
					Title: "Acme Corp",
					Path:  "/",
					Components: []models.Component{
						{Type: models.ComponentHeroBanner, Title: "Welcome"},
					},
				},
				{Slug: "about", Title: "About", Path: "/about"},
			},
		},
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := json.Marshal(testOutput(t))
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}

	var buf bytes.Buffer
	if err := render(&buf, data, "example_com_analysis.json"); err != nil {
		t.Fatalf("render() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Acme Corp (https://example.com)", "home", "about", "Pages: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderYAML(t *testing.T) {
	data, err := yaml.Marshal(testOutput(t))
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}

	var buf bytes.Buffer
	if err := render(&buf, data, "example_com_analysis.yaml"); err != nil {
		t.Fatalf("render() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Acme Corp (https://example.com)") {
		t.Errorf("yaml analysis not rendered:\n%s", buf.String())
	}
}

func TestRenderRejectsMalformedFile(t *testing.T) {
	var buf bytes.Buffer
	if err := render(&buf, []byte("{not json"), "broken.json"); err == nil {
		t.Error("render() accepted a malformed analysis file")
	}
}
