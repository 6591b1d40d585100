// Package show implements the analysis inspection command: it reads a
// saved analysis file back and prints its page breakdown.
package show

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dtnitsch/cms-site-parser/models"
	"github.com/dtnitsch/cms-site-parser/pkg/storage"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func ShowAction(c *cli.Context) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("usage: cms-site-parser show <analysis-file>")
	}
	path := c.Args().First()

	s := &storage.Storage{}
	if !s.HasFile(path) {
		return fmt.Errorf("no analysis file at %s", path)
	}
	data, err := s.ReadFile(path)
	if err != nil {
		return err
	}
	return render(os.Stdout, data, path)
}

// render decodes a saved analysis and prints its page breakdown. The
// decoder follows the file extension, defaulting to JSON.
func render(w io.Writer, data []byte, path string) error {
	var output models.Output
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		if err := yaml.Unmarshal(data, &output); err != nil {
			return fmt.Errorf("failed to decode analysis file: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &output); err != nil {
			return fmt.Errorf("failed to decode analysis file: %w", err)
		}
	}

	site := output.Website
	fmt.Fprintf(w, "%s (%s)\n", site.Name, site.URL)
	if site.Description != "" {
		fmt.Fprintf(w, "  %s\n", site.Description)
	}
	fmt.Fprintf(w, "  Pages: %d  Navigation: %d  Footer links: %d\n\n",
		len(site.Pages),
		len(site.GlobalComponents.Header.Navigation),
		len(site.GlobalComponents.Footer.FooterLinks))

	fmt.Fprintf(w, "%-20s %-30s %-5s %s\n", "Slug", "Title", "Comps", "Path")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, page := range site.Pages {
		fmt.Fprintf(w, "%-20s %-30s %-5d %s\n",
			page.Slug, page.Title, len(page.Components), page.Path)
	}
	return nil
}
