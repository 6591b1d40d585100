package crawl

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/dtnitsch/cms-site-parser/models"
)

// printSummary writes the human-readable run report to w. The structured
// logs go to stderr; this is the console-facing recap.
func printSummary(w io.Writer, website *models.Website, stats *runStats, outPath string, elapsed time.Duration) {
	fmt.Fprintf(w, "\nAnalyzed %s\n", website.URL)
	if website.Name != "" {
		fmt.Fprintf(w, "  Site name:  %s\n", website.Name)
	}
	if stats.Language != "" {
		fmt.Fprintf(w, "  Language:   %s (%.0f%% confidence)\n", stats.Language, stats.Confidence*100)
	}
	fmt.Fprintf(w, "  Discovered: %d URLs\n", stats.Discovered)
	fmt.Fprintf(w, "  Parsed:     %d pages\n", stats.Parsed)
	if stats.Duplicates > 0 {
		fmt.Fprintf(w, "  Duplicates: %d skipped\n", stats.Duplicates)
	}
	if stats.Failed > 0 {
		fmt.Fprintf(w, "  Failed:     %d skipped\n", stats.Failed)
	}

	counts := componentCounts(website.Pages)
	if len(counts) > 0 {
		fmt.Fprintln(w, "  Components:")
		types := make([]string, 0, len(counts))
		for t := range counts {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Fprintf(w, "    %-14s %d\n", t, counts[t])
		}
	}

	fmt.Fprintf(w, "  Output:     %s\n", outPath)
	fmt.Fprintf(w, "  Took:       %.1fs\n", elapsed.Seconds())
}

func componentCounts(pages []models.Page) map[string]int {
	counts := make(map[string]int)
	for _, page := range pages {
		for _, comp := range page.Components {
			counts[string(comp.Type)]++
		}
	}
	return counts
}
