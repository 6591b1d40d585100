// Package db implements the journal inspection commands: listing past
// crawl runs and showing the page outcomes of one run.
package db

import (
	"fmt"
	"strings"

	dbpkg "github.com/dtnitsch/cms-site-parser/pkg/db"
	"github.com/urfave/cli/v2"
)

func RunsAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	limit := c.Int("limit")
	runs, err := database.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No crawl runs found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-10s %-8s %-6s %-6s %-6s %-40s\n",
		"ID", "Started", "Discovered", "Parsed", "Dups", "Fail", "Lang", "Base URL")
	fmt.Println(strings.Repeat("-", 110))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-10d %-8d %-6d %-6d %-6s %-40s\n",
			r.RunID,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			r.DiscoveredCount,
			r.ParsedCount,
			r.DuplicateCount,
			r.FailedCount,
			r.Language,
			r.BaseURL,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'cms-site-parser db run <id>' to see per-page outcomes\n")

	return nil
}

// RunAction shows the page outcomes for a specific run
func RunAction(c *cli.Context) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("usage: cms-site-parser db run <run_id>")
	}
	var runID int64
	if _, err := fmt.Sscanf(c.Args().First(), "%d", &runID); err != nil {
		return fmt.Errorf("invalid run ID %q", c.Args().First())
	}

	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	run, err := database.RunSummary(runID)
	if err != nil {
		return err
	}

	fmt.Printf("Run %d: %s\n", run.RunID, run.BaseURL)
	fmt.Printf("  Started:    %s\n", run.StartedAt.Format("2006-01-02 15:04:05"))
	if !run.FinishedAt.IsZero() {
		fmt.Printf("  Finished:   %s\n", run.FinishedAt.Format("2006-01-02 15:04:05"))
	}
	if run.Language != "" {
		fmt.Printf("  Language:   %s\n", run.Language)
	}
	fmt.Printf("  Discovered: %d  Parsed: %d  Duplicates: %d  Failed: %d\n",
		run.DiscoveredCount, run.ParsedCount, run.DuplicateCount, run.FailedCount)

	pages, err := database.RunPages(runID)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return nil
	}

	fmt.Printf("\n%-10s %-20s %-5s %s\n", "Status", "Slug", "Comps", "URL")
	fmt.Println(strings.Repeat("-", 90))
	for _, p := range pages {
		fmt.Printf("%-10s %-20s %-5d %s\n", p.Status, p.Slug, p.ComponentCount, p.URL)
	}

	return nil
}
