package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dtnitsch/cms-site-parser/internal/crawl"
	internaldb "github.com/dtnitsch/cms-site-parser/internal/db"
	"github.com/dtnitsch/cms-site-parser/internal/show"
	"github.com/dtnitsch/cms-site-parser/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "cms-site-parser",
		Usage: "crawl a CMS-built website and emit its structured analysis",
		Commands: []*cli.Command{
			{
				Name:      "crawl",
				Usage:     "discover, parse, and classify every page of one site",
				ArgsUsage: "[url]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "url",
						Usage: "base URL of the site to analyze",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "analysis file path (default: derived from the host)",
					},
					&cli.IntFlag{
						Name:    "timeout",
						Aliases: []string{"t"},
						Value:   20,
						Usage:   "per-request timeout in seconds",
					},
					&cli.IntFlag{
						Name:  "workers",
						Value: 4,
						Usage: "number of concurrent page fetchers",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "output format: json or yaml",
					},
					&cli.StringFlag{
						Name:  "cache-dir",
						Usage: "directory for the page cache (disabled when empty)",
					},
					&cli.IntFlag{
						Name:  "cache-ttl",
						Value: 60,
						Usage: "page cache lifetime in minutes, 0 means no expiry",
					},
					&cli.BoolFlag{
						Name:  "no-db",
						Usage: "skip the crawl journal database",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "only log errors, skip the console summary",
					},
				},
				Action: crawl.CrawlAction,
			},
			{
				Name:  "db",
				Usage: "inspect the crawl journal",
				Subcommands: []*cli.Command{
					{
						Name:  "runs",
						Usage: "list past crawl runs",
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
								Usage: "maximum number of runs to show, 0 for all",
							},
						},
						Action: internaldb.RunsAction,
					},
					{
						Name:      "run",
						Usage:     "show per-page outcomes for one run",
						ArgsUsage: "<run_id>",
						Action:    internaldb.RunAction,
					},
				},
			},
			{
				Name:      "show",
				Usage:     "print the page breakdown of a saved analysis file",
				ArgsUsage: "<analysis-file>",
				Action:    show.ShowAction,
			},
			{
				Name:  "guide",
				Usage: "print the quick-start guide",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
