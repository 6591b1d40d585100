package crawl

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dtnitsch/cms-site-parser/internal/common"
	"github.com/dtnitsch/cms-site-parser/models"
	"github.com/dtnitsch/cms-site-parser/pkg/db"
	"github.com/dtnitsch/cms-site-parser/pkg/siteurl"
	"github.com/dtnitsch/cms-site-parser/pkg/storage"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func CrawlAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	rawURL := c.String("url")
	if rawURL == "" {
		rawURL = c.Args().First()
	}
	if rawURL == "" {
		fmt.Fprintln(os.Stderr, "Error: No URL provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  cms-site-parser crawl --url "https://example.com"`)
		fmt.Fprintln(os.Stderr, `  cms-site-parser crawl example.com -o site.json`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: cms-site-parser crawl --help")
		os.Exit(1)
	}
	rawURL, err := common.SanitizeBaseURL(rawURL)
	if err != nil {
		logger.Error("invalid base URL", "error", err)
		os.Exit(1)
	}

	format := strings.ToLower(c.String("format"))
	if format != "json" && format != "yaml" {
		logger.Error("invalid output format", "format", format)
		os.Exit(2)
	}

	config := &models.CrawlConfig{
		BaseURL:     rawURL,
		OutputPath:  c.String("output"),
		Timeout:     time.Duration(c.Int("timeout")) * time.Second,
		WorkerCount: c.Int("workers"),
		Format:      format,
		Journal:     !c.Bool("no-db"),
		CacheDir:    c.String("cache-dir"),
		CacheTTL:    time.Duration(c.Int("cache-ttl")) * time.Minute,
	}

	site, err := siteurl.New(config.BaseURL)
	if err != nil {
		logger.Error("invalid base URL", "url", config.BaseURL, "error", err)
		os.Exit(1)
	}

	// The journal is an optional sidecar. A site whose crawl works but
	// whose database does not should still produce its analysis file.
	var database *db.DB
	if config.Journal {
		database, err = db.Open()
		if err != nil {
			logger.Warn("crawl journal unavailable, continuing without it", "error", err)
			database = nil
		} else {
			defer database.Close()
		}
	}

	website, stats, err := run(logger, config, site, database)
	if err != nil {
		logger.Error("crawl failed", "error", err)
		os.Exit(2)
	}

	output := models.Output{Website: *website}
	var data []byte
	switch config.Format {
	case "yaml":
		data, err = yaml.Marshal(output)
	default:
		data, err = json.MarshalIndent(output, "", "  ")
	}
	if err != nil {
		logger.Error("failed to serialize analysis", "error", err)
		os.Exit(2)
	}

	outPath := storage.OutputPath(config.OutputPath, config.BaseURL, config.Format)
	s := &storage.Storage{}
	if err := s.SaveFile(outPath, data); err != nil {
		logger.Error("failed to write analysis file", "path", outPath, "error", err)
		os.Exit(2)
	}

	if !c.Bool("quiet") {
		printSummary(os.Stdout, website, stats, outPath, time.Since(startTime))
	}
	return nil
}
