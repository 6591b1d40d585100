// Package models defines the structured website representation and runtime
// configuration.
package models

import "time"

// CrawlConfig holds runtime configuration for one site crawl.
// All values come from CLI flags, not external config files.
type CrawlConfig struct {
	BaseURL     string
	OutputPath  string
	Timeout     time.Duration
	WorkerCount int
	Format      string
	Journal     bool
	CacheDir    string
	CacheTTL    time.Duration
}
