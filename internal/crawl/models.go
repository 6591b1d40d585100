package crawl

import (
	"github.com/dtnitsch/cms-site-parser/pkg/parser"
)

type pageJob struct {
	Index int
	URL   string
}

// pageResult holds the outcome of a fetched and parsed page. Index keeps
// results alignable with the sorted discovery order regardless of which
// worker finished first.
type pageResult struct {
	Index  int
	URL    string
	Result *parser.Result
	Error  error
}

// runStats summarizes one crawl for the journal and the console.
type runStats struct {
	Discovered int
	Parsed     int
	Duplicates int
	Failed     int
	Language   string
	Confidence float64
}
