package db

const schema = `
CREATE TABLE IF NOT EXISTS crawl_runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    base_url TEXT NOT NULL,
    started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    finished_at TIMESTAMP,
    discovered_count INTEGER DEFAULT 0,
    parsed_count INTEGER DEFAULT 0,
    duplicate_count INTEGER DEFAULT 0,
    failed_count INTEGER DEFAULT 0,
    language TEXT
);

CREATE TABLE IF NOT EXISTS crawl_pages (
    page_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    url TEXT NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('parsed', 'duplicate', 'failed')),
    content_hash TEXT,
    page_slug TEXT,
    component_count INTEGER DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(run_id, url),
    FOREIGN KEY (run_id) REFERENCES crawl_runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_crawl_pages_run ON crawl_pages(run_id);
CREATE INDEX IF NOT EXISTS idx_crawl_pages_status ON crawl_pages(run_id, status);
CREATE INDEX IF NOT EXISTS idx_crawl_runs_base_url ON crawl_runs(base_url);
`
