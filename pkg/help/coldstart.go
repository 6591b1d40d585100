package help

const ColdstartYAML = `# cms-site-parser Quick Start

what_it_does: |
  Crawls one CMS-built website, classifies the building blocks of every
  page (hero banners, forms, tables, lists, galleries, prose), and writes
  a single structured analysis file.

commands:
  basic_crawl: |
    cms-site-parser crawl --url "https://example.com"

  positional_url: |
    cms-site-parser crawl example.com

  custom_output: |
    cms-site-parser crawl example.com -o site.json

  yaml_output: |
    cms-site-parser crawl example.com --format yaml

  cached_recrawl: |
    cms-site-parser crawl example.com --cache-dir .page-cache --cache-ttl 60

  inspect_analysis: |
    cms-site-parser show example_com_analysis.json

  list_runs: |
    cms-site-parser db runs

  run_details: |
    cms-site-parser db run 3

output_file:
  - "Default name: <host>_analysis.json (www. dropped, dots to underscores)"
  - "One website object: name, url, description, global_components, pages"
  - "Each page: page_slug, page_title, path, components, links"

component_types:
  hero_banner: "Title and subtitle from hero/banner/slider markup"
  form: "Ordered human-readable field labels"
  table: "Column headers plus up to five sample rows"
  list: "Up to ten short items from the first ul/ol"
  media_gallery: "Image count plus up to five alt/src samples"
  rich_text: "Heading plus a 300-character content preview"
  text_block: "Headingless prose capped at 400 characters"

crawl_behavior:
  - "Sitemap seeds (/sitemap.xml, /sitemap_index.xml, /sitemap) plus link traversal"
  - "Only same-host pages are crawled; assets (pdf, images, archives) are skipped"
  - "Pages with identical main content are emitted once (first URL wins)"
  - "Unreachable pages are skipped and counted, never fatal"
  - "Header and footer chrome come from the home page only"

journal:
  - "Runs and per-page outcomes recorded in cms-site-parser.db next to the binary"
  - "Disable with --no-db"
  - "Inspect with 'cms-site-parser db runs' and 'cms-site-parser db run <id>'"

exit_codes:
  0: "analysis written"
  1: "bad input (missing or malformed URL)"
  2: "crawl or output failure"
`
