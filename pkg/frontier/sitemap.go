package frontier

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// Conventional sitemap locations, probed in this order.
var sitemapPaths = []string{"/sitemap.xml", "/sitemap_index.xml", "/sitemap"}

// parseLocs pulls every <loc> element text out of a sitemap document. A
// resource without a single <loc> is not a sitemap.
func parseLocs(data []byte) []string {
	if !bytes.Contains(data, []byte("<loc>")) {
		return nil
	}

	var locs []string
	decoder := xml.NewDecoder(bytes.NewReader(data))
	inLoc := false
	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			inLoc = t.Name.Local == "loc"
		case xml.EndElement:
			inLoc = false
		case xml.CharData:
			if inLoc {
				if text := strings.TrimSpace(string(t)); text != "" {
					locs = append(locs, text)
				}
			}
		}
	}
	return locs
}
