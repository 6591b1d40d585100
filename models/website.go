package models

// ComponentType identifies the semantic kind of a page component.
type ComponentType string

const (
	ComponentHeroBanner   ComponentType = "hero_banner"
	ComponentForm         ComponentType = "form"
	ComponentTable        ComponentType = "table"
	ComponentList         ComponentType = "list"
	ComponentMediaGallery ComponentType = "media_gallery"
	ComponentRichText     ComponentType = "rich_text"
	ComponentTextBlock    ComponentType = "text_block"
)

// Image is one entry of a media gallery.
type Image struct {
	Alt string `json:"alt" yaml:"alt"`
	Src string `json:"src" yaml:"src"`
}

// Component is a tagged variant: only the fields belonging to its Type are
// populated, everything else is omitted from the output.
type Component struct {
	Type ComponentType `json:"type" yaml:"type"`

	// hero_banner
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`

	// form
	Fields []string `json:"fields,omitempty" yaml:"fields,omitempty"`

	// table
	Columns    []string   `json:"columns,omitempty" yaml:"columns,omitempty"`
	SampleData [][]string `json:"sample_data,omitempty" yaml:"sample_data,omitempty"`

	// list
	Items []string `json:"items,omitempty" yaml:"items,omitempty"`

	// media_gallery
	ImageCount int     `json:"image_count,omitempty" yaml:"image_count,omitempty"`
	Images     []Image `json:"images,omitempty" yaml:"images,omitempty"`

	// rich_text
	Heading        string `json:"heading,omitempty" yaml:"heading,omitempty"`
	ContentPreview string `json:"content_preview,omitempty" yaml:"content_preview,omitempty"`

	// text_block
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
}

// Links holds a page's categorized outbound links in document order.
type Links struct {
	Internal []string `json:"internal" yaml:"internal"`
	External []string `json:"external" yaml:"external"`
}

// Page is one parsed page. It is assembled once per distinct, non-duplicate
// URL and never mutated afterwards.
type Page struct {
	Slug       string      `json:"page_slug" yaml:"page_slug"`
	Title      string      `json:"page_title" yaml:"page_title"`
	Path       string      `json:"path" yaml:"path"`
	Components []Component `json:"components" yaml:"components"`
	Links      Links       `json:"links" yaml:"links"`
}

// Contact is at most one email address and one phone number.
type Contact struct {
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone string `json:"phone,omitempty" yaml:"phone,omitempty"`
}

// Empty reports whether no contact facts were found.
func (c Contact) Empty() bool {
	return c.Email == "" && c.Phone == ""
}

// Address is a best-effort postal address assembled from footer text.
type Address struct {
	Street  string `json:"street,omitempty" yaml:"street,omitempty"`
	City    string `json:"city,omitempty" yaml:"city,omitempty"`
	State   string `json:"state,omitempty" yaml:"state,omitempty"`
	Country string `json:"country,omitempty" yaml:"country,omitempty"`
}

// Empty reports whether no address parts were found.
func (a Address) Empty() bool {
	return a.Street == "" && a.City == "" && a.State == "" && a.Country == ""
}

// Header is the site-wide navigation chrome extracted from the home page.
type Header struct {
	Logo       string   `json:"logo" yaml:"logo"`
	Navigation []string `json:"navigation" yaml:"navigation"`
	Contact    *Contact `json:"contact,omitempty" yaml:"contact,omitempty"`
}

// Footer is the site-wide footer chrome. Every field is optional and
// omitted when empty rather than emitted as null.
type Footer struct {
	Address     *Address `json:"address,omitempty" yaml:"address,omitempty"`
	Phone       string   `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email       string   `json:"email,omitempty" yaml:"email,omitempty"`
	FooterLinks []string `json:"footer_links,omitempty" yaml:"footer_links,omitempty"`
	SocialLinks []string `json:"social_links,omitempty" yaml:"social_links,omitempty"`
}

// GlobalComponents are computed exactly once, from the home page.
type GlobalComponents struct {
	Header Header `json:"header" yaml:"header"`
	Footer Footer `json:"footer" yaml:"footer"`
}

// Website is the root aggregate and the sole persisted artifact.
type Website struct {
	Name             string           `json:"name" yaml:"name"`
	URL              string           `json:"url" yaml:"url"`
	Description      string           `json:"description" yaml:"description"`
	GlobalComponents GlobalComponents `json:"global_components" yaml:"global_components"`
	Pages            []Page           `json:"pages" yaml:"pages"`
}

// Output wraps the website for serialization.
type Output struct {
	Website Website `json:"website" yaml:"website"`
}
