// ABOUTME: Source catalog defines crawlable categories, sources and link marker vocabularies
// ABOUTME: Loaded from a YAML file with a built-in default catalog of major news sites

package sources

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source is one crawlable news site listing page.
type Source struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// Category groups sources under a display name.
type Category struct {
	Name    string   `yaml:"name" json:"name"`
	Sources []Source `yaml:"sources" json:"sources"`
}

// Markers holds the path-segment vocabularies used by link discovery.
// Include markers qualify a link as a probable article; exclude markers
// reject it regardless.
type Markers struct {
	Include []string `yaml:"include" json:"include"`
	Exclude []string `yaml:"exclude" json:"exclude"`
}

// Catalog is the full source configuration.
type Catalog struct {
	Categories []Category `yaml:"categories" json:"categories"`
	Markers    Markers    `yaml:"markers" json:"markers"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Categories: []Category{
			{
				Name: "Breaking",
				Sources: []Source{
					{Name: "BBC", URL: "https://www.bbc.com/news"},
					{Name: "Reuters", URL: "https://www.reuters.com/"},
					{Name: "CNN", URL: "https://edition.cnn.com/"},
					{Name: "Al Jazeera", URL: "https://www.aljazeera.com/"},
				},
			},
			{
				Name: "World",
				Sources: []Source{
					{Name: "BBC World", URL: "https://www.bbc.com/news/world"},
					{Name: "Reuters World", URL: "https://www.reuters.com/world/"},
					{Name: "CNN World", URL: "https://edition.cnn.com/world"},
					{Name: "Guardian", URL: "https://www.theguardian.com/world"},
				},
			},
			{
				Name: "Business",
				Sources: []Source{
					{Name: "BBC Business", URL: "https://www.bbc.com/news/business"},
					{Name: "Reuters Business", URL: "https://www.reuters.com/business/"},
					{Name: "CNBC", URL: "https://www.cnbc.com/"},
				},
			},
			{
				Name: "Tech",
				Sources: []Source{
					{Name: "BBC Tech", URL: "https://www.bbc.com/news/technology"},
					{Name: "Reuters Tech", URL: "https://www.reuters.com/technology/"},
					{Name: "TechCrunch", URL: "https://techcrunch.com/"},
					{Name: "Verge", URL: "https://www.theverge.com/"},
				},
			},
			{
				Name: "Health",
				Sources: []Source{
					{Name: "BBC Health", URL: "https://www.bbc.com/news/health"},
					{Name: "MedNews", URL: "https://www.medicalnewstoday.com/"},
				},
			},
			{
				Name: "Sports",
				Sources: []Source{
					{Name: "BBC Sport", URL: "https://www.bbc.com/sport"},
					{Name: "ESPN", URL: "https://www.espn.com/"},
					{Name: "Sky Sports", URL: "https://www.skysports.com/"},
				},
			},
			{
				Name: "Entertainment",
				Sources: []Source{
					{Name: "BBC Arts", URL: "https://www.bbc.com/news/entertainment_and_arts"},
					{Name: "Variety", URL: "https://variety.com/"},
					{Name: "Deadline", URL: "https://deadline.com/"},
				},
			},
			{
				Name: "India",
				Sources: []Source{
					{Name: "Hindu", URL: "https://www.thehindu.com/news/"},
					{Name: "NDTV", URL: "https://www.ndtv.com/"},
					{Name: "Express", URL: "https://indianexpress.com/"},
				},
			},
		},
		Markers: Markers{
			Include: []string{"/article", "/story", "/news", "/20", "/blog", "/post"},
			Exclude: []string{"video", "gallery", "podcast", "live-reporting", "javascript:", "#"},
		},
	}
}

// Load reads a catalog from a YAML file. Omitted marker lists fall back to
// the defaults so a catalog file can override only the categories.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse sources file: %w", err)
	}

	defaults := Default()
	if len(catalog.Markers.Include) == 0 {
		catalog.Markers.Include = defaults.Markers.Include
	}
	if len(catalog.Markers.Exclude) == 0 {
		catalog.Markers.Exclude = defaults.Markers.Exclude
	}
	if len(catalog.Categories) == 0 {
		catalog.Categories = defaults.Categories
	}

	return &catalog, nil
}

// LoadOrDefault loads the catalog at path, or the built-in defaults when
// path is empty.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
