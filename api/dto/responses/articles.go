// ABOUTME: Response DTOs for the crawl and derivation endpoints
// ABOUTME: Maps domain articles onto the wire shape the presentation layer reads

package responses

import (
	"time"

	"insightink-api/core/domain"
)

// Article is the wire form of one crawled article.
type Article struct {
	URL            string    `json:"url"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	FetchedAt      time.Time `json:"fetchedAt"`
	Summary        string    `json:"summary,omitempty"`
	Keywords       []string  `json:"keywords,omitempty"`
	Thumbnail      string    `json:"thumbnail,omitempty"`
	ThumbnailColor *RGBColor `json:"thumbnailColor,omitempty"`
}

// RGBColor is the wire form of an accent color.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Crawl is the body of a successful POST /crawl.
type Crawl struct {
	Articles []Article `json:"articles"`
}

// Summarize is the body of a successful POST /summarize.
type Summarize struct {
	Summary string `json:"summary"`
}

// Keywords is the body of a successful POST /keywords.
type Keywords struct {
	Keywords []string `json:"keywords"`
}

// Error is the uniform error body.
type Error struct {
	Error string `json:"error"`
}

// FromDomainArticle maps a domain article onto its wire form.
func FromDomainArticle(a domain.Article) Article {
	out := Article{
		URL:       a.URL,
		Title:     a.Title,
		Content:   a.Content,
		FetchedAt: a.FetchedAt,
		Summary:   a.Summary,
		Keywords:  a.Keywords,
		Thumbnail: a.Thumbnail,
	}
	if a.ThumbnailColor != nil {
		out.ThumbnailColor = &RGBColor{
			R: a.ThumbnailColor.R,
			G: a.ThumbnailColor.G,
			B: a.ThumbnailColor.B,
		}
	}
	return out
}

// FromDomainArticles maps a crawl result onto the response body.
func FromDomainArticles(articles []domain.Article) Crawl {
	out := Crawl{Articles: make([]Article, 0, len(articles))}
	for _, a := range articles {
		out.Articles = append(out.Articles, FromDomainArticle(a))
	}
	return out
}
