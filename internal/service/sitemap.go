package service

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"time"

	"scholarportal/internal/domain/repositories"
	"scholarportal/internal/domain/services"
)

// StaticPages are always listed in the sitemap, home page first.
var StaticPages = []string{
	"/",
	"/biography",
	"/library/books",
	"/library/audio",
	"/fatawa",
	"/resources",
	"/ijazat",
}

// sitemapMaxResources caps how many resource urls one sitemap lists.
const sitemapMaxResources = 1000

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type sitemapService struct {
	siteURL        string
	resourceRepo   repositories.ResourceRepository
	collectionRepo repositories.CollectionRepository
	logger         *slog.Logger
}

// NewSitemapService creates a sitemap builder rooted at siteURL
func NewSitemapService(
	siteURL string,
	resourceRepo repositories.ResourceRepository,
	collectionRepo repositories.CollectionRepository,
	logger *slog.Logger,
) services.SitemapService {
	return &sitemapService{
		siteURL:        siteURL,
		resourceRepo:   resourceRepo,
		collectionRepo: collectionRepo,
		logger:         logger,
	}
}

// Sitemap lists static pages, collection pages and resource urls. A store
// failure drops the dynamic entries; the static pages are still served.
func (s *sitemapService) Sitemap(ctx context.Context, now time.Time) ([]byte, error) {
	today := now.UTC().Format(time.DateOnly)
	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}

	for _, page := range StaticPages {
		priority := "0.8"
		if page == "/" {
			priority = "1.0"
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        s.siteURL + page,
			LastMod:    today,
			ChangeFreq: "weekly",
			Priority:   priority,
		})
	}

	collections, err := s.collectionRepo.List(ctx)
	if err != nil {
		s.logger.Error("sitemap: failed to list collections", "error", err)
	}
	for _, c := range collections {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        fmt.Sprintf("%s/library/collections/%s", s.siteURL, c.ID),
			LastMod:    lastMod(c.UpdatedAt, today),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	resources, err := s.resourceRepo.List(ctx, repositories.ResourceQuery{Limit: sitemapMaxResources})
	if err != nil {
		s.logger.Error("sitemap: failed to list resources", "error", err)
	}
	for _, r := range resources {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        r.URL,
			LastMod:    lastMod(r.UpdatedAt, today),
			ChangeFreq: "monthly",
			Priority:   "0.5",
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	return buf.Bytes(), nil
}

func lastMod(t time.Time, fallback string) string {
	if t.IsZero() {
		return fallback
	}
	return t.UTC().Format(time.DateOnly)
}
