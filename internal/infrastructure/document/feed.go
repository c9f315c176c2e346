package document

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"github.com/tesso57/folio/internal/domain/document"
)

const feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

// ErrNoEntry is returned when the requested feed entry does not exist.
var ErrNoEntry = errors.New("feed entry not found")

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// ParserFunc is exposed for testing.
// It allows mocking the feed parsing logic.
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "Folio/1.0"
	fp.Client = &http.Client{Transport: acceptTransport{base: http.DefaultTransport}}
	return fp.ParseURLWithContext(url, ctx)
}

// FetchEntry loads entry index of the feed at url.
func FetchEntry(ctx context.Context, url string, index int) (*document.Document, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, document.ErrEmptySource
	}
	if ctx == nil {
		ctx = context.Background()
	}
	parsed, err := ParserFunc(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if index < 0 || index >= len(parsed.Items) {
		return nil, fmt.Errorf("%w: %d of %d in %s", ErrNoEntry, index+1, len(parsed.Items), url)
	}

	item := parsed.Items[index]
	raw := item.Content
	if strings.TrimSpace(raw) == "" {
		raw = item.Description
	}
	body, err := HTMLToMarkdown(raw)
	if err != nil {
		return nil, err
	}

	byline := parsed.Title
	if len(item.Authors) > 0 && item.Authors[0] != nil && item.Authors[0].Name != "" {
		byline = item.Authors[0].Name + " · " + parsed.Title
	}
	if item.Published != "" {
		byline = strings.TrimSpace(byline + " · " + item.Published)
	}

	return new(document.Document{
		Source:    document.Source{Kind: document.Feed, Location: url, Item: index},
		Title:     strings.TrimSpace(item.Title),
		Byline:    strings.Trim(byline, " ·"),
		Link:      item.Link,
		Body:      body,
		FetchedAt: Now(),
	}), nil
}

var blankLines = regexp.MustCompile(`\n{3,}`)

// HTMLToMarkdown flattens entry HTML into Markdown paragraphs.
// Plain text input passes through unchanged apart from whitespace cleanup.
func HTMLToMarkdown(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if !strings.Contains(raw, "<") {
		return raw, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to parse entry html: %w", err)
	}
	doc.Find("script, style").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("\n\n## ")
		s.AppendHtml("\n\n")
	})
	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("\n- ")
	})
	doc.Find("blockquote").Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("\n\n> ")
		s.AppendHtml("\n\n")
	})
	doc.Find("p, div, pre, ul, ol").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n\n")
	})

	lines := strings.Split(doc.Text(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text := blankLines.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(text), nil
}
