// Package document loads preview documents from the bundled sample, local
// files and RSS/Atom feeds.
package document

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tesso57/folio/internal/domain/document"
)

//go:embed sample.md
var sampleMarkdown string

// Now is exposed for testing.
var Now = time.Now

// Loader implements usecase.DocumentLoader.
type Loader struct {
	Timeout time.Duration
}

// Load dispatches on the source kind.
func (l Loader) Load(ctx context.Context, src document.Source) (*document.Document, error) {
	switch src.Kind {
	case document.Sample:
		return LoadSample(), nil
	case document.File:
		return LoadFile(src.Location)
	case document.Feed:
		if l.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, l.Timeout)
			defer cancel()
		}
		return FetchEntry(ctx, src.Location, src.Item)
	default:
		return nil, fmt.Errorf("unsupported source kind: %s", src.Kind)
	}
}

// LoadSample returns the bundled article.
func LoadSample() *document.Document {
	title, body := splitTitle(sampleMarkdown)
	return &document.Document{
		Source:    document.Source{Kind: document.Sample},
		Title:     title,
		Body:      body,
		FetchedAt: Now(),
	}
}

// LoadFile reads a Markdown or plain text file.
func LoadFile(path string) (*document.Document, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, document.ErrEmptySource
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	title, body := splitTitle(string(data))
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &document.Document{
		Source:    document.Source{Kind: document.File, Location: path},
		Title:     title,
		Body:      body,
		FetchedAt: Now(),
	}, nil
}

// splitTitle lifts a leading "# " heading out of the body.
func splitTitle(markdown string) (string, string) {
	text := strings.TrimLeft(strings.ReplaceAll(markdown, "\r\n", "\n"), "\n")
	first, rest, _ := strings.Cut(text, "\n")
	if title, ok := strings.CutPrefix(first, "# "); ok {
		return strings.TrimSpace(title), strings.TrimLeft(rest, "\n")
	}
	return "", text
}
