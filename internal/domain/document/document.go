// Package document describes the article shown in the preview.
package document

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmptySource is returned when a loader is asked for a blank source.
var ErrEmptySource = errors.New("document source is empty")

// Kind classifies where a document comes from.
type Kind int

const (
	// Sample is the article bundled with the binary.
	Sample Kind = iota
	// File is a local Markdown or text file.
	File
	// Feed is one entry of an RSS/Atom feed.
	Feed
)

func (k Kind) String() string {
	switch k {
	case Sample:
		return "sample"
	case File:
		return "file"
	case Feed:
		return "feed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Source identifies a document to load.
type Source struct {
	Kind     Kind
	Location string
	Item     int
}

// ParseSource classifies raw. An empty string selects the bundled sample;
// http and https URLs are feeds; anything else is a file path.
func ParseSource(raw string, item int) Source {
	raw = strings.TrimSpace(raw)
	if item < 0 {
		item = 0
	}
	lower := strings.ToLower(raw)
	switch {
	case raw == "":
		return Source{Kind: Sample}
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return Source{Kind: Feed, Location: raw, Item: item}
	default:
		return Source{Kind: File, Location: raw}
	}
}

// Key identifies the source in caches.
func (s Source) Key() string {
	if s.Kind == Feed {
		return fmt.Sprintf("%s#%d", s.Location, s.Item)
	}
	return s.Kind.String() + ":" + s.Location
}

// Remote reports whether loading the source needs the network.
func (s Source) Remote() bool {
	return s.Kind == Feed
}

// Label is a short description for the header.
func (s Source) Label() string {
	switch s.Kind {
	case Sample:
		return "bundled sample"
	case Feed:
		return fmt.Sprintf("%s (entry %d)", s.Location, s.Item+1)
	default:
		return s.Location
	}
}

// Document is a loaded article. Body is Markdown.
type Document struct {
	Source    Source
	Title     string
	Byline    string
	Link      string
	Body      string
	FetchedAt time.Time
	// Stale marks a cached copy served because a fresh load failed.
	Stale bool
}
