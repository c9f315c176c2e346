// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/tesso57/folio/internal/domain/document"
	"github.com/tesso57/folio/internal/logging"
)

// ErrNoDocument is returned when neither the loader nor the cache can
// provide a document.
var ErrNoDocument = errors.New("no document available")

// ErrNoHistory is returned when no source history is configured.
var ErrNoHistory = errors.New("no source history")

// DocumentLoader abstracts reading a document from its source.
type DocumentLoader interface {
	Load(ctx context.Context, src document.Source) (*document.Document, error)
}

// DocumentCache abstracts the offline copy of remote documents.
type DocumentCache interface {
	Get(src document.Source) (*document.Document, error)
	Put(doc *document.Document) error
}

// SourceHistory remembers recently opened sources.
type SourceHistory interface {
	Remember(source string) error
	Recent() []string
	Forget(index int) error
}

// PreviewService loads the document shown in the preview.
type PreviewService struct {
	Loader  DocumentLoader
	Cache   DocumentCache
	History SourceHistory
	Logger  *log.Logger
}

// NewPreviewService constructs a PreviewService. cache and history may be nil.
func NewPreviewService(loader DocumentLoader, cache DocumentCache, history SourceHistory, logger *log.Logger) *PreviewService {
	return &PreviewService{
		Loader:  loader,
		Cache:   cache,
		History: history,
		Logger:  logging.OrDiscard(logger),
	}
}

// Load reads src. Remote documents are cached after a successful load and
// served from the cache, marked stale, when loading fails.
func (s *PreviewService) Load(ctx context.Context, src document.Source) (*document.Document, error) {
	if s == nil || s.Loader == nil {
		return nil, ErrNoDocument
	}
	logger := logging.OrDiscard(s.Logger)

	doc, err := s.Loader.Load(ctx, src)
	if err == nil && doc != nil {
		logger.Info("document loaded", "source", src.Key(), "title", doc.Title)
		s.remember(src)
		if src.Remote() && s.Cache != nil {
			if cacheErr := s.Cache.Put(doc); cacheErr != nil {
				logger.Warn("document cache write failed", "source", src.Key(), "err", cacheErr)
			}
		}
		return doc, nil
	}
	if err == nil {
		err = ErrNoDocument
	}

	if !src.Remote() || s.Cache == nil {
		return nil, err
	}

	cached, cacheErr := s.Cache.Get(src)
	if cacheErr != nil {
		logger.Warn("document cache read failed", "source", src.Key(), "err", cacheErr)
		return nil, err
	}
	if cached == nil {
		return nil, err
	}

	logger.Warn("serving cached document", "source", src.Key(), "err", err)
	cached.Stale = true
	return cached, nil
}

// Recent returns remembered sources, or nil without a history.
func (s *PreviewService) Recent() []string {
	if s == nil || s.History == nil {
		return nil
	}
	return s.History.Recent()
}

// Forget drops the remembered source at index, counting from zero.
func (s *PreviewService) Forget(index int) error {
	if s == nil || s.History == nil {
		return ErrNoHistory
	}
	if err := s.History.Forget(index); err != nil {
		return fmt.Errorf("forget recent source: %w", err)
	}
	return nil
}

func (s *PreviewService) remember(src document.Source) {
	if s.History == nil || src.Kind == document.Sample {
		return
	}
	if err := s.History.Remember(src.Location); err != nil {
		logging.OrDiscard(s.Logger).Warn("failed to remember source", "source", src.Location, "err", fmt.Errorf("remember: %w", err))
	}
}
