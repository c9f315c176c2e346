package tui

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"
	"github.com/tesso57/folio/internal/application/settings"
	"github.com/tesso57/folio/internal/application/usecase"
	"github.com/tesso57/folio/internal/domain/document"
)

type stubLoader struct {
	mock.Mock
}

func (s *stubLoader) Load(_ context.Context, src document.Source) (*document.Document, error) {
	args := s.Called(src)
	doc, _ := args.Get(0).(*document.Document)
	return doc, args.Error(1)
}

type stubHistory struct {
	sources []string
}

func (s *stubHistory) Remember(source string) error {
	s.sources = append([]string{source}, s.sources...)
	return nil
}

func (s *stubHistory) Recent() []string {
	return append([]string(nil), s.sources...)
}

func (s *stubHistory) Forget(index int) error {
	if index < 0 || index >= len(s.sources) {
		return fmt.Errorf("invalid recent source index: %d", index)
	}
	s.sources = append(s.sources[:index], s.sources[index+1:]...)
	return nil
}

func testSettings() settings.Settings {
	return settings.Settings{
		KeyMap: settings.KeyMapConfig{
			Up: "k,up", Down: "j,down", Left: "h,left", Right: "l,right",
			UpPage: "ctrl+u,pgup", DownPage: "ctrl+d,pgdown", Top: "g,home", Bottom: "G,end",
			TogglePanel: "p", NextField: "tab", PrevField: "shift+tab", Select: "enter",
			Apply: "ctrl+s", Reset: "ctrl+r", Back: "esc", OpenSource: "o", Reload: "r",
			OpenLink: "b", Forget: "ctrl+x", Quit: "q",
		},
		Theme: settings.ThemeConfig{Accent: "205", Border: "63", Muted: "240", GlamourStyle: "notty"},
	}
}

func newTestModel(loader usecase.DocumentLoader, history usecase.SourceHistory) *Model {
	svc := usecase.NewPreviewService(loader, nil, history, nil)
	return NewModel(testSettings(), svc, document.Source{Kind: document.Sample}, nil)
}

func testDocument() *document.Document {
	return &document.Document{
		Source: document.Source{Kind: document.Sample},
		Title:  "Typography",
		Byline: "Ada",
		Link:   "https://example.com/typography",
		Body:   "The measure of a line.\n\nColour and contrast.",
	}
}
