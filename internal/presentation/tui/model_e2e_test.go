package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/folio/internal/application/usecase"
	"github.com/tesso57/folio/internal/domain/document"
	docinfra "github.com/tesso57/folio/internal/infrastructure/document"
	"github.com/tesso57/folio/internal/logging"
)

func waitForString(t *testing.T, tm *teatest.TestModel, s string) {
	t.Helper()
	teatest.WaitFor(
		t,
		tm.Output(),
		func(b []byte) bool {
			return strings.Contains(string(b), s)
		},
		teatest.WithCheckInterval(time.Millisecond*50),
		teatest.WithDuration(time.Second*3),
	)
}

func TestPanelFlowEndToEnd(t *testing.T) {
	logger, buf := logging.NewTestLogger()
	svc := usecase.NewPreviewService(docinfra.Loader{}, nil, nil, logger)
	m := NewModel(testSettings(), svc, document.Source{Kind: document.Sample}, logger)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))
	waitForString(t, tm, "Typography in the Terminal")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	waitForString(t, tm, "SET PARAMETERS")

	tm.Send(tea.KeyMsg{Type: tea.KeyRight})
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlS})
	waitForString(t, tm, "Applied: Ubuntu")

	tm.Send(tea.MouseMsg{X: 100, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	waitForString(t, tm, "→")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	waitForString(t, tm, "Are you sure you want to quit?")
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second*3))

	final, ok := tm.FinalModel(t).(*Model)
	require.True(t, ok)
	assert.False(t, final.panel.IsOpen())
	assert.Equal(t, "Ubuntu", final.state.Article.FontFamilyOption.Value)
	assert.Contains(t, buf.String(), "apply")
}
