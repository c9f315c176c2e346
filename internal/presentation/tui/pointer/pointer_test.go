package pointer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/tesso57/folio/internal/application/panel"
)

func TestDocumentDispatch(t *testing.T) {
	d := NewDocument()
	var got []panel.Point
	remove := d.AddPointerDownListener(func(p panel.Point) { got = append(got, p) })
	assert.Equal(t, 1, d.Len())

	d.Dispatch(panel.Point{X: 3, Y: 4})
	assert.Equal(t, []panel.Point{{X: 3, Y: 4}}, got)

	remove()
	remove()
	assert.Equal(t, 0, d.Len())

	d.Dispatch(panel.Point{X: 1, Y: 1})
	assert.Len(t, got, 1)
}

func TestDocumentListenerRemovesItselfDuringDispatch(t *testing.T) {
	d := NewDocument()
	calls := 0
	var remove func()
	remove = d.AddPointerDownListener(func(panel.Point) {
		calls++
		remove()
	})
	other := 0
	d.AddPointerDownListener(func(panel.Point) { other++ })

	d.Dispatch(panel.Point{})
	d.Dispatch(panel.Point{})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
	assert.Equal(t, 1, d.Len())
}

func TestDocumentWorksWithController(t *testing.T) {
	d := NewDocument()
	c := panel.New(nil, panel.WithEventTarget(d))
	c.SetBoundary(panel.Rect{Width: 10, Height: 10})

	c.Toggle()
	assert.Equal(t, 1, d.Len())

	d.Dispatch(panel.Point{X: 20, Y: 2})
	assert.False(t, c.IsOpen())
	assert.Equal(t, 0, d.Len())
}

func TestIsPointerDown(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want bool
	}{
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, true},
		{"release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, false},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, false},
		{"wheel", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPointerDown(tt.msg))
		})
	}
	assert.Equal(t, panel.Point{X: 7, Y: 9}, PointOf(tea.MouseMsg{X: 7, Y: 9}))
}
