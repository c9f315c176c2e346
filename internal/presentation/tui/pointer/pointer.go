// Package pointer turns mouse presses into pointer-down notifications for
// listeners registered by the panel controller.
package pointer

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/folio/internal/application/panel"
)

// Document is the event target covering the whole terminal screen.
type Document struct {
	mu        sync.Mutex
	next      int
	listeners map[int]func(panel.Point)
	order     []int
}

// NewDocument returns a Document without listeners.
func NewDocument() *Document {
	return &Document{listeners: make(map[int]func(panel.Point))}
}

// AddPointerDownListener registers fn. The returned function removes it and
// is safe to call more than once.
func (d *Document) AddPointerDownListener(fn func(panel.Point)) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.next
	d.next++
	d.listeners[id] = fn
	d.order = append(d.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { d.remove(id) })
	}
}

func (d *Document) remove(id int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.listeners, id)
	for i, v := range d.order {
		if v == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Dispatch notifies every listener registered at the time of the call.
// Listeners may remove themselves while being notified.
func (d *Document) Dispatch(p panel.Point) {
	d.mu.Lock()
	fns := make([]func(panel.Point), 0, len(d.order))
	for _, id := range d.order {
		fns = append(fns, d.listeners[id])
	}
	d.mu.Unlock()

	for _, fn := range fns {
		fn(p)
	}
}

// Len returns the number of registered listeners.
func (d *Document) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}

// IsPointerDown reports whether msg is a button press. Wheel events and
// releases are not.
func IsPointerDown(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && !tea.MouseEvent(msg).IsWheel()
}

// PointOf returns the cell msg happened at.
func PointOf(msg tea.MouseMsg) panel.Point {
	return panel.Point{X: msg.X, Y: msg.Y}
}
