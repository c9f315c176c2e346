// Package panel implements the article parameters panel: its open/closed state,
// the pending selection and the apply/reset protocol.
package panel

import (
	"github.com/charmbracelet/log"
	"github.com/tesso57/folio/internal/domain/article"
	"github.com/tesso57/folio/internal/logging"
)

// Point is a cell position on screen.
type Point struct {
	X int
	Y int
}

// Rect is a screen rectangle; Width and Height are exclusive bounds.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Boundary reports whether a point lies inside the rendered panel.
type Boundary interface {
	Contains(p Point) bool
}

// EventTarget delivers pointer-down events to registered listeners.
// The returned func removes the listener and is safe to call more than once.
type EventTarget interface {
	AddPointerDownListener(fn func(Point)) (remove func())
}

// Controller owns the panel visibility and the pending selection.
type Controller struct {
	open     bool
	pending  article.State
	onChange func(article.State)
	target   EventTarget
	boundary Boundary
	release  func()
	logger   *log.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for state transitions.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithEventTarget sets where the outside-click listener is registered.
func WithEventTarget(target EventTarget) Option {
	return func(c *Controller) {
		c.target = target
	}
}

// New returns a closed controller seeded with the default selection.
// onChange receives every committed state; it may be nil.
func New(onChange func(article.State), opts ...Option) *Controller {
	c := &Controller{
		pending:  article.Default(),
		onChange: onChange,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.OrDiscard(c.logger)
	return c
}

// IsOpen reports whether the panel is open.
func (c *Controller) IsOpen() bool {
	return c.open
}

// Pending returns a copy of the in-progress selection.
func (c *Controller) Pending() article.State {
	return c.pending
}

// Listening reports whether the outside-click listener is registered.
func (c *Controller) Listening() bool {
	return c.release != nil
}

// SetBoundary updates the area treated as inside the panel.
// A nil boundary disables outside-click dismissal.
func (c *Controller) SetBoundary(b Boundary) {
	c.boundary = b
}

// Toggle opens a closed panel and closes an open one.
func (c *Controller) Toggle() {
	c.setOpen(!c.open)
}

// Close forces the panel closed. Pending edits are kept.
func (c *Controller) Close() {
	c.setOpen(false)
}

// Teardown closes the panel and drops pending edits. The controller can be
// reused afterwards as if freshly created.
func (c *Controller) Teardown() {
	c.setOpen(false)
	c.pending = article.Default()
}

// SelectField replaces the pending option of one field. It neither closes the
// panel nor notifies the consumer.
func (c *Controller) SelectField(field article.Field, option article.Option) {
	c.pending = c.pending.With(field, option)
	c.logger.Debug("field selected", "field", field, "value", option.Value)
}

// Apply commits the pending selection to the consumer.
func (c *Controller) Apply() {
	c.logger.Info("apply", "state", c.pending)
	c.commit(c.pending)
}

// Reset restores the default selection and commits it immediately.
func (c *Controller) Reset() {
	c.pending = article.Default()
	c.logger.Info("reset")
	c.commit(c.pending)
}

func (c *Controller) commit(state article.State) {
	if c.onChange != nil {
		c.onChange(state)
	}
}

func (c *Controller) setOpen(open bool) {
	if c.open == open {
		return
	}
	c.open = open
	if open {
		c.listen()
		c.logger.Debug("panel opened")
		return
	}
	c.unlisten()
	c.logger.Debug("panel closed")
}

func (c *Controller) listen() {
	if c.target == nil || c.release != nil {
		return
	}
	c.release = c.target.AddPointerDownListener(c.handlePointerDown)
}

func (c *Controller) unlisten() {
	if c.release == nil {
		return
	}
	release := c.release
	c.release = nil
	release()
}

func (c *Controller) handlePointerDown(p Point) {
	if !c.open || c.boundary == nil || c.boundary.Contains(p) {
		return
	}
	c.logger.Debug("outside click", "x", p.X, "y", p.Y)
	c.setOpen(false)
}
