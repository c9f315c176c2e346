package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/folio/internal/domain/article"
	"github.com/tesso57/folio/internal/logging"
)

type fakeTarget struct {
	listeners map[int]func(Point)
	nextID    int
	added     int
	removed   int
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{listeners: make(map[int]func(Point))}
}

func (f *fakeTarget) AddPointerDownListener(fn func(Point)) func() {
	id := f.nextID
	f.nextID++
	f.listeners[id] = fn
	f.added++
	return func() {
		if _, ok := f.listeners[id]; ok {
			delete(f.listeners, id)
			f.removed++
		}
	}
}

func (f *fakeTarget) press(p Point) {
	for _, fn := range f.listeners {
		fn(p)
	}
}

type recorder struct {
	calls []article.State
}

func (r *recorder) onChange(s article.State) {
	r.calls = append(r.calls, s)
}

func (r *recorder) last(t *testing.T) article.State {
	t.Helper()
	require.NotEmpty(t, r.calls, "onChange was never called")
	return r.calls[len(r.calls)-1]
}

var panelRect = Rect{X: 0, Y: 0, Width: 40, Height: 20}

func newTestController(t *testing.T) (*Controller, *fakeTarget, *recorder) {
	t.Helper()
	target := newFakeTarget()
	rec := &recorder{}
	logger, _ := logging.NewTestLogger()
	c := New(rec.onChange, WithEventTarget(target), WithLogger(logger))
	c.SetBoundary(panelRect)
	return c, target, rec
}

func option(field article.Field, value string) article.Option {
	for _, o := range article.OptionsFor(field) {
		if o.Value == value {
			return o
		}
	}
	return article.Option{Value: value, Label: value}
}

func TestNewStartsClosedWithDefaults(t *testing.T) {
	c, target, rec := newTestController(t)

	assert.False(t, c.IsOpen())
	assert.True(t, c.Pending().Equal(article.Default()))
	assert.False(t, c.Listening())
	assert.Empty(t, target.listeners)
	assert.Empty(t, rec.calls)
}

func TestSelectFieldReplacesOnlyThatField(t *testing.T) {
	for _, field := range article.Fields {
		for _, opt := range article.OptionsFor(field) {
			t.Run(field.String()+"/"+opt.Value, func(t *testing.T) {
				c, _, rec := newTestController(t)
				before := c.Pending()

				c.SelectField(field, opt)

				after := c.Pending()
				assert.Equal(t, opt, after.Get(field))
				for _, other := range article.Fields {
					if other != field {
						assert.Equal(t, before.Get(other), after.Get(other))
					}
				}
				assert.False(t, c.IsOpen())
				assert.Empty(t, rec.calls)
			})
		}
	}
}

func TestSelectFieldKeepsPanelOpen(t *testing.T) {
	c, _, rec := newTestController(t)
	c.Toggle()

	c.SelectField(article.FontColor, option(article.FontColor, "#5F3FCE"))

	assert.True(t, c.IsOpen())
	assert.Empty(t, rec.calls)
}

func TestApplyCommitsPending(t *testing.T) {
	c, _, rec := newTestController(t)
	c.Toggle()
	c.SelectField(article.FontFamily, option(article.FontFamily, "Ubuntu"))
	c.SelectField(article.BackgroundColor, option(article.BackgroundColor, "#000000"))
	c.SelectField(article.FontColor, option(article.FontColor, "#FFFFFF"))

	c.Apply()

	require.Len(t, rec.calls, 1)
	assert.Equal(t, c.Pending(), rec.last(t))
	assert.True(t, c.IsOpen(), "apply must not close the panel")
}

func TestApplyScenarioFontSize(t *testing.T) {
	c, _, rec := newTestController(t)

	c.SelectField(article.FontSize, option(article.FontSize, "24px"))
	c.Apply()

	require.Len(t, rec.calls, 1)
	got := rec.calls[0]
	assert.Equal(t, "Open Sans", got.FontFamilyOption.Value)
	assert.Equal(t, "24px", got.FontSizeOption.Value)
	assert.Equal(t, "#000000", got.FontColor.Value)
	assert.Equal(t, "#FFFFFF", got.BackgroundColor.Value)
	assert.Equal(t, "800px", got.ContentWidth.Value)
}

func TestResetRestoresDefaultsAndCommits(t *testing.T) {
	c, _, rec := newTestController(t)
	c.Toggle()
	c.SelectField(article.FontSize, option(article.FontSize, "38px"))
	c.SelectField(article.ContentWidth, option(article.ContentWidth, "1394px"))

	c.Reset()

	assert.True(t, c.Pending().Equal(article.Default()))
	require.Len(t, rec.calls, 1)
	assert.True(t, rec.last(t).Equal(article.Default()))
	assert.True(t, c.IsOpen(), "reset must not close the panel")
}

func TestApplyAfterResetCommitsDefaults(t *testing.T) {
	c, _, rec := newTestController(t)
	c.SelectField(article.FontSize, option(article.FontSize, "38px"))
	c.Reset()
	c.Apply()

	require.Len(t, rec.calls, 2)
	assert.True(t, rec.calls[1].Equal(article.Default()))
}

func TestNilOnChangeIsAllowed(t *testing.T) {
	c := New(nil)
	assert.NotPanics(t, func() {
		c.Apply()
		c.Reset()
	})
}

func TestToggleAlternates(t *testing.T) {
	for n := 0; n <= 7; n++ {
		c, _, _ := newTestController(t)
		for range n {
			c.Toggle()
		}
		assert.Equalf(t, n%2 == 1, c.IsOpen(), "after %d toggles", n)
		assert.Equalf(t, n%2 == 1, c.Listening(), "listener after %d toggles", n)
	}
}

func TestListenerRegisteredOnlyWhileOpen(t *testing.T) {
	c, target, _ := newTestController(t)

	c.Toggle()
	assert.Len(t, target.listeners, 1)

	c.Toggle()
	assert.Empty(t, target.listeners)

	c.Toggle()
	c.Toggle()
	c.Toggle()
	assert.Len(t, target.listeners, 1)
	assert.Equal(t, target.added-target.removed, 1)
}

func TestOutsidePressWhileClosedIsIgnored(t *testing.T) {
	c, target, rec := newTestController(t)

	target.press(Point{X: 100, Y: 100})
	c.handlePointerDown(Point{X: 100, Y: 100})

	assert.False(t, c.IsOpen())
	assert.Empty(t, rec.calls)
}

func TestPressInsideKeepsPanelOpen(t *testing.T) {
	c, target, rec := newTestController(t)
	c.Toggle()

	target.press(Point{X: 5, Y: 5})

	assert.True(t, c.IsOpen())
	assert.True(t, c.Listening())
	assert.Empty(t, rec.calls)
}

func TestPressOutsideClosesAndReleasesListener(t *testing.T) {
	c, target, rec := newTestController(t)
	c.Toggle()
	c.SelectField(article.FontSize, option(article.FontSize, "24px"))

	target.press(Point{X: 40, Y: 3})

	assert.False(t, c.IsOpen())
	assert.False(t, c.Listening())
	assert.Empty(t, target.listeners)
	assert.Empty(t, rec.calls, "dismissal must not commit")
	assert.Equal(t, "24px", c.Pending().FontSizeOption.Value, "dismissal keeps pending edits")
}

func TestNilBoundaryNeverDismisses(t *testing.T) {
	c, target, _ := newTestController(t)
	c.SetBoundary(nil)
	c.Toggle()

	target.press(Point{X: 500, Y: 500})

	assert.True(t, c.IsOpen())
}

func TestCloseReleasesListener(t *testing.T) {
	c, target, _ := newTestController(t)
	c.Toggle()

	c.Close()
	c.Close()

	assert.False(t, c.IsOpen())
	assert.Empty(t, target.listeners)
	assert.Equal(t, 1, target.removed)
}

func TestTeardownReleasesListenerAndDropsEdits(t *testing.T) {
	c, target, rec := newTestController(t)
	c.Toggle()
	c.SelectField(article.FontFamily, option(article.FontFamily, "Merriweather"))

	c.Teardown()

	assert.False(t, c.IsOpen())
	assert.Empty(t, target.listeners)
	assert.True(t, c.Pending().Equal(article.Default()))
	assert.Empty(t, rec.calls)
}

func TestWithoutEventTargetStillToggles(t *testing.T) {
	c := New(nil)
	c.Toggle()
	assert.True(t, c.IsOpen())
	assert.False(t, c.Listening())
	c.Toggle()
	assert.False(t, c.IsOpen())
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{2, 3}, true},
		{Point{5, 4}, true},
		{Point{6, 4}, false},
		{Point{5, 5}, false},
		{Point{1, 3}, false},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, r.Contains(tt.p), "%+v", tt.p)
	}
}
