package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/folio/internal/domain/article"
	"github.com/tesso57/folio/internal/presentation/tui/components/hit"
	"github.com/tesso57/folio/internal/presentation/tui/components/paramsform"
	"github.com/tesso57/folio/internal/presentation/tui/intent"
	"github.com/tesso57/folio/internal/presentation/tui/pointer"
	"github.com/tesso57/folio/internal/presentation/tui/state"
)

// HandleMouseMsg routes pointer-down events. The event target is notified
// first so that an outside press closes the panel before hit-testing. It
// reports false for events the preview viewport should handle.
func HandleMouseMsg(s *state.ModelState, msg tea.MouseMsg, deps Deps) bool {
	if s.Session != state.PreviewView || s.Help.ShowAll {
		return false
	}
	if !pointer.IsPointerDown(msg) {
		return false
	}

	p := pointer.PointOf(msg)
	wasOpen := deps.Panel.IsOpen()
	if deps.Pointer != nil {
		deps.Pointer.Dispatch(p)
	}
	if wasOpen && !deps.Panel.IsOpen() {
		collapse(s)
		return true
	}

	action, ok := hit.Find(s.Aside.Regions, p)
	if !ok {
		if s.Expanded != paramsform.NoControl && s.PanelBounds.Contains(p) {
			collapse(s)
			return true
		}
		return false
	}
	handleAction(s, action, deps)
	return true
}

func handleAction(s *state.ModelState, action hit.Action, deps Deps) {
	switch action.Kind {
	case hit.Toggle:
		deps.Panel.Toggle()
		collapse(s)
	case hit.Focus:
		s.Focus = action.Control
		if s.Expanded != action.Control {
			collapse(s)
		}
	case hit.Expand:
		s.Focus = action.Control
		if s.Expanded == action.Control {
			collapse(s)
			return
		}
		expand(s, action.Control, deps)
	case hit.Pick:
		s.Focus = action.Control
		deps.Panel.SelectField(action.Field, action.Option)
		collapse(s)
	case hit.Apply:
		s.Focus = paramsform.ControlApply
		apply(s, deps)
	case hit.Reset:
		s.Focus = paramsform.ControlReset
		reset(s, deps)
	}
}

func handlePanelIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	if s.Expanded != paramsform.NoControl {
		return handleExpandedIntent(s, in, deps)
	}

	switch in.Type {
	case intent.TogglePanel:
		deps.Panel.Toggle()
	case intent.Back:
		deps.Panel.Close()
	case intent.NextField, intent.Down:
		moveFocus(s, 1)
	case intent.PrevField, intent.Up:
		moveFocus(s, -1)
	case intent.PrevOption:
		stepFocused(s, -1, deps)
	case intent.NextOption:
		stepFocused(s, 1, deps)
	case intent.Select:
		activate(s, deps)
	case intent.Apply:
		apply(s, deps)
	case intent.Reset:
		reset(s, deps)
	default:
		return nil, false
	}
	return nil, true
}

func handleExpandedIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	field, _ := paramsform.FieldFor(s.Expanded)
	count := len(article.OptionsFor(field))

	switch in.Type {
	case intent.Up, intent.PrevOption:
		s.Cursor = wrap(s.Cursor-1, count)
	case intent.Down, intent.NextOption:
		s.Cursor = wrap(s.Cursor+1, count)
	case intent.Select:
		options := article.OptionsFor(field)
		if s.Cursor >= 0 && s.Cursor < len(options) {
			deps.Panel.SelectField(field, options[s.Cursor])
		}
		collapse(s)
	case intent.Back:
		collapse(s)
	case intent.NextField:
		collapse(s)
		moveFocus(s, 1)
	case intent.PrevField:
		collapse(s)
		moveFocus(s, -1)
	case intent.TogglePanel:
		collapse(s)
		deps.Panel.Toggle()
	case intent.Apply:
		collapse(s)
		apply(s, deps)
	case intent.Reset:
		collapse(s)
		reset(s, deps)
	default:
		return nil, false
	}
	return nil, true
}

func activate(s *state.ModelState, deps Deps) {
	switch {
	case s.Focus == paramsform.ControlApply:
		apply(s, deps)
	case s.Focus == paramsform.ControlReset:
		reset(s, deps)
	case paramsform.IsSelect(s.Focus):
		expand(s, s.Focus, deps)
	default:
		stepFocused(s, 1, deps)
	}
}

func expand(s *state.ModelState, control int, deps Deps) {
	field, ok := paramsform.FieldFor(control)
	if !ok || !paramsform.IsSelect(control) {
		return
	}
	s.Expanded = control
	s.Cursor = max(article.IndexOf(field, deps.Panel.Pending().Get(field)), 0)
}

func collapse(s *state.ModelState) {
	s.Expanded = paramsform.NoControl
	s.Cursor = 0
}

func moveFocus(s *state.ModelState, delta int) {
	s.Focus = wrap(s.Focus+delta, paramsform.ControlCount)
}

func stepFocused(s *state.ModelState, delta int, deps Deps) {
	field, ok := paramsform.FieldFor(s.Focus)
	if !ok {
		return
	}
	current := deps.Panel.Pending().Get(field)
	deps.Panel.SelectField(field, article.Step(field, current, delta))
}

func apply(s *state.ModelState, deps Deps) {
	deps.Panel.Apply()
	s.StatusMessage = "Applied: " + describe(deps.Panel.Pending())
}

func reset(s *state.ModelState, deps Deps) {
	deps.Panel.Reset()
	s.StatusMessage = "Reset to defaults"
}

func describe(st article.State) string {
	return fmt.Sprintf("%s, %s, %s on %s, %s",
		st.FontFamilyOption.Label,
		st.FontSizeOption.Label,
		st.FontColor.Label,
		st.BackgroundColor.Label,
		st.ContentWidth.Label,
	)
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
