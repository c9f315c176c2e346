// Package hit maps rendered screen cells back to panel actions.
package hit

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/folio/internal/application/panel"
	"github.com/tesso57/folio/internal/domain/article"
)

// Kind is what a press on a region does.
type Kind int

const (
	None Kind = iota
	Toggle
	Focus
	Expand
	Pick
	Apply
	Reset
)

// Action describes the effect of pressing a region.
type Action struct {
	Kind    Kind
	Control int
	Field   article.Field
	Option  article.Option
}

// Region is a pressable rectangle.
type Region struct {
	Area   panel.Rect
	Action Action
}

// Block is rendered output plus the regions inside it, relative to its top-left cell.
type Block struct {
	View    string
	Regions []Region
}

// Text wraps a plain string without regions.
func Text(view string) Block {
	return Block{View: view}
}

// Width returns the widest line of the block.
func (b Block) Width() int {
	return lipgloss.Width(b.View)
}

// Height returns the number of lines of the block.
func (b Block) Height() int {
	if b.View == "" {
		return 0
	}
	return lipgloss.Height(b.View)
}

// Offset returns a copy of b with all regions moved by dx, dy.
func (b Block) Offset(dx, dy int) Block {
	regions := make([]Region, len(b.Regions))
	for i, r := range b.Regions {
		r.Area.X += dx
		r.Area.Y += dy
		regions[i] = r
	}
	return Block{View: b.View, Regions: regions}
}

// Stack joins blocks vertically, left aligned. Empty blocks are skipped.
func Stack(blocks ...Block) Block {
	var views []string
	var regions []Region
	y := 0
	for _, b := range blocks {
		if b.View == "" {
			continue
		}
		views = append(views, b.View)
		regions = append(regions, b.Offset(0, y).Regions...)
		y += b.Height()
	}
	return Block{View: lipgloss.JoinVertical(lipgloss.Left, views...), Regions: regions}
}

// Row joins blocks horizontally, top aligned, separated by gap columns.
func Row(gap int, blocks ...Block) Block {
	var views []string
	var regions []Region
	x := 0
	for i, b := range blocks {
		if i > 0 && gap > 0 {
			views = append(views, lipgloss.NewStyle().Width(gap).Render(""))
			x += gap
		}
		views = append(views, b.View)
		regions = append(regions, b.Offset(x, 0).Regions...)
		x += b.Width()
	}
	return Block{View: lipgloss.JoinHorizontal(lipgloss.Top, views...), Regions: regions}
}

// Find returns the action of the first region containing p.
func Find(regions []Region, p panel.Point) (Action, bool) {
	for _, r := range regions {
		if r.Area.Contains(p) {
			return r.Action, true
		}
	}
	return Action{}, false
}
