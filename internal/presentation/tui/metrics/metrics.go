// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeaderLines = 2

	// ArrowWidth is the width of the bordered arrow toggle.
	ArrowWidth = 5
	// PanelWidth is the outer width of the open parameters panel.
	PanelWidth       = 46
	PanelPadX        = 2
	PanelPadY        = 1
	PanelBorderRight = 1
	// PanelInnerWidth is the width left for the form controls.
	PanelInnerWidth = PanelWidth - 2*PanelPadX - PanelBorderRight

	// PxPerColumn converts content widths given in pixels to terminal columns.
	PxPerColumn = 12
)
