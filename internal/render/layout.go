package render

// Layout splits the screen into side-by-side creature panels above the HUD.
type Layout struct {
	Width   int // in terminal columns
	Height  int // in terminal rows
	HUDRows int
}

// NewLayout creates a layout for a screen of w×h cells.
func NewLayout(w, h int) Layout {
	return Layout{Width: w, Height: h, HUDRows: 6}
}

// PanelHeight is the number of rows available to panels.
func (l Layout) PanelHeight() int { return max(0, l.Height-l.HUDRows) }

// HUDTop is the first HUD row.
func (l Layout) HUDTop() int { return l.PanelHeight() }

// Column returns the left edge and width of panel i out of n. Columns are
// separated by one blank column.
func (l Layout) Column(i, n int) (x, width int) {
	if n <= 0 || i < 0 || i >= n {
		return 0, 0
	}
	width = (l.Width - (n - 1)) / n
	x = i * (width + 1)
	return x, max(0, width)
}
