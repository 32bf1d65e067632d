package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/jac-oblong/planit/config"
	"github.com/jac-oblong/planit/hub"
)

func (BlankView) Draw(Screen, Rect, *config.StyleSet) {
	// the application clears the screen before each frame, so an
	// empty pane needs no painting
}

func (BlankView) Update(hub.Command, func(hub.Command)) {
}

func (v OpeningView) Draw(s Screen, area Rect, styles *config.StyleSet) {
	lines := []string{
		v.Name,
		v.Tagline,
		"",
		"version: " + v.Version,
		"repo: " + v.Repo,
	}

	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}

	const hpad, vpad = 4, 2
	boxW := width + 2*hpad + 2
	boxH := len(lines) + 2*vpad + 2
	if boxW > area.Width {
		boxW = area.Width
	}
	if boxH > area.Height {
		boxH = area.Height
	}
	if boxW < 2 || boxH < 2 {
		return
	}

	box := Rect{
		X:      area.X + (area.Width-boxW)/2,
		Y:      area.Y + (area.Height-boxH)/2,
		Width:  boxW,
		Height: boxH,
	}
	drawBox(s, box, TcellStyle(styles.Border))

	for i, line := range lines {
		y := box.Y + 1 + vpad + i
		if y >= box.Y+box.Height-1 {
			break
		}

		style := TcellStyle(styles.Basic)
		if i == 0 {
			style = TcellStyle(config.Style{Fg: config.ColorMagenta})
		}

		x := box.X + (box.Width-runewidth.StringWidth(line))/2
		if x < box.X+1 {
			x = box.X + 1
		}
		s.Start().X(x).Y(y).Limit(box.X + box.Width - 1).
			Style(style).Msg(line).Print()
	}
}

func (OpeningView) Update(hub.Command, func(hub.Command)) {
}

// drawBox draws a rounded border along the edge of area.
func drawBox(s Screen, area Rect, style tcell.Style) {
	right := area.X + area.Width - 1
	bottom := area.Y + area.Height - 1

	for x := area.X + 1; x < right; x++ {
		s.SetCell(x, area.Y, '─', style)
		s.SetCell(x, bottom, '─', style)
	}
	for y := area.Y + 1; y < bottom; y++ {
		s.SetCell(area.X, y, '│', style)
		s.SetCell(right, y, '│', style)
	}
	s.SetCell(area.X, area.Y, '╭', style)
	s.SetCell(right, area.Y, '╮', style)
	s.SetCell(area.X, bottom, '╰', style)
	s.SetCell(right, bottom, '╯', style)
}

// NewPaneView creates a pane tree holding a single pane with the
// given view, which starts out focused.
func NewPaneView(initial View) *PaneView {
	leaf := &paneNode{view: initial}
	return &PaneView{root: leaf, focused: leaf}
}

func (p *PaneView) Draw(s Screen, area Rect, styles *config.StyleSet) {
	p.root.draw(s, area, styles)
}

// Update handles the commands that change the pane tree itself and
// routes everything else to the focused pane.
func (p *PaneView) Update(cmd hub.Command, push func(hub.Command)) {
	switch c := cmd.(type) {
	case hub.SplitViewCommand:
		p.splitFocused(c.Direction())
	case hub.MoveFocusCommand:
		p.moveFocus(c.Direction())
	default:
		p.focused.view.Update(cmd, push)
	}
}

// Panes returns the number of panes currently open.
func (p *PaneView) Panes() int {
	return len(p.root.leaves(nil))
}

// FocusedView returns the view held by the focused pane.
func (p *PaneView) FocusedView() View {
	return p.focused.view
}

// splitFocused turns the focused pane into a split holding the old
// content and a new blank pane. Focus moves to the new pane.
func (p *PaneView) splitFocused(dir hub.SplitDirection) {
	node := p.focused
	node.first = &paneNode{view: node.view}
	node.second = &paneNode{view: BlankView{}}
	node.view = nil
	node.split = dir
	p.focused = node.second
}

// moveFocus steps focus to the neighboring pane. Left and Up step
// backwards in pane order, Right and Down step forwards; focus stays
// put at either end.
func (p *PaneView) moveFocus(dir hub.Direction) {
	leaves := p.root.leaves(nil)
	idx := -1
	for i, leaf := range leaves {
		if leaf == p.focused {
			idx = i
			break
		}
	}

	switch dir {
	case hub.Left, hub.Up:
		if idx > 0 {
			p.focused = leaves[idx-1]
		}
	case hub.Right, hub.Down:
		if idx >= 0 && idx < len(leaves)-1 {
			p.focused = leaves[idx+1]
		}
	}
}

func (n *paneNode) draw(s Screen, area Rect, styles *config.StyleSet) {
	if area.Width <= 0 || area.Height <= 0 {
		return
	}

	if n.view != nil {
		n.view.Draw(s, area, styles)
		return
	}

	first, second := splitArea(area, n.split)
	n.first.draw(s, first, styles)
	n.second.draw(s, second, styles)
}

func (n *paneNode) leaves(acc []*paneNode) []*paneNode {
	if n.view != nil {
		return append(acc, n)
	}
	acc = n.first.leaves(acc)
	return n.second.leaves(acc)
}

// splitArea halves area in two. The direction names the dividing
// line, not the stacking: a horizontal split places its panes on top
// of each other.
func splitArea(area Rect, dir hub.SplitDirection) (Rect, Rect) {
	if dir == hub.Horizontal {
		top := Rect{
			X:      area.X,
			Y:      area.Y,
			Width:  area.Width,
			Height: area.Height / 2,
		}
		bottom := Rect{
			X:      area.X,
			Y:      area.Y + top.Height,
			Width:  area.Width,
			Height: area.Height - top.Height,
		}
		return top, bottom
	}

	left := Rect{
		X:      area.X,
		Y:      area.Y,
		Width:  area.Width / 2,
		Height: area.Height,
	}
	right := Rect{
		X:      area.X + left.Width,
		Y:      area.Y,
		Width:  area.Width - left.Width,
		Height: area.Height,
	}
	return left, right
}
