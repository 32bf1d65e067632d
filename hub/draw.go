package hub

// DrawOptions controls how the screen is drawn.
type DrawOptions struct {
	Mode      Mode // mode to paint in the status line
	ForceSync bool // force a full screen sync
}
