// Package ui implements the terminal interface for planit: the screen
// abstraction over tcell, the status line, and the view tree that the
// application draws into.
package ui

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jac-oblong/planit/config"
	"github.com/jac-oblong/planit/hub"
)

// StatusLineHeight is the number of rows the status line occupies at
// the bottom of the screen. The first row shows the mode and the
// galaxy title, the second row is the command and message line.
const StatusLineHeight = 2

// BlankView is the view placed in newly opened panes. It draws
// nothing and ignores every command.
type BlankView struct{}

// OpeningView is the view planit starts in. It draws the application
// name, version and repository centered inside a rounded box.
type OpeningView struct {
	Name    string
	Tagline string
	Version string
	Repo    string
}

// PaneView is the root view: a binary tree of panes created by
// splitting, exactly one of which holds focus. Commands that are not
// about the pane tree itself are routed to the focused pane.
type PaneView struct {
	root    *paneNode
	focused *paneNode
}

// paneNode is a node in the pane tree. Leaves hold a view; split
// nodes hold exactly two children and the direction of the dividing
// line between them.
type paneNode struct {
	view   View
	split  hub.SplitDirection
	first  *paneNode
	second *paneNode
}

// Rect is a rectangular region of the screen. X and Y are the top
// left corner.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Screen hides tcell from the consuming code so that
// it can be swapped out for testing
type Screen interface {
	Init() error
	Close() error
	Clear()
	Flush() error
	PollEvent(context.Context) chan tcell.Event
	SendEvent(tcell.Event)
	SetCell(int, int, rune, tcell.Style)
	Size() (int, int)
	Start() *PrintCtx
	Sync() error
}

// StatusLine draws the two rows at the bottom of the screen: the mode
// indicator and galaxy title, and the command line below it. The
// command line doubles as the status message area.
type StatusLine struct {
	screen     Screen
	styles     *config.StyleSet
	clearTimer *time.Timer
	timerMutex sync.Mutex
	msgMutex   sync.Mutex
	msg        string
	area       Rect
}

// Term just hands out the processing to the tcell library
type Term struct {
	mutex  sync.Mutex
	screen tcell.Screen
}

// View is a region of the screen that knows how to draw itself and
// how to react to commands routed to it. Update may push follow-up
// commands, which are processed after the ones already pending.
type View interface {
	Draw(Screen, Rect, *config.StyleSet)
	Update(hub.Command, func(hub.Command))
}
