// Package mock provides an in-memory ui.Screen implementation for
// tests.
package mock

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jac-oblong/planit/ui"
)

type cell struct {
	ch    rune
	style tcell.Style
}

// Screen draws into an in-memory cell grid that tests can read back,
// and hands out injected events instead of terminal input.
type Screen struct {
	mutex  sync.Mutex
	width  int
	height int
	cells  map[[2]int]cell
	pollCh chan tcell.Event
}

func NewScreen() *Screen {
	return &Screen{
		width:  80,
		height: 10,
		cells:  make(map[[2]int]cell),
		pollCh: make(chan tcell.Event),
	}
}

func (s *Screen) Init() error {
	return nil
}

func (s *Screen) Close() error {
	return nil
}

func (s *Screen) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.cells = make(map[[2]int]cell)
}

func (s *Screen) Flush() error {
	return nil
}

func (s *Screen) Sync() error {
	return nil
}

func (s *Screen) PollEvent(ctx context.Context) chan tcell.Event {
	return s.pollCh
}

func (s *Screen) SendEvent(ev tcell.Event) {
	// XXX FIXME SendEvent should receive a context
	t := time.NewTimer(time.Second)
	defer t.Stop()
	select {
	case <-t.C:
		panic("timed out sending an event")
	case s.pollCh <- ev:
	}
}

func (s *Screen) SetCell(x, y int, ch rune, style tcell.Style) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.cells[[2]int{x, y}] = cell{ch: ch, style: style}
}

func (s *Screen) Size() (int, int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.width, s.height
}

func (s *Screen) Start() *ui.PrintCtx {
	return ui.NewPrintCtx(s)
}

// Resize changes the dimensions the screen reports.
func (s *Screen) Resize(width, height int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.width = width
	s.height = height
}

// Row returns the text drawn on row y with trailing blanks trimmed.
// Cells that were never drawn read as spaces.
func (s *Screen) Row(y int) string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var b strings.Builder
	for x := 0; x < s.width; x++ {
		c, ok := s.cells[[2]int{x, y}]
		if !ok || c.ch == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.ch)
	}
	return strings.TrimRight(b.String(), " ")
}

// StyleAt returns the style of the cell at x, y.
func (s *Screen) StyleAt(x, y int) tcell.Style {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.cells[[2]int{x, y}].style
}
