package ui

import (
	"context"
	"sync"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	pdebug "github.com/lestrrat-go/pdebug"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

func NewTerm() *Term {
	return &Term{}
}

func (t *Term) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "failed to create screen")
	}

	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize screen")
	}

	screen.HideCursor()
	t.screen = screen
	return nil
}

func (t *Term) Close() error {
	if pdebug.Enabled {
		pdebug.Printf("Term: Close")
	}
	if t.screen != nil {
		t.screen.Fini()
	}
	return nil
}

// SendEvent is used to allow programmers generate random
// events, but it's only useful for testing purposes.
// When interacting with tcell, this method is a noop
func (t *Term) SendEvent(_ tcell.Event) {
	// no op
}

// Clear erases the back buffer. The next Flush repaints everything
// that was drawn since.
func (t *Term) Clear() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.screen.Clear()
}

// Flush makes everything drawn since the last Clear visible
func (t *Term) Flush() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.screen.Show()
	return nil
}

// Sync is Flush without trusting what is already on screen: every
// cell is repainted. Needed after a resize, where tcell's idea of the
// terminal contents may be stale.
func (t *Term) Sync() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.screen.Sync()
	return nil
}

// PollEvent returns a channel that you can listen to for
// tcell's events. The actual polling is done in a
// separate goroutine
func (t *Term) PollEvent(ctx context.Context) chan tcell.Event {
	// XXX tcell's PollEvent() blocks until the terminal produces
	// something. We still would like to wait until the user has some
	// event for us to process, but we don't want to allow tcell to
	// control/block our input loop.
	//
	// Solution: put tcell polling in a separate goroutine,
	// and we just watch for a channel. The loop can now
	// safely be implemented in terms of select {} which is
	// safe from being stuck.
	evCh := make(chan tcell.Event)

	go func() {
		defer func() { _ = recover() }()
		defer func() { close(evCh) }()

		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				// the screen has been finalized
				return
			}

			select {
			case evCh <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return evCh
}

// SetCell writes to the terminal
func (t *Term) SetCell(x, y int, ch rune, style tcell.Style) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.screen.SetContent(x, y, ch, nil, style)
}

// Size returns the dimensions of the current terminal
func (t *Term) Size() (int, int) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.screen.Size()
}

func (t *Term) Start() *PrintCtx {
	return &PrintCtx{
		screen: t,
		args:   getPrintArgs(),
	}
}

// PrintCtx accumulates the arguments for a single print through a
// fluent interface, and executes it when Print is called.
type PrintCtx struct {
	screen Screen
	args   *printArgs
}

func NewPrintCtx(s Screen) *PrintCtx {
	return &PrintCtx{
		screen: s,
		args:   getPrintArgs(),
	}
}

func (ctx *PrintCtx) X(v int) *PrintCtx {
	ctx.args.X = v
	return ctx
}

func (ctx *PrintCtx) Y(v int) *PrintCtx {
	ctx.args.Y = v
	return ctx
}

// Limit sets the column (exclusive) where printing stops. Zero means
// the right edge of the screen.
func (ctx *PrintCtx) Limit(v int) *PrintCtx {
	ctx.args.Limit = v
	return ctx
}

func (ctx *PrintCtx) Style(v tcell.Style) *PrintCtx {
	ctx.args.Style = v
	return ctx
}

func (ctx *PrintCtx) Msg(v string) *PrintCtx {
	ctx.args.Msg = v
	return ctx
}

func (ctx *PrintCtx) Fill(v bool) *PrintCtx {
	ctx.args.Fill = v
	return ctx
}

func (ctx *PrintCtx) Print() int {
	n := screenPrint(ctx.screen, ctx.args)
	releasePrintArgs(ctx.args)
	return n
}

type printArgs struct {
	X     int
	Y     int
	Limit int
	Style tcell.Style
	Msg   string
	Fill  bool
}

var printArgsPool = sync.Pool{
	New: allocPrintArgs,
}

func allocPrintArgs() interface{} {
	return &printArgs{}
}

func getPrintArgs() *printArgs {
	return printArgsPool.Get().(*printArgs)
}

func releasePrintArgs(args *printArgs) {
	args.X = 0
	args.Y = 0
	args.Limit = 0
	args.Style = tcell.StyleDefault
	args.Msg = ""
	args.Fill = false
	printArgsPool.Put(args)
}

func screenPrint(t Screen, args *printArgs) int {
	var written int

	style := args.Style
	msg := args.Msg
	x := args.X
	y := args.Y

	limit := args.Limit
	if limit <= 0 {
		limit, _ = t.Size()
	}

	for len(msg) > 0 && x < limit {
		c, w := utf8.DecodeRuneInString(msg)
		if c == utf8.RuneError {
			c = '?'
			w = 1
		}
		msg = msg[w:]
		if c == '\t' {
			// In case we found a tab, we draw it as 4 spaces
			n := 4 - x%4
			for i := 0; i < n && x+i < limit; i++ {
				t.SetCell(x+i, y, ' ', style)
			}
			written += n
			x += n
		} else {
			t.SetCell(x, y, c, style)
			n := runewidth.RuneWidth(c)
			x += n
			written += n
		}
	}

	if !args.Fill {
		return written
	}

	for ; x < limit; x++ {
		t.SetCell(x, y, ' ', style)
		written++
	}
	return written
}
