package planit

import (
	"context"
	"os"

	pdebug "github.com/lestrrat-go/pdebug"
	"github.com/pkg/errors"

	"github.com/jac-oblong/planit/config"
	"github.com/jac-oblong/planit/galaxy"
	"github.com/jac-oblong/planit/hub"
	"github.com/jac-oblong/planit/sig"
	"github.com/jac-oblong/planit/ui"
)

// commandBufsiz is the capacity of the hub channels. Sends block only
// when the consumer falls this far behind.
const commandBufsiz = 5

// New creates a new Planit instance with default values
func New() *Planit {
	return &Planit{
		Argv:    os.Args,
		Stderr:  os.Stderr,
		Stdout:  os.Stdout,
		hub:     hub.New(commandBufsiz),
		readyCh: make(chan struct{}),
		screen:  ui.NewTerm(),
	}
}

// Hub returns the hub.Hub that is used to communicate between the
// input loop and the consumer loop
func (p *Planit) Hub() *hub.Hub {
	return p.hub
}

// Keymap returns the compiled keymap. Only valid after Setup.
func (p *Planit) Keymap() *Keymap {
	return p.keymap
}

// Screen returns the ui.Screen
func (p *Planit) Screen() ui.Screen {
	return p.screen
}

// Galaxy returns the project database currently loaded, which may be
// nil when no database was found.
func (p *Planit) Galaxy() *galaxy.Galaxy {
	return p.galaxy
}

// Styles returns the style set to draw with
func (p *Planit) Styles() *config.StyleSet {
	return &p.config.Style
}

// Ready is closed once Run has finished setting up. It exists for the
// tests.
func (p *Planit) Ready() <-chan struct{} {
	return p.readyCh
}

// Mode returns the consumer's view of the active input mode.
func (p *Planit) Mode() hub.Mode {
	return p.mode
}

// Exit stores the error that Run should return and cancels the run
// context.
func (p *Planit) Exit(err error) {
	p.err = err
	if p.cancelFunc != nil {
		p.cancelFunc()
	}
}

// Setup reads the configuration and compiles the keymap. It is called
// from Run, and separately by tests that never enter the run loop.
func (p *Planit) Setup() error {
	if err := p.config.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize config")
	}

	if !p.skipReadConfig {
		rcfile := p.rcfile
		if rcfile == "" {
			// a missing config file is not an error, planit runs on
			// its defaults
			if located, err := config.LocateRcfile(config.DefaultConfigLocator); err == nil {
				rcfile = located
			}
		}
		if rcfile != "" {
			tracer.Printf("Setup: reading config %s", rcfile)
			if err := p.config.ReadFilename(rcfile); err != nil {
				return errors.Wrap(err, "failed to read config file")
			}
		}
	}

	km := NewKeymap()
	if err := km.ApplyConfig(&p.config); err != nil {
		return errors.Wrap(err, "invalid keymap configuration")
	}
	km.Balance()
	p.keymap = km

	return nil
}

// Run does the heavy lifting: it sets the terminal up, starts the
// input loop, and then consumes commands until the user quits or the
// context is canceled. The terminal is restored no matter how Run
// leaves, a panic in the draw path included.
func (p *Planit) Run(ctx context.Context) error {
	tracer.Printf("Planit.Run: START")
	defer tracer.Printf("Planit.Run: END")

	if err := p.Setup(); err != nil {
		return err
	}

	// either the consumer loop or a component calling Exit ends the
	// run; everything downstream hangs off this context
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	p.cancelFunc = cancel

	if p.galaxy == nil {
		g, err := galaxy.Load()
		switch {
		case err == nil:
			p.galaxy = g
		case errors.Cause(err) == galaxy.ErrDatabaseNotFound:
			// no database in sight; the opening view does not need one
		default:
			return err
		}
	}

	if err := p.screen.Init(); err != nil {
		return err
	}
	defer func() {
		// restore the terminal before the panic trace prints
		if r := recover(); r != nil {
			p.screen.Close()
			panic(r)
		}
		p.screen.Close()
	}()

	p.statusline = ui.NewStatusLine(p.screen, p.Styles())
	p.view = ui.NewPaneView(ui.OpeningView{
		Name:    Name,
		Tagline: Tagline,
		Version: Version,
		Repo:    Repo,
	})

	sigH := sig.New(func(s os.Signal) {
		tracer.Printf("Planit.Run: received signal %s", s)
		p.Exit(ErrSignalReceived)
	})
	go sigH.Loop(ctx, cancel)

	input := NewInput(p, p.keymap, p.screen.PollEvent(ctx))
	go func() {
		if err := input.Loop(ctx, cancel); err != nil {
			p.Exit(err)
		}
	}()

	close(p.readyCh)

	for {
		p.draw()

		select {
		case <-ctx.Done():
			return p.err
		case r := <-p.hub.DrawCh():
			if opts := r.Data(); opts != nil && opts.ForceSync {
				p.forceSync = true
			}
			r.Done()
		case r := <-p.hub.StatusMsgCh():
			m := r.Data()
			p.statusline.PrintStatus(m.Message(), m.Delay())
			r.Done()
		case r := <-p.hub.CommandCh():
			quit := p.processCommand(r.Data())
			r.Done()
			if quit {
				return p.err
			}
		}
	}
}

// processCommand applies one received command and everything it spawns
// in FIFO order: a view may push follow-up commands while handling
// one, and those run after the current batch, never before. The return
// value reports whether the application should quit.
func (p *Planit) processCommand(cmd hub.Command) bool {
	queue := []hub.Command{cmd}
	push := func(c hub.Command) {
		queue = append(queue, c)
	}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		if pdebug.Enabled {
			pdebug.Printf("processing command %s", c)
		}

		switch c.Type() {
		case hub.Quit:
			return true
		case hub.Redraw:
			// resize notifications land here; tcell needs a full sync
			// after one, a plain show may trust stale contents
			p.forceSync = true
		case hub.UpdateMode:
			p.mode = c.(hub.UpdateModeCommand).Mode()
		default:
			p.view.Update(c, push)
		}
	}

	return false
}

// draw paints one frame: the pane tree above, the two status rows
// below.
func (p *Planit) draw() {
	p.screen.Clear()

	w, h := p.screen.Size()
	view := ui.Rect{X: 0, Y: 0, Width: w, Height: h - ui.StatusLineHeight}
	if view.Height > 0 {
		p.view.Draw(p.screen, view, p.Styles())
	}
	if h >= ui.StatusLineHeight {
		status := ui.Rect{X: 0, Y: h - ui.StatusLineHeight, Width: w, Height: ui.StatusLineHeight}
		p.statusline.Draw(status, p.mode, p.title())
	}

	if p.forceSync {
		p.forceSync = false
		p.screen.Sync()
	} else {
		p.screen.Flush()
	}
}

// title is what the statusline shows next to the mode tag.
func (p *Planit) title() string {
	if p.galaxy == nil {
		return ""
	}
	return p.galaxy.Title
}
