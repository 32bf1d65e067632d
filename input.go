package planit

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	pdebug "github.com/lestrrat-go/pdebug"
	"github.com/pkg/errors"

	"github.com/jac-oblong/planit/hub"
	"github.com/jac-oblong/planit/internal/keyseq"
)

const (
	// keySequenceTimeout is how long a partially matched key sequence
	// may wait for its next key before matching is forced.
	keySequenceTimeout = 500 * time.Millisecond

	// inputResolution is how often the input loop wakes up while no
	// events arrive.
	inputResolution = 10 * time.Millisecond

	// forceIterations is the number of quiet wakeups that add up to
	// the timeout.
	forceIterations = int(keySequenceTimeout / inputResolution)
)

func NewInput(state *Planit, km *Keymap, src chan tcell.Event) *Input {
	return &Input{
		state:      state,
		keymap:     km,
		evsrc:      src,
		resolution: inputResolution,
		iterations: forceIterations,
	}
}

// Loop runs the input half of the program: key events come in from the
// terminal, resolved commands go out through the hub. It blocks until
// the context is canceled or the event source fails.
func (i *Input) Loop(ctx context.Context, cancel func()) error {
	defer cancel()

	tracer.Printf("Input.Loop: START")
	defer tracer.Printf("Input.Loop: END")

	tick := time.NewTicker(i.resolution)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-i.evsrc:
			if !ok {
				if ctx.Err() != nil {
					// the poller shut down because we are shutting
					// down
					return nil
				}
				return errors.New("input event source closed")
			}
			i.handleInputEvent(ctx, ev)
		case <-tick.C:
			i.idle++
			if i.idle >= i.iterations {
				i.idle = 0
				i.matchPending(ctx, true)
			}
		}
	}
}

func (i *Input) handleInputEvent(ctx context.Context, ev tcell.Event) {
	if pdebug.Enabled {
		g := pdebug.Marker("event received from user: %#v", ev)
		defer g.End()
	}

	switch ev := ev.(type) {
	case *tcell.EventResize:
		i.state.Hub().SendCommand(ctx, hub.Redraw)
	case *tcell.EventKey:
		i.pending = append(i.pending, keyseq.NewKeyFromEvent(ev))
		i.idle = 0
		i.matchPending(ctx, false)
	}
}

// matchPending runs the matcher over the pending queue and sends every
// resolved command to the consumer. A mode switch updates the loop's
// copy of the mode and re-runs the matcher, so keys queued behind the
// switch resolve against the new mode's trie.
func (i *Input) matchPending(ctx context.Context, force bool) {
	for {
		trie := i.keymap.Trie(i.mode)

		var cmds []hub.Command
		if force {
			cmds = forceMatch(trie, &i.pending)
		} else {
			cmds = tryMatch(trie, &i.pending)
		}

		modeChanged := false
		for _, c := range cmds {
			if mc, ok := c.(hub.UpdateModeCommand); ok {
				i.mode = mc.Mode()
				modeChanged = true
			}
			i.state.Hub().SendCommand(ctx, c)
		}

		if !modeChanged {
			break
		}
	}

	// mirror the chord still waiting for keys onto the status line,
	// the way vim shows partial input
	if len(i.pending) > 0 {
		i.state.Hub().SendStatusMsg(ctx, i.pending.String(), 0)
		i.showedChord = true
	} else if i.showedChord {
		i.state.Hub().SendStatusMsg(ctx, "", 0)
		i.showedChord = false
	}
}
