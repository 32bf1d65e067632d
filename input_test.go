package planit

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/jac-oblong/planit/hub"
)

// newTestInput wires an Input to a fresh Planit with the default
// keymap and an injected event channel, with the timing knobs turned
// way down so the force path fires quickly.
func newTestInput(t *testing.T) (*Input, *Planit, chan tcell.Event) {
	t.Helper()

	p := New()
	p.skipReadConfig = true
	require.NoError(t, p.Setup())

	evCh := make(chan tcell.Event)
	input := NewInput(p, p.Keymap(), evCh)
	input.resolution = time.Millisecond
	input.iterations = 200
	return input, p, evCh
}

func startInput(t *testing.T, input *Input) context.CancelFunc {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = input.Loop(ctx, cancel) }()
	t.Cleanup(cancel)
	return cancel
}

func sendKey(evCh chan tcell.Event, ch rune) {
	evCh <- tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

func recvCommand(t *testing.T, h *hub.Hub) hub.Command {
	t.Helper()

	select {
	case r := <-h.CommandCh():
		r.Done()
		return r.Data()
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a command")
		return nil
	}
}

func requireNoCommand(t *testing.T, h *hub.Hub, d time.Duration) {
	t.Helper()

	select {
	case r := <-h.CommandCh():
		t.Fatalf("unexpected command %s", r.Data())
	case <-time.After(d):
	}
}

func TestInputSingleKeyResolves(t *testing.T) {
	input, p, evCh := newTestInput(t)
	startInput(t, input)

	sendKey(evCh, 'q')

	require.Equal(t, hub.Command(hub.Quit), recvCommand(t, p.Hub()))
}

func TestInputTwoKeyChord(t *testing.T) {
	input, p, evCh := newTestInput(t)
	startInput(t, input)

	// Control+w s splits the focused view
	evCh <- tcell.NewEventKey(tcell.KeyCtrlW, 'w', tcell.ModCtrl)
	sendKey(evCh, 's')

	require.Equal(t, hub.Command(hub.SplitViewCommand(hub.Horizontal)), recvCommand(t, p.Hub()))
}

func TestInputDiscardsUnboundKey(t *testing.T) {
	input, p, evCh := newTestInput(t)
	startInput(t, input)

	sendKey(evCh, 'z')
	requireNoCommand(t, p.Hub(), 50*time.Millisecond)

	// the unbound key left nothing behind to confuse the next chord
	sendKey(evCh, 'q')
	require.Equal(t, hub.Command(hub.Quit), recvCommand(t, p.Hub()))
}

func TestInputForcesMatchAfterTimeout(t *testing.T) {
	input, p, evCh := newTestInput(t)

	// overload "q" as a prefix so that it cannot resolve immediately
	require.NoError(t, input.keymap.Bind(hub.ModeNormal, "q w", hub.Redraw))
	startInput(t, input)

	sendKey(evCh, 'q')
	requireNoCommand(t, p.Hub(), 10*time.Millisecond)

	// after iterations quiet wakeups the candidate is committed
	require.Equal(t, hub.Command(hub.Quit), recvCommand(t, p.Hub()))
}

func TestInputResizeSendsRedraw(t *testing.T) {
	input, p, evCh := newTestInput(t)
	startInput(t, input)

	evCh <- tcell.NewEventResize(100, 40)

	require.Equal(t, hub.Command(hub.Redraw), recvCommand(t, p.Hub()))
}

func TestInputTracksModeWithoutConsumer(t *testing.T) {
	input, p, evCh := newTestInput(t)
	startInput(t, input)

	// i enters insert mode; j k leaves it again. Nothing consumes the
	// emitted commands' mode switches except the loop's own copy, so
	// this only works if the input side tracks the mode itself.
	sendKey(evCh, 'i')
	require.Equal(t, hub.Command(hub.UpdateModeCommand(hub.ModeInsert)), recvCommand(t, p.Hub()))

	sendKey(evCh, 'j')
	requireNoCommand(t, p.Hub(), 2*time.Millisecond)
	sendKey(evCh, 'k')
	require.Equal(t, hub.Command(hub.UpdateModeCommand(hub.ModeNormal)), recvCommand(t, p.Hub()))

	// back in normal mode, j moves the cursor instead of starting j k
	sendKey(evCh, 'j')
	require.Equal(t, hub.Command(hub.MoveCursorCommand(hub.Down)), recvCommand(t, p.Hub()))
}

func TestInputShowsPendingChordAsStatus(t *testing.T) {
	input, p, evCh := newTestInput(t)
	startInput(t, input)

	evCh <- tcell.NewEventKey(tcell.KeyCtrlW, 'w', tcell.ModCtrl)

	select {
	case r := <-p.Hub().StatusMsgCh():
		require.Equal(t, "Control+w", r.Data().Message())
		r.Done()
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the pending chord status")
	}

	// completing the chord resolves it and wipes the status
	sendKey(evCh, 'v')
	require.Equal(t, hub.Command(hub.SplitViewCommand(hub.Vertical)), recvCommand(t, p.Hub()))

	select {
	case r := <-p.Hub().StatusMsgCh():
		require.Equal(t, "", r.Data().Message())
		r.Done()
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the status wipe")
	}
}

func TestInputLoopStopsOnClosedSource(t *testing.T) {
	input, _, evCh := newTestInput(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- input.Loop(ctx, cancel) }()

	close(evCh)

	select {
	case err := <-errCh:
		require.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the loop to stop")
	}
	require.Error(t, ctx.Err(), "the loop must cancel the context on the way out")
}

func TestInputLoopStopsOnContextCancel(t *testing.T) {
	input, _, _ := newTestInput(t)

	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- input.Loop(ctx, cancel) }()

	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the loop to stop")
	}
}
