package hub_test

import (
	"context"
	"testing"
	"time"

	"github.com/jac-oblong/planit/hub"
	"github.com/stretchr/testify/require"
)

func TestHub(t *testing.T) {
	ctx := context.Background()

	h := hub.New(5)

	done := make(map[string]time.Time)

	go func() {
		hr := <-h.CommandCh()
		if hr.Data().Type() != hub.Quit {
			t.Errorf("Expected command to be Quit, got '%s'", hr.Data().Type())
		}
		time.Sleep(100 * time.Millisecond)
		done["command"] = time.Now()
		hr.Done()
	}()
	go func() {
		hr := <-h.DrawCh()
		if hr.Data().Mode != hub.ModeInsert {
			t.Errorf("Expected draw mode to be Insert, got '%s'", hr.Data().Mode)
		}
		time.Sleep(100 * time.Millisecond)
		done["draw"] = time.Now()
		hr.Done()
	}()
	go func() {
		hr := <-h.StatusMsgCh()
		r := hr.Data()
		if r.Message() != "Hello, World!" {
			t.Errorf("Expected data to be 'Hello, World!', got '%s'", r.Message())
			return
		}
		time.Sleep(100 * time.Millisecond)
		done["status"] = time.Now()
		hr.Done()
	}()

	h.Batch(ctx, func(ctx context.Context) {
		h.SendCommand(ctx, hub.Quit)
		h.SendDraw(ctx, &hub.DrawOptions{Mode: hub.ModeInsert})
		h.SendStatusMsg(ctx, "Hello, World!", 0)
	}, true)

	phases := []string{
		"command",
		"draw",
		"status",
	}

	max := len(phases) - 1
	for i := range phases {
		if max == i {
			break
		}

		cur := phases[i]
		next := phases[i+1]

		t.Logf("Checking if %s was fired before %s", cur, next)
		if done[next].Before(done[cur]) {
			t.Errorf("%s executed before %s?!", next, cur)
		}
	}
}

func TestSendCommand(t *testing.T) {
	t.Run("data-less command", func(t *testing.T) {
		h := hub.New(5)
		ctx := context.Background()

		go func() {
			h.SendCommand(ctx, hub.Redraw)
		}()

		p := <-h.CommandCh()
		defer p.Done()

		require.Equal(t, hub.Redraw, p.Data().Type())
	})

	t.Run("mode switch command", func(t *testing.T) {
		h := hub.New(5)
		ctx := context.Background()

		go func() {
			h.SendCommand(ctx, hub.UpdateModeCommand(hub.ModeCommand))
		}()

		p := <-h.CommandCh()
		defer p.Done()

		require.Equal(t, hub.UpdateMode, p.Data().Type())
		mc, ok := p.Data().(hub.UpdateModeCommand)
		require.True(t, ok)
		require.Equal(t, hub.ModeCommand, mc.Mode())
	})

	t.Run("directional command", func(t *testing.T) {
		h := hub.New(5)
		ctx := context.Background()

		go func() {
			h.SendCommand(ctx, hub.MoveCursorCommand(hub.Down))
		}()

		p := <-h.CommandCh()
		defer p.Done()

		require.Equal(t, hub.MoveCursor, p.Data().Type())
		mc, ok := p.Data().(hub.MoveCursorCommand)
		require.True(t, ok)
		require.Equal(t, hub.Down, mc.Direction())
	})
}

func TestSendCommandBuffered(t *testing.T) {
	// Outside of a batch, sends up to the buffer size must not block
	// even with no receiver.
	h := hub.New(5)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		h.SendCommand(ctx, hub.Redraw)
	}

	for i := 0; i < 5; i++ {
		p := <-h.CommandCh()
		require.Equal(t, hub.Redraw, p.Data().Type())
		p.Done()
	}
}

func TestSendStatusMsg(t *testing.T) {
	t.Run("zero delay", func(t *testing.T) {
		h := hub.New(5)
		ctx := context.Background()

		go func() {
			h.SendStatusMsg(ctx, "hello", 0)
		}()

		p := <-h.StatusMsgCh()
		defer p.Done()

		require.Equal(t, "hello", p.Data().Message())
		require.Equal(t, time.Duration(0), p.Data().Delay())
	})

	t.Run("non-zero delay", func(t *testing.T) {
		h := hub.New(5)
		ctx := context.Background()

		go func() {
			h.SendStatusMsg(ctx, "temporary", 500*time.Millisecond)
		}()

		p := <-h.StatusMsgCh()
		defer p.Done()

		require.Equal(t, "temporary", p.Data().Message())
		require.Equal(t, 500*time.Millisecond, p.Data().Delay())
	})
}

func TestModeString(t *testing.T) {
	require.Equal(t, "Normal", hub.ModeNormal.String())
	require.Equal(t, "Command", hub.ModeCommand.String())
	require.Equal(t, "Insert", hub.ModeInsert.String())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name string
		mode hub.Mode
		err  bool
	}{
		{"normal", hub.ModeNormal, false},
		{"command", hub.ModeCommand, false},
		{"insert", hub.ModeInsert, false},
		{"Normal", hub.ModeNormal, true},
		{"visual", hub.ModeNormal, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := hub.ParseMode(tc.name)
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.mode, m)
		})
	}
}

func TestCommandString(t *testing.T) {
	require.Equal(t, "UpdateMode(Insert)", hub.UpdateModeCommand(hub.ModeInsert).String())
	require.Equal(t, "MoveCursor(Left)", hub.MoveCursorCommand(hub.Left).String())
	require.Equal(t, "MoveFocus(Right)", hub.MoveFocusCommand(hub.Right).String())
	require.Equal(t, "SplitView(Vertical)", hub.SplitViewCommand(hub.Vertical).String())
}
