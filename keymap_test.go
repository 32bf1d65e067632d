package planit

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jac-oblong/planit/config"
	"github.com/jac-oblong/planit/hub"
	"github.com/jac-oblong/planit/internal/keyseq"
)

// lookupCommand digs chord out of mode's trie, failing the test when
// it is not bound.
func lookupCommand(t *testing.T, km *Keymap, mode hub.Mode, chord string) hub.Command {
	t.Helper()

	node := km.Trie(mode).GetList(keys(t, chord))
	require.NotNil(t, node, "chord '%s' should be bound in %s mode", chord, mode)
	require.NotNil(t, node.Value(), "chord '%s' should carry a command", chord)
	return node.Value().(hub.Command)
}

// captureStderr runs fn with os.Stderr redirected into a pipe and
// returns what was written.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = old }()

	fn()

	require.NoError(t, w.Close())
	buf, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(buf)
}

func TestNewKeymapDefaults(t *testing.T) {
	km := NewKeymap()

	expected := map[hub.Mode]map[string]hub.Command{
		hub.ModeNormal: {
			"i":           hub.UpdateModeCommand(hub.ModeInsert),
			":":           hub.UpdateModeCommand(hub.ModeCommand),
			"q":           hub.Quit,
			"h":           hub.MoveCursorCommand(hub.Left),
			"j":           hub.MoveCursorCommand(hub.Down),
			"k":           hub.MoveCursorCommand(hub.Up),
			"l":           hub.MoveCursorCommand(hub.Right),
			"Control+w s": hub.SplitViewCommand(hub.Horizontal),
			"Control+w v": hub.SplitViewCommand(hub.Vertical),
			"Control+w h": hub.MoveFocusCommand(hub.Left),
			"Control+w j": hub.MoveFocusCommand(hub.Down),
			"Control+w k": hub.MoveFocusCommand(hub.Up),
			"Control+w l": hub.MoveFocusCommand(hub.Right),
		},
		hub.ModeCommand: {
			"j k": hub.UpdateModeCommand(hub.ModeNormal),
		},
		hub.ModeInsert: {
			"j k": hub.UpdateModeCommand(hub.ModeNormal),
		},
	}

	for mode, bindings := range expected {
		for chord, cmd := range bindings {
			require.Equal(t, cmd, lookupCommand(t, km, mode, chord), "%s mode, chord '%s'", mode, chord)
		}
	}
}

func TestKeymapBindOverrideWarnsAndWins(t *testing.T) {
	km := NewKeymap()

	out := captureStderr(t, func() {
		require.NoError(t, km.Bind(hub.ModeNormal, "q", hub.Redraw))
	})

	require.Contains(t, out, "Overriding keybinding")
	require.Equal(t, hub.Command(hub.Redraw), lookupCommand(t, km, hub.ModeNormal, "q"))
}

func TestKeymapBindEmptyChordSkipped(t *testing.T) {
	km := NewKeymap()
	before := km.Trie(hub.ModeNormal).Size()

	out := captureStderr(t, func() {
		require.NoError(t, km.Bind(hub.ModeNormal, "   ", hub.Quit))
	})

	require.Contains(t, out, "empty chord")
	require.Equal(t, before, km.Trie(hub.ModeNormal).Size())
}

func TestKeymapBindMalformedChord(t *testing.T) {
	km := NewKeymap()

	err := km.Bind(hub.ModeNormal, "Bogus+q", hub.Quit)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid chord")
}

func TestKeymapApplyConfig(t *testing.T) {
	var cfg config.Config
	require.NoError(t, cfg.Init())
	cfg.Keymap["normal"] = map[string]string{
		"Control+q": "planit.Quit",
		"s":         "planit.SplitHorizontal",
	}
	cfg.Keymap["insert"] = map[string]string{
		"Escape": "planit.ModeNormal",
	}

	km := NewKeymap()
	require.NoError(t, km.ApplyConfig(&cfg))

	require.Equal(t, hub.Command(hub.Quit), lookupCommand(t, km, hub.ModeNormal, "Control+q"))
	require.Equal(t, hub.Command(hub.SplitViewCommand(hub.Horizontal)), lookupCommand(t, km, hub.ModeNormal, "s"))
	require.Equal(t, hub.Command(hub.UpdateModeCommand(hub.ModeNormal)), lookupCommand(t, km, hub.ModeInsert, "Escape"))

	// the defaults survive the merge
	require.Equal(t, hub.Command(hub.Quit), lookupCommand(t, km, hub.ModeNormal, "q"))
}

func TestKeymapApplyConfigOverridesDefault(t *testing.T) {
	var cfg config.Config
	require.NoError(t, cfg.Init())
	cfg.Keymap["normal"] = map[string]string{
		"q": "planit.Redraw",
	}

	km := NewKeymap()
	out := captureStderr(t, func() {
		require.NoError(t, km.ApplyConfig(&cfg))
	})

	require.Contains(t, out, "Overriding keybinding")
	require.Equal(t, hub.Command(hub.Redraw), lookupCommand(t, km, hub.ModeNormal, "q"))
}

func TestKeymapApplyConfigUnknownMode(t *testing.T) {
	var cfg config.Config
	require.NoError(t, cfg.Init())
	cfg.Keymap["visual"] = map[string]string{"v": "planit.Quit"}

	err := NewKeymap().ApplyConfig(&cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown mode")
}

func TestKeymapApplyConfigUnknownCommand(t *testing.T) {
	var cfg config.Config
	require.NoError(t, cfg.Init())
	cfg.Keymap["normal"] = map[string]string{"y": "planit.Yank"}

	err := NewKeymap().ApplyConfig(&cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown command 'planit.Yank'")
}

func TestKeymapApplyConfigMalformedChord(t *testing.T) {
	var cfg config.Config
	require.NoError(t, cfg.Init())
	cfg.Keymap["normal"] = map[string]string{"Hyper+Fnord": "planit.Quit"}

	err := NewKeymap().ApplyConfig(&cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid chord")
}

func TestKeymapBalanceKeepsBindings(t *testing.T) {
	km := NewKeymap()
	km.Balance()

	require.Equal(t, hub.Command(hub.Quit), lookupCommand(t, km, hub.ModeNormal, "q"))
	require.Equal(t, hub.Command(hub.SplitViewCommand(hub.Vertical)), lookupCommand(t, km, hub.ModeNormal, "Control+w v"))
	require.Equal(t, hub.Command(hub.UpdateModeCommand(hub.ModeNormal)), lookupCommand(t, km, hub.ModeInsert, "j k"))
}

func TestKeymapLookupRejectsChordPrefixOverrun(t *testing.T) {
	km := NewKeymap()

	// "q" is a completed chord; probing past it must not match
	node := keyseq.Get(km.Trie(hub.ModeNormal), keys(t, "q q"))
	require.Nil(t, node)
}
