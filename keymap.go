package planit

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/jac-oblong/planit/config"
	"github.com/jac-oblong/planit/hub"
	"github.com/jac-oblong/planit/internal/keyseq"
)

// The built-in bindings per mode. Config entries merge on top of
// these.
var defaultNormalBindings = []binding{
	{"i", hub.UpdateModeCommand(hub.ModeInsert)},
	{":", hub.UpdateModeCommand(hub.ModeCommand)},
	{"q", hub.Quit},
	{"h", hub.MoveCursorCommand(hub.Left)},
	{"j", hub.MoveCursorCommand(hub.Down)},
	{"k", hub.MoveCursorCommand(hub.Up)},
	{"l", hub.MoveCursorCommand(hub.Right)},
	{"Control+w s", hub.SplitViewCommand(hub.Horizontal)},
	{"Control+w v", hub.SplitViewCommand(hub.Vertical)},
	{"Control+w h", hub.MoveFocusCommand(hub.Left)},
	{"Control+w j", hub.MoveFocusCommand(hub.Down)},
	{"Control+w k", hub.MoveFocusCommand(hub.Up)},
	{"Control+w l", hub.MoveFocusCommand(hub.Right)},
}

var defaultCommandBindings = []binding{
	{"j k", hub.UpdateModeCommand(hub.ModeNormal)},
}

var defaultInsertBindings = []binding{
	{"j k", hub.UpdateModeCommand(hub.ModeNormal)},
}

// NewKeymap creates a Keymap populated with the default bindings for
// every mode.
func NewKeymap() *Keymap {
	k := &Keymap{
		tries: map[hub.Mode]keyseq.Trie{
			hub.ModeNormal:  keyseq.NewTrie(),
			hub.ModeCommand: keyseq.NewTrie(),
			hub.ModeInsert:  keyseq.NewTrie(),
		},
	}

	defaults := map[hub.Mode][]binding{
		hub.ModeNormal:  defaultNormalBindings,
		hub.ModeCommand: defaultCommandBindings,
		hub.ModeInsert:  defaultInsertBindings,
	}
	for mode, bindings := range defaults {
		for _, b := range bindings {
			if err := k.Bind(mode, b.chord, b.cmd); err != nil {
				// the defaults are compiled in, so this is a
				// programming error, not a configuration error
				panic(fmt.Sprintf("failed to register default keybinding '%s': %s", b.chord, err))
			}
		}
	}

	return k
}

// Bind adds one chord to mode's trie. An empty chord is reported and
// skipped. Binding a chord that is already bound overrides it with a
// warning; the last write wins.
func (k *Keymap) Bind(mode hub.Mode, chord string, cmd hub.Command) error {
	list, err := keyseq.ToKeyList(chord)
	if err != nil {
		return errors.Wrapf(err, "invalid chord '%s'", chord)
	}
	if len(list) == 0 {
		fmt.Fprintf(os.Stderr, "Ignoring empty chord bound to command %s\n", cmd)
		return nil
	}

	trie := k.tries[mode]
	if node := keyseq.Get(trie, list); node != nil && node.Value() != nil {
		fmt.Fprintf(os.Stderr, "Overriding keybinding for command %s with command %s\n", node.Value(), cmd)
	}
	trie.Put(list, cmd)
	return nil
}

// ApplyConfig merges the keymap overrides from the configuration file
// on top of the defaults. An unknown mode name, an unknown command
// name or a malformed chord is fatal.
func (k *Keymap) ApplyConfig(cfg *config.Config) error {
	for modeName, chords := range cfg.Keymap {
		mode, err := hub.ParseMode(modeName)
		if err != nil {
			return errors.Wrap(err, "invalid keymap section")
		}

		for chord, cmdName := range chords {
			cmd, ok := LookupCommand(cmdName)
			if !ok {
				return errors.Errorf("unknown command '%s' bound to chord '%s'", cmdName, chord)
			}
			if err := k.Bind(mode, chord, cmd); err != nil {
				return err
			}
		}
	}
	return nil
}

// Trie returns the binding trie for mode.
func (k *Keymap) Trie(mode hub.Mode) keyseq.Trie {
	return k.tries[mode]
}

// Balance optimizes every trie for lookup. Call it once after all
// bindings are registered.
func (k *Keymap) Balance() {
	for _, trie := range k.tries {
		if t, ok := trie.(*keyseq.TernaryTrie); ok {
			t.Balance()
		}
	}
}
