package planit

import (
	"io"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jac-oblong/planit/config"
	"github.com/jac-oblong/planit/galaxy"
	"github.com/jac-oblong/planit/hub"
	"github.com/jac-oblong/planit/internal/keyseq"
	"github.com/jac-oblong/planit/ui"
)

// Planit is the global object containing everything required to run
// planit. It also contains the global state of the program.
type Planit struct {
	Argv   []string
	Stdout io.Writer
	Stderr io.Writer

	// config contains the values read in from config file
	config config.Config
	galaxy *galaxy.Galaxy
	hub    *hub.Hub
	keymap *Keymap
	// mode is the consumer's copy of the active input mode. The input
	// loop keeps its own; the two stay in sync because mode switches
	// are only ever produced by the matching engine.
	mode           hub.Mode
	// forceSync makes the next draw repaint every cell instead of
	// trusting the terminal contents. Set after resizes.
	forceSync      bool
	rcfile         string
	readyCh        chan struct{}
	screen         ui.Screen
	skipReadConfig bool
	statusline     *ui.StatusLine
	view           *ui.PaneView

	// cancelFunc is called for Exit()
	cancelFunc func()
	// Errors are stored here
	err error
}

// Keymap holds one binding trie per input mode. Key sequences are only
// ever resolved against the trie of the active mode.
type Keymap struct {
	tries map[hub.Mode]keyseq.Trie
}

// binding pairs a chord string with the command it resolves to.
type binding struct {
	chord string
	cmd   hub.Command
}

// Input handles keyboard input. It runs on its own goroutine and owns
// the queue of keys that have not yet resolved to a command.
type Input struct {
	state  *Planit
	keymap *Keymap
	evsrc  chan tcell.Event

	// mode is the input loop's copy of the active mode, updated the
	// moment a mode-switch command is emitted so that queued keys
	// resolve against the right trie without consulting the consumer.
	mode    hub.Mode
	pending keyseq.KeyList
	idle    int
	// showedChord records whether the previous pending chord was put
	// on the status line, so it can be wiped once it resolves.
	showedChord bool

	// resolution and iterations are knobs for the tests; NewInput sets
	// them so that iterations quiet windows of resolution each add up
	// to the key sequence timeout.
	resolution time.Duration
	iterations int
}

// CLI is the interface between the planit library and the command line.
type CLI struct{}

type CLIOptions struct {
	OptHelp    bool   `short:"h" long:"help" description:"show this help message and exit"`
	OptRcfile  string `long:"rcfile" description:"path to the settings file"`
	OptDir     string `long:"dir" description:"change to this directory before doing anything"`
	OptRecurse bool   `short:"r" long:"recurse" description:"recurse into star children when listing"`
	OptVersion bool   `long:"version" description:"print the version and exit"`
}
