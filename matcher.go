package planit

import (
	pdebug "github.com/lestrrat-go/pdebug"

	"github.com/jac-oblong/planit/hub"
	"github.com/jac-oblong/planit/internal/keyseq"
)

// The matcher resolves the queue of pending keys into commands by
// probing the active mode's trie with ever longer prefixes of the
// queue. Two variants exist: tryMatch runs after every keypress and is
// willing to leave an ambiguous tail in the queue for the next key to
// settle; forceMatch runs after the idle timeout and commits to
// whatever the queue holds right now.
//
// Both share an invariant with Keymap.Bind: a trie node without
// children always carries a command, so whenever a probe walks off the
// end of the queue a candidate command exists and the drains below
// stay in bounds.

// tryMatch resolves as many commands as the queue unambiguously holds.
// A tail that could still grow into a longer bound chord is left in
// the queue untouched; keys that can match nothing are dropped. A
// resolved mode switch stops the call, since the rest of the queue
// belongs to the new mode's trie.
func tryMatch(trie keyseq.Trie, queue *keyseq.KeyList) []hub.Command {
	if pdebug.Enabled {
		g := pdebug.Marker("tryMatch %s", queue)
		defer g.End()
	}

	var cmds []hub.Command

	var candidate hub.Command
	candidateEnd := 0
	hadContinuation := false
	probeEnd := 1

	for len(*queue) > 0 {
		var node keyseq.Node
		if probeEnd <= len(*queue) {
			node = keyseq.Get(trie, (*queue)[:probeEnd])
		}

		if node != nil {
			if v := node.Value(); v != nil {
				candidate = v.(hub.Command)
				candidateEnd = probeEnd
			}
			hadContinuation = node.HasChildren()
			probeEnd++
			continue
		}

		if probeEnd > len(*queue) && hadContinuation {
			// every key matched and a longer chord is still possible;
			// wait for the next key or the idle timeout
			break
		}

		if candidate != nil {
			cmds = append(cmds, candidate)
			*queue = (*queue)[candidateEnd:]
			if candidate.Type() == hub.UpdateMode {
				break
			}
		} else {
			*queue = (*queue)[probeEnd:]
		}

		candidate = nil
		candidateEnd = 0
		probeEnd = 1
	}

	return cmds
}

// forceMatch is tryMatch without the patience: when the probe exhausts
// the queue the best candidate so far is emitted even though a longer
// chord could still complete, and unrecognized input is discarded
// outright. Except after a mode switch, the queue is empty on return.
func forceMatch(trie keyseq.Trie, queue *keyseq.KeyList) []hub.Command {
	if pdebug.Enabled {
		g := pdebug.Marker("forceMatch %s", queue)
		defer g.End()
	}

	var cmds []hub.Command

	var candidate hub.Command
	candidateEnd := 0
	probeEnd := 1

	for len(*queue) > 0 {
		var node keyseq.Node
		if probeEnd <= len(*queue) {
			node = keyseq.Get(trie, (*queue)[:probeEnd])
		}

		if node != nil {
			if v := node.Value(); v != nil {
				candidate = v.(hub.Command)
				candidateEnd = probeEnd
			}
			probeEnd++
			continue
		}

		if candidate != nil {
			cmds = append(cmds, candidate)
			*queue = (*queue)[candidateEnd:]
			if candidate.Type() == hub.UpdateMode {
				break
			}
		} else if probeEnd <= len(*queue) {
			*queue = (*queue)[probeEnd:]
		} else {
			*queue = (*queue)[:0]
		}

		candidate = nil
		candidateEnd = 0
		probeEnd = 1
	}

	return cmds
}
