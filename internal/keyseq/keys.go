package keyseq

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Modifier is a bitmask of the modifier keys held down with a key.
type Modifier int

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0 // 0x01
	ModCtrl  Modifier = 1 << 1 // 0x02
	ModAlt   Modifier = 1 << 2 // 0x04
	ModSuper Modifier = 1 << 3 // 0x08
	ModHyper Modifier = 1 << 4 // 0x10
	ModMeta  Modifier = 1 << 5 // 0x20
)

// Keys that exist in the chord vocabulary but have no tcell counterpart.
// They are valid in keymap declarations, but the terminal backend never
// delivers them.
const (
	KeyCapsLock tcell.Key = 0x2000 + iota
	KeyScrollLock
	KeyNumLock
	KeyMenu
)

// Key is one element of a key sequence: a key code plus the modifiers
// held with it. Printable keys use tcell.KeyRune with the character in
// Ch; everything else is identified by Key alone.
type Key struct {
	Modifier Modifier
	Key      tcell.Key
	Ch       rune
}

// KeyList is an ordered sequence of keys, i.e. a chord.
type KeyList []Key

// stringToKey maps a named special key token to the key it denotes.
// The modifier field is always ModNone here; modifiers come from the
// chord-string prefix.
var stringToKey = map[string]Key{}
var keyToString = map[Key]string{}

func mapkey(n string, k Key) {
	stringToKey[n] = k
	keyToString[k] = n
}

func init() {
	mapkey("Backspace", Key{Key: tcell.KeyBackspace2})
	mapkey("Delete", Key{Key: tcell.KeyDelete})
	mapkey("Enter", Key{Key: tcell.KeyEnter})
	mapkey("Left", Key{Key: tcell.KeyLeft})
	mapkey("Right", Key{Key: tcell.KeyRight})
	mapkey("Up", Key{Key: tcell.KeyUp})
	mapkey("Down", Key{Key: tcell.KeyDown})
	mapkey("Home", Key{Key: tcell.KeyHome})
	mapkey("End", Key{Key: tcell.KeyEnd})
	mapkey("PageUp", Key{Key: tcell.KeyPgUp})
	mapkey("PageDown", Key{Key: tcell.KeyPgDn})
	mapkey("Tab", Key{Key: tcell.KeyTab})
	mapkey("BackTab", Key{Key: tcell.KeyBacktab})
	mapkey("Insert", Key{Key: tcell.KeyInsert})
	mapkey("Null", Key{Key: tcell.KeyNUL})
	mapkey("Escape", Key{Key: tcell.KeyEscape})
	mapkey("CapsLock", Key{Key: KeyCapsLock})
	mapkey("ScrollLock", Key{Key: KeyScrollLock})
	mapkey("NumLock", Key{Key: KeyNumLock})
	mapkey("PrintScreen", Key{Key: tcell.KeyPrint})
	mapkey("Pause", Key{Key: tcell.KeyPause})
	mapkey("Menu", Key{Key: KeyMenu})
	mapkey("Begin", Key{Key: tcell.KeyCenter})
	mapkey("Space", Key{Key: tcell.KeyRune, Ch: ' '})
}

var stringToModifier = map[string]Modifier{
	"Shift":   ModShift,
	"Control": ModCtrl,
	"Alt":     ModAlt,
	"Super":   ModSuper,
	"Hyper":   ModHyper,
	"Meta":    ModMeta,
}

// modifierOrder fixes the order String() emits modifier names in.
var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModShift, "Shift"},
	{ModCtrl, "Control"},
	{ModAlt, "Alt"},
	{ModSuper, "Super"},
	{ModHyper, "Hyper"},
	{ModMeta, "Meta"},
}

func (m Modifier) String() string {
	var parts []string
	for _, e := range modifierOrder {
		if m&e.mod != 0 {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "+")
}

// ToKey parses a single chord-string token such as "a", "Enter" or
// "Control+Alt+x". Modifier names are case sensitive. The trailing
// element must be a named special key or a single character.
func ToKey(term string) (Key, error) {
	parts := strings.Split(term, "+")
	code := parts[len(parts)-1]
	parts = parts[:len(parts)-1]

	var k Key
	if v, ok := stringToKey[code]; ok {
		k.Key = v.Key
		k.Ch = v.Ch
	} else if utf8.RuneCountInString(code) == 1 {
		ch, _ := utf8.DecodeRuneInString(code)
		k.Key = tcell.KeyRune
		k.Ch = ch
	} else {
		return k, errors.Errorf("unrecognized key code '%s'", code)
	}

	for _, name := range parts {
		m, ok := stringToModifier[name]
		if !ok {
			return k, errors.Errorf("unrecognized modifier '%s'", name)
		}
		k.Modifier |= m
	}

	return k, nil
}

// ToKeyList parses a chord string: whitespace separated tokens, each
// parsed by ToKey. An all-whitespace string yields an empty list and no
// error; rejecting empty chords is the keymap's business.
func ToKeyList(chord string) (KeyList, error) {
	list := KeyList{}
	for _, term := range strings.Fields(chord) {
		k, err := ToKey(term)
		if err != nil {
			return list, errors.Wrapf(err, "failed to convert '%s'", term)
		}
		list = append(list, k)
	}
	return list, nil
}

// NewKeyFromEvent normalizes a live tcell key event: only the key code
// and the modifier set are retained.
//
// Control-letter presses arrive from tcell as dedicated key codes
// (KeyCtrlA..KeyCtrlZ); they are folded back onto the letter rune so
// that they compare equal to a parsed "Control+x" chord. A bare 0x08
// backspace folds onto the code the "Backspace" token parses to.
func NewKeyFromEvent(ev *tcell.EventKey) Key {
	var m Modifier
	evm := ev.Modifiers()
	if evm&tcell.ModShift != 0 {
		m |= ModShift
	}
	if evm&tcell.ModCtrl != 0 {
		m |= ModCtrl
	}
	if evm&tcell.ModAlt != 0 {
		m |= ModAlt
	}
	if evm&tcell.ModMeta != 0 {
		m |= ModMeta
	}

	code := ev.Key()
	ch := ev.Rune()
	switch {
	case code == tcell.KeyRune:
		// keep ch
	case m&ModCtrl != 0 && code >= tcell.KeyCtrlA && code <= tcell.KeyCtrlZ:
		ch = rune('a' + (code - tcell.KeyCtrlA))
		code = tcell.KeyRune
	case code == tcell.KeyBackspace && m&ModCtrl == 0:
		code = tcell.KeyBackspace2
		ch = 0
	default:
		ch = 0
	}

	return Key{Modifier: m, Key: code, Ch: ch}
}

// Compare orders keys by modifier, then code, then character.
func (k Key) Compare(x Key) int {
	if k.Modifier < x.Modifier {
		return -1
	} else if k.Modifier > x.Modifier {
		return 1
	}

	if k.Key < x.Key {
		return -1
	} else if k.Key > x.Key {
		return 1
	}

	if k.Ch < x.Ch {
		return -1
	} else if k.Ch > x.Ch {
		return 1
	}

	return 0
}

func (k Key) String() string {
	var s string
	if m := k.Modifier.String(); m != "" {
		s = m + "+"
	}

	base := Key{Key: k.Key, Ch: k.Ch}
	if name, ok := keyToString[base]; ok {
		s += name
	} else if k.Key == tcell.KeyRune {
		s += string([]rune{k.Ch})
	} else if name, ok := tcell.KeyNames[k.Key]; ok {
		s += name
	} else {
		s += "?"
	}

	return s
}

func (kl KeyList) Equals(x KeyList) bool {
	if len(kl) != len(x) {
		return false
	}

	for i := range kl {
		if kl[i].Compare(x[i]) != 0 {
			return false
		}
	}
	return true
}

func (kl KeyList) String() string {
	list := make([]string, len(kl))
	for i := range kl {
		list[i] = kl[i].String()
	}
	return strings.Join(list, " ")
}
