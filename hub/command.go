package hub

import "github.com/pkg/errors"

// Mode is the modal-input state the program is in. Bindings are looked
// up in the keymap of the active mode only. The zero value is
// ModeNormal.
type Mode int

const (
	ModeNormal  Mode = iota // ModeNormal is the default navigation mode
	ModeCommand             // ModeCommand is for entering ex-style commands
	ModeInsert              // ModeInsert is for editing text
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeCommand:
		return "Command"
	case ModeInsert:
		return "Insert"
	}
	return "Unknown"
}

// ParseMode converts a mode name as it appears in configuration files.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "normal":
		return ModeNormal, nil
	case "command":
		return ModeCommand, nil
	case "insert":
		return ModeInsert, nil
	}
	return ModeNormal, errors.Errorf("unknown mode '%s'", s)
}

// CommandType is the type of a resolved command.
type CommandType int

const (
	Quit       CommandType = iota // Quit exits the application loop
	Redraw                        // Redraw repaints the screen from scratch
	UpdateMode                    // UpdateMode switches the active input mode
	MoveCursor                    // MoveCursor moves the cursor within the focused view
	MoveFocus                     // MoveFocus moves focus between split views
	SplitView                     // SplitView splits the focused view in two
)

func (ct CommandType) String() string {
	switch ct {
	case Quit:
		return "Quit"
	case Redraw:
		return "Redraw"
	case UpdateMode:
		return "UpdateMode"
	case MoveCursor:
		return "MoveCursor"
	case MoveFocus:
		return "MoveFocus"
	case SplitView:
		return "SplitView"
	}
	return "Unknown"
}

// Command is what key sequences resolve to. Commands that carry no
// data are represented by their CommandType directly.
type Command interface {
	Type() CommandType
}

// Type satisfies the Command interface for CommandType itself.
func (ct CommandType) Type() CommandType {
	return ct
}

// Direction is a cursor or focus movement direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "Unknown"
}

// SplitDirection selects how a view is split in two.
type SplitDirection int

const (
	Horizontal SplitDirection = iota // Horizontal stacks the halves top and bottom
	Vertical                         // Vertical places the halves side by side
)

func (d SplitDirection) String() string {
	switch d {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	}
	return "Unknown"
}

// UpdateModeCommand is a Command that switches the active input mode.
type UpdateModeCommand Mode

// Type satisfies the Command interface.
func (c UpdateModeCommand) Type() CommandType {
	return UpdateMode
}

// Mode returns the mode to switch to.
func (c UpdateModeCommand) Mode() Mode {
	return Mode(c)
}

func (c UpdateModeCommand) String() string {
	return "UpdateMode(" + Mode(c).String() + ")"
}

// MoveCursorCommand is a Command that moves the cursor within the
// focused view.
type MoveCursorCommand Direction

// Type satisfies the Command interface.
func (c MoveCursorCommand) Type() CommandType {
	return MoveCursor
}

// Direction returns the movement direction.
func (c MoveCursorCommand) Direction() Direction {
	return Direction(c)
}

func (c MoveCursorCommand) String() string {
	return "MoveCursor(" + Direction(c).String() + ")"
}

// MoveFocusCommand is a Command that moves focus between split views.
type MoveFocusCommand Direction

// Type satisfies the Command interface.
func (c MoveFocusCommand) Type() CommandType {
	return MoveFocus
}

// Direction returns the movement direction.
func (c MoveFocusCommand) Direction() Direction {
	return Direction(c)
}

func (c MoveFocusCommand) String() string {
	return "MoveFocus(" + Direction(c).String() + ")"
}

// SplitViewCommand is a Command that splits the focused view in two.
type SplitViewCommand SplitDirection

// Type satisfies the Command interface.
func (c SplitViewCommand) Type() CommandType {
	return SplitView
}

// Direction returns the split direction.
func (c SplitViewCommand) Direction() SplitDirection {
	return SplitDirection(c)
}

func (c SplitViewCommand) String() string {
	return "SplitView(" + SplitDirection(c).String() + ")"
}
