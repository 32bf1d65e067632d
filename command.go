package planit

import "github.com/jac-oblong/planit/hub"

// This is the global map of canonical command name to commands
var nameToCommands map[string]hub.Command

// register adds c to the global command registry under the name
// `name`. Called during package init() to set up the built-in
// commands.
func register(name string, c hub.Command) {
	nameToCommands["planit."+name] = c
}

// LookupCommand resolves a canonical command name, such as
// "planit.Quit", as it appears in the Keymap section of the
// configuration file.
func LookupCommand(name string) (hub.Command, bool) {
	c, ok := nameToCommands[name]
	return c, ok
}

func init() {
	nameToCommands = map[string]hub.Command{}

	register("Quit", hub.Quit)
	register("Redraw", hub.Redraw)
	register("ModeNormal", hub.UpdateModeCommand(hub.ModeNormal))
	register("ModeInsert", hub.UpdateModeCommand(hub.ModeInsert))
	register("ModeCommand", hub.UpdateModeCommand(hub.ModeCommand))
	register("CursorUp", hub.MoveCursorCommand(hub.Up))
	register("CursorDown", hub.MoveCursorCommand(hub.Down))
	register("CursorLeft", hub.MoveCursorCommand(hub.Left))
	register("CursorRight", hub.MoveCursorCommand(hub.Right))
	register("FocusUp", hub.MoveFocusCommand(hub.Up))
	register("FocusDown", hub.MoveFocusCommand(hub.Down))
	register("FocusLeft", hub.MoveFocusCommand(hub.Left))
	register("FocusRight", hub.MoveFocusCommand(hub.Right))
	register("SplitHorizontal", hub.SplitViewCommand(hub.Horizontal))
	register("SplitVertical", hub.SplitViewCommand(hub.Vertical))
}
