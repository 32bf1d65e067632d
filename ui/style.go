package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/jac-oblong/planit/config"
)

// tcellColor converts the color part of a config attribute. Palette
// values are stored one-based so that zero can mean "terminal
// default"; tcell's palette is zero-based.
func tcellColor(a config.Attribute) tcell.Color {
	if a&config.AttrTrueColor != 0 {
		return tcell.NewHexColor(int32(a & 0xFFFFFF))
	}

	c := a & 0xFFFFFF
	if c == 0 {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(int(c) - 1)
}

// TcellStyle converts a config style to the equivalent tcell style.
func TcellStyle(st config.Style) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(tcellColor(st.Fg)).
		Background(tcellColor(st.Bg))

	attrs := st.Fg | st.Bg
	if attrs&config.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attrs&config.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if attrs&config.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	return style
}
