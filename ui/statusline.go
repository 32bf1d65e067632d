package ui

import (
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/jac-oblong/planit/config"
	"github.com/jac-oblong/planit/hub"
)

func NewStatusLine(screen Screen, styles *config.StyleSet) *StatusLine {
	return &StatusLine{
		screen: screen,
		styles: styles,
	}
}

// Draw paints the mode indicator and the galaxy title on the first
// row of area, and the command line on the second.
func (s *StatusLine) Draw(area Rect, mode hub.Mode, title string) {
	if area.Width <= 0 || area.Height <= 0 {
		return
	}

	s.msgMutex.Lock()
	s.area = area
	msg := s.msg
	s.msgMutex.Unlock()

	var tag string
	var tagStyle config.Style
	switch mode {
	case hub.ModeInsert:
		tag = "[INSERT]  "
		tagStyle = s.styles.StatuslineInsert
	case hub.ModeCommand:
		tag = "[COMMAND]  "
		tagStyle = s.styles.StatuslineCommand
	default:
		tag = "[NORMAL]  "
		tagStyle = s.styles.StatuslineNormal
	}

	limit := area.X + area.Width
	x := area.X
	x += s.screen.Start().X(x).Y(area.Y).Limit(limit).
		Style(TcellStyle(tagStyle)).Msg(tag).Print()

	title = runewidth.Truncate(title, limit-x, "...")
	s.screen.Start().X(x).Y(area.Y).Limit(limit).
		Style(TcellStyle(s.styles.Statusline)).Msg(title).Fill(true).Print()

	if area.Height >= 2 {
		s.printCommandLine(area, msg)
	}
}

// PrintStatus sets the message shown on the command line and paints
// it immediately. A non-zero clearDelay schedules the message to be
// erased after that long.
func (s *StatusLine) PrintStatus(msg string, clearDelay time.Duration) {
	s.timerMutex.Lock()
	if s.clearTimer != nil {
		s.clearTimer.Stop()
		s.clearTimer = nil
	}

	if clearDelay != 0 {
		s.clearTimer = time.AfterFunc(clearDelay, func() {
			s.PrintStatus("", 0)
		})
	}
	s.timerMutex.Unlock()

	s.msgMutex.Lock()
	s.msg = msg
	area := s.area
	s.msgMutex.Unlock()

	if area.Width <= 0 || area.Height < 2 {
		// not drawn yet; the message shows up on the next Draw
		return
	}

	s.printCommandLine(area, msg)
	s.screen.Flush()
}

func (s *StatusLine) printCommandLine(area Rect, msg string) {
	limit := area.X + area.Width
	msg = runewidth.Truncate(msg, area.Width, "...")
	s.screen.Start().X(area.X).Y(area.Y + 1).Limit(limit).
		Style(TcellStyle(s.styles.Statusline)).Msg(msg).Fill(true).Print()
}
