package ui

import (
	te "github.com/muesli/termenv"
)

var (
	StyleLogo        = NewStyle("#ffc27d", "#f37329", true, false)
	StyleHelp        = NewStyle("#4e4e4e", "", true, false)
	StyleTitle       = NewStyle("#ff5faf", "", true, false)
	StyleTitleSelect = NewStyle("#ffc27d", "", true, false)
	StyleMeaning     = NewStyle("#ffffff", "", false, false)
	StyleWordType    = NewStyle("#66C2CD", "", false, true)
	StyleMisc        = NewStyle("#B9BFCA", "", false, true)
	StyleNoteState   = NewStyle("#D290E4", "", false, false)
	StyleNotice      = NewStyle("#98c379", "", false, false)
	StyleError       = NewStyle("#e06c75", "", true, false)
	StyleKey         = NewStyle("#ffc27d", "", true, false)
	StyleKeyHelp     = NewStyle("#B9BFCA", "", false, false)
)

func NewStyle(fg string, bg string, bold bool, italic bool) func(string) string {
	s := te.Style{}.Foreground(te.ColorProfile().Color(fg)).Background(te.ColorProfile().Color(bg))
	if bold {
		s = s.Bold()
	}
	if italic {
		s = s.Italic()
	}
	return s.Styled
}
