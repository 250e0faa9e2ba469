package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
)

// getElementWidth splits widthTotal over count cells.
func getElementWidth(widthTotal int, count int) (int, int) {
	if count == 0 {
		return 0, 0
	}
	return widthTotal / count, widthTotal % count
}

type TextAlign int

const (
	LeftAlign TextAlign = iota
	RightAlign
)

func (ta TextAlign) String() string {
	switch ta {
	case LeftAlign:
		return "LeftAlign"
	case RightAlign:
		return "RightAlign"
	}
	return fmt.Sprintf("TextAlign(%d)", int(ta))
}

// Cell is one column of a Line. Width <= 0 shares the remaining width.
type Cell struct {
	Text  string
	Width int
	Align TextAlign
}

// Line lays cells out on one row of the given width. Widths are display
// widths, so kana and kanji count as two columns.
func Line(width int, cells ...Cell) string {
	widthFlex := width
	var flex []int

	for i, cell := range cells {
		if cell.Width <= 0 {
			flex = append(flex, i)
			continue
		}
		widthFlex -= cell.Width
	}

	each, remainder := getElementWidth(widthFlex, len(flex))
	for n, i := range flex {
		cells[i].Width = each
		if n < remainder {
			cells[i].Width++
		}
	}

	var b strings.Builder
	for _, cell := range cells {
		if cell.Width < 0 {
			cell.Width = 0
		}
		textWidth := ansi.PrintableRuneWidth(cell.Text)
		if textWidth > cell.Width {
			cell.Text = Truncate(cell.Text, cell.Width)
			textWidth = ansi.PrintableRuneWidth(cell.Text)
		}

		pad := strings.Repeat(" ", cell.Width-textWidth)
		if cell.Align == RightAlign {
			b.WriteString(pad + cell.Text)
			continue
		}
		b.WriteString(cell.Text + pad)
	}
	return b.String()
}

// Truncate cuts old to at most n display columns, dropping ANSI sequences
// when it has to cut.
func Truncate(old string, n int) string {
	var (
		b      strings.Builder
		width  int
		isansi bool
	)
	if n <= 0 {
		return ""
	}
	if ansi.PrintableRuneWidth(old) <= n {
		return old
	}
	for _, c := range old {
		if c == ansi.Marker {
			isansi = true
			continue
		}
		if isansi {
			if ansi.IsTerminator(c) {
				isansi = false
			}
			continue
		}
		w := runewidth.RuneWidth(c)
		if width+w > n {
			break
		}
		b.WriteRune(c)
		width += w
	}
	return b.String()
}

func JoinLines(texts ...string) string {
	return strings.Join(
		texts,
		"\n",
	)
}
