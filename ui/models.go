package ui

import (
	"fmt"
	"strings"

	"github.com/lai323/jdict/jotoba"
)

// EntryView renders one search result for the terminal.
func EntryView(item jotoba.DictionaryItem, selected bool, state string) string {
	var lines []string

	title := StyleTitle(item.Title)
	marker := "  "
	if selected {
		title = StyleTitleSelect(item.Title)
		marker = StyleTitleSelect("> ")
	}
	if state != "" {
		title += "  " + StyleNoteState("["+state+"]")
	}
	lines = append(lines, marker+title)

	for i, def := range item.Definitions {
		meaning := fmt.Sprintf("    %d. %s", i+1, StyleMeaning(def.Meaning))
		if def.Misc != "" {
			meaning += " " + StyleMisc("("+def.Misc+")")
		}
		lines = append(lines, meaning)
		if len(def.WordType) != 0 {
			lines = append(lines, "       "+StyleWordType(strings.Join(def.WordType, ", ")))
		}
	}
	return JoinLines(lines...)
}

// ResultsView renders all results with the cursor on index cursor.
// states holds the note state label per result and may be shorter.
func ResultsView(query string, items []jotoba.DictionaryItem, cursor int, states []string) string {
	if len(items) == 0 {
		return StyleHelp(fmt.Sprintf("No results for %s", query))
	}
	views := []string{StyleHelp(fmt.Sprintf("Results for %s:", query)), ""}
	for i, item := range items {
		var state string
		if i < len(states) {
			state = states[i]
		}
		views = append(views, EntryView(item, i == cursor, state), "")
	}
	return JoinLines(views...)
}

type HelpModel struct {
	Keyhelp [][]string
	Active  bool
}

func (m HelpModel) View() string {
	var text []string
	text = append(text, "")
	text = append(text, "")
	for _, info := range m.Keyhelp {
		k, help := info[0], info[1]
		text = append(text,
			Line(
				40,
				Cell{
					Width: 4,
				},
				Cell{
					Width: 10,
					Align: LeftAlign,
					Text:  StyleKey(k),
				},
				Cell{
					Align: LeftAlign,
					Text:  StyleKeyHelp(help),
				},
			))
	}
	return strings.Join(text, "\n")
}

// Notice formats a one line status message.
func Notice(text string, isErr bool) string {
	if isErr {
		return StyleError(text)
	}
	return StyleNotice(text)
}
