package note

import (
	"strconv"
	"strings"

	"github.com/lai323/jdict/jotoba"
)

// Render builds the body of the note created for item.
func Render(item jotoba.DictionaryItem) string {
	var b strings.Builder

	b.WriteString("## Definitions\n\n")
	for i, def := range item.Definitions {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". **")
		b.WriteString(def.Meaning)
		b.WriteString("**\n\n")
		b.WriteString("\t- <sub><sup>")
		b.WriteString(strings.Join(def.WordType, ", "))
		b.WriteString("</sub></sup>\n\n")
	}

	b.WriteString("## Kanji\n")
	b.WriteString("(to be followed)\n\n")

	if item.AudioLink != "" {
		b.WriteString("## Reading\n")
		b.WriteString("- " + jotoba.BaseURL + item.AudioLink)
	}
	return b.String()
}
