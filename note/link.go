package note

import (
	"fmt"

	"github.com/lai323/jdict/jotoba"
)

// LinkMode decides what the selected text is replaced with inside the link.
type LinkMode string

const (
	DoNotReplace             LinkMode = "do-not-replace"
	AddFurigana              LinkMode = "add-furigana"
	ReplaceKanjiNoFurigana   LinkMode = "replace-kanji-no-furigana"
	ReplaceKanjiWithFurigana LinkMode = "replace-kanji-with-furigana"
)

var LinkModes = []LinkMode{DoNotReplace, AddFurigana, ReplaceKanjiNoFurigana, ReplaceKanjiWithFurigana}

func ParseLinkMode(s string) (LinkMode, error) {
	for _, m := range LinkModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown link mode %q", s)
}

// furiganaSep is escaped so the pipe does not end the wiki link alias.
const furiganaSep = `\|`

// FormatReplacement returns the wiki link that replaces selection.
// Entries without kanji put an empty kanji in both kanji modes.
func FormatReplacement(item jotoba.DictionaryItem, selection string, mode LinkMode) string {
	var token string
	switch mode {
	case AddFurigana:
		token = "{" + selection + furiganaSep + item.Kana + "}"
	case ReplaceKanjiNoFurigana:
		token = item.Kanji
	case ReplaceKanjiWithFurigana:
		token = "{" + item.Kanji + furiganaSep + item.Kana + "}"
	default:
		token = selection
	}
	return "[[" + item.Title + "|" + token + "]]"
}
