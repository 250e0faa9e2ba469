package jotoba

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedResponse is returned when a word lacks the fields an entry is
// built from.
var ErrMalformedResponse = errors.New("malformed dictionary response")

type DefinitionItem struct {
	WordType []string
	Meaning  string
	Misc     string
}

// DictionaryItem is one search result ready to be rendered.
// Kanji and AudioLink are empty when the word has none.
type DictionaryItem struct {
	Title       string
	Kanji       string
	Kana        string
	AudioLink   string
	Definitions []DefinitionItem
}

func NewDictionaryItem(w Word) (DictionaryItem, error) {
	var item DictionaryItem
	if w.Reading == nil {
		return item, fmt.Errorf("%w: word has no reading", ErrMalformedResponse)
	}
	if w.Senses == nil {
		return item, fmt.Errorf("%w: word %q has no senses", ErrMalformedResponse, w.Reading.Kana)
	}

	if w.Reading.Kanji != "" {
		item.Title = w.Reading.Kanji + " (" + w.Reading.Kana + ")"
		item.Kanji = w.Reading.Kanji
	} else {
		item.Title = w.Reading.Kana
	}
	item.Kana = w.Reading.Kana
	item.AudioLink = w.Audio

	item.Definitions = make([]DefinitionItem, 0, len(w.Senses))
	for _, sense := range w.Senses {
		def := DefinitionItem{
			WordType: DecodeTags(sense.Pos),
			Meaning:  strings.Join(sense.Glosses, "; "),
		}
		if sense.Field != "" {
			def.Misc = ToReadable(sense.Field)
		}
		if sense.Misc != "" {
			def.Misc = ToReadable(sense.Misc)
		}
		item.Definitions = append(item.Definitions, def)
	}
	return item, nil
}

// Items builds one DictionaryItem per word, in response order. The first
// malformed word aborts the whole response.
func Items(resp *SearchResponse) ([]DictionaryItem, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: empty response", ErrMalformedResponse)
	}
	items := make([]DictionaryItem, 0, len(resp.Words))
	for i, w := range resp.Words {
		item, err := NewDictionaryItem(w)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}
