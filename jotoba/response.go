package jotoba

import "encoding/json"

// SearchResponse is the body returned by the word search endpoint.
// Only the parts read by NewDictionaryItem are typed.
type SearchResponse struct {
	Kanji []json.RawMessage `json:"kanji"`
	Words []Word            `json:"words"`
}

type Word struct {
	Reading *Reading `json:"reading"`
	Common  bool     `json:"common"`
	Senses  []Sense  `json:"senses"`
	Audio   string   `json:"audio"`
}

type Reading struct {
	Kana     string `json:"kana"`
	Kanji    string `json:"kanji"`
	Furigana string `json:"furigana"`
}

// Sense keeps the part of speech tags raw, see ParseTag.
type Sense struct {
	Glosses  []string          `json:"glosses"`
	Pos      []json.RawMessage `json:"pos"`
	Language string            `json:"language"`
	Field    string            `json:"field"`
	Misc     string            `json:"misc"`
}
