package jotoba

import (
	"bytes"
	"encoding/json"
)

// Tag is one grammatical tag of a sense. The set of implementations is closed:
// NounTag, VerbTag, AdjectiveTag, LiteralTag and UnknownTag.
type Tag interface {
	tag()
}

// NounTag is {"Noun": Value}.
type NounTag struct {
	Value string
	Raw   string
}

// VerbTag is {"Verb": Value} or {"Verb": {"Irregular": ..}} / {"Verb": {"Godan": ..}}.
type VerbTag struct {
	Value     string
	Irregular string
	Godan     string
	HasGodan  bool
	Raw       string
}

// AdjectiveTag is {"Adjective": Value}.
type AdjectiveTag struct {
	Value string
	Raw   string
}

// LiteralTag is a plain enumerated string such as "Expr".
type LiteralTag struct {
	Value string
}

// UnknownTag is any other shape, kept as compact JSON text.
type UnknownTag struct {
	Raw string
}

func (NounTag) tag()      {}
func (VerbTag) tag()      {}
func (AdjectiveTag) tag() {}
func (LiteralTag) tag()   {}
func (UnknownTag) tag()   {}

// ParseTag classifies a raw tag. It never fails; shapes it does not know
// become UnknownTag.
func ParseTag(raw json.RawMessage) Tag {
	text := compact(raw)
	if text == "" || text == "null" {
		return UnknownTag{Raw: "null"}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return LiteralTag{Value: s}
	}

	var record map[string]json.RawMessage
	if err := json.Unmarshal(raw, &record); err != nil || record == nil {
		return UnknownTag{Raw: text}
	}

	if v, ok := record["Noun"]; ok {
		return NounTag{Value: stringValue(v), Raw: text}
	}
	if v, ok := record["Verb"]; ok {
		verb := VerbTag{Value: stringValue(v), Raw: text}
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(v, &nested); err == nil && nested != nil {
			if irr, ok := nested["Irregular"]; ok {
				verb.Irregular = stringValue(irr)
			}
			// null or "" counts as absent, like a missing key.
			if godan := stringValue(nested["Godan"]); godan != "" {
				verb.HasGodan = true
				verb.Godan = godan
			}
		}
		return verb
	}
	if v, ok := record["Adjective"]; ok {
		return AdjectiveTag{Value: stringValue(v), Raw: text}
	}
	return UnknownTag{Raw: text}
}

// Decode turns a tag into its human readable label. ok is false only for a
// Godan verb with an unknown ending, which yields no label at all.
func Decode(t Tag) (label string, ok bool) {
	switch t := t.(type) {
	case NounTag:
		switch t.Value {
		case "Normal":
			return "Noun", true
		case "Suffix":
			return "Noun - used as a suffix", true
		case "Prefix":
			return "Noun - used as a prefix", true
		}
		return t.Raw, true
	case VerbTag:
		if t.Value == "Intransitive" {
			return "Intransitive verb", true
		}
		if t.Irregular == "NounOrAuxSuru" {
			return "Suru verb", true
		}
		if t.HasGodan {
			switch t.Godan {
			case "Ru":
				return "Godan verb with 'ru' ending", true
			case "U":
				return "Godan verb with 'u' ending", true
			case "Rulrreg":
				return "Godan verb with 'ru' ending (irregular verb)", true
			}
			return "", false
		}
		switch t.Value {
		case "Transitive":
			return "Transitive verb", true
		case "Ichidan":
			return "Ichidan verb", true
		}
		return t.Raw, true
	case AdjectiveTag:
		switch t.Value {
		case "Keiyoushi":
			return "i-adjective", true
		case "Na":
			return "na-adjective", true
		case "PreNoun":
			return "Pre-noun adjectival", true
		case "Taru":
			return "'taru' adjective", true
		case "Nari":
			return "formal form of na-adjective", true
		case "No":
			return "Noun which may take the genitive case particle 'no'", true
		}
		return t.Raw, true
	case LiteralTag:
		switch t.Value {
		case "Expr":
			return "Expressions (phrases, clauses, etc.)", true
		case "AdverbTo":
			return "Adverb taking the 'to' particle", true
		case "Adverb":
			return "Adverb (fukushi)", true
		case "AuxilaryVerb":
			return "Auxiliary verb", true
		}
		return t.Value, true
	case UnknownTag:
		return t.Raw, true
	}
	return "", false
}

// DecodeTags decodes the tags of one sense in order.
func DecodeTags(raw []json.RawMessage) []string {
	labels := make([]string, 0, len(raw))
	for _, r := range raw {
		if label, ok := Decode(ParseTag(r)); ok {
			labels = append(labels, label)
		}
	}
	return labels
}

func stringValue(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func compact(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(bytes.TrimSpace(raw))
	}
	return buf.String()
}
