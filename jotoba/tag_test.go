package jotoba

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_KnownTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{`{"Noun":"Normal"}`, "Noun"},
		{`{"Noun":"Suffix"}`, "Noun - used as a suffix"},
		{`{"Noun":"Prefix"}`, "Noun - used as a prefix"},
		{`{"Verb":"Intransitive"}`, "Intransitive verb"},
		{`{"Verb":{"Irregular":"NounOrAuxSuru"}}`, "Suru verb"},
		{`{"Verb":{"Godan":"Ru"}}`, "Godan verb with 'ru' ending"},
		{`{"Verb":{"Godan":"U"}}`, "Godan verb with 'u' ending"},
		{`{"Verb":{"Godan":"Rulrreg"}}`, "Godan verb with 'ru' ending (irregular verb)"},
		{`{"Verb":"Transitive"}`, "Transitive verb"},
		{`{"Verb":"Ichidan"}`, "Ichidan verb"},
		{`{"Adjective":"Keiyoushi"}`, "i-adjective"},
		{`{"Adjective":"Na"}`, "na-adjective"},
		{`{"Adjective":"PreNoun"}`, "Pre-noun adjectival"},
		{`{"Adjective":"Taru"}`, "'taru' adjective"},
		{`{"Adjective":"Nari"}`, "formal form of na-adjective"},
		{`{"Adjective":"No"}`, "Noun which may take the genitive case particle 'no'"},
		{`"Expr"`, "Expressions (phrases, clauses, etc.)"},
		{`"AdverbTo"`, "Adverb taking the 'to' particle"},
		{`"Adverb"`, "Adverb (fukushi)"},
		{`"AuxilaryVerb"`, "Auxiliary verb"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			label, ok := Decode(ParseTag(json.RawMessage(tt.raw)))
			require.True(t, ok)
			assert.Equal(t, tt.want, label)
		})
	}
}

func TestDecode_Fallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"unknown noun", `{"Noun":"Temporal"}`, `{"Noun":"Temporal"}`},
		{"unknown verb", `{ "Verb" : "Kuru" }`, `{"Verb":"Kuru"}`},
		{"unknown irregular", `{"Verb":{"Irregular":"Special"}}`, `{"Verb":{"Irregular":"Special"}}`},
		{"unknown adjective", `{"Adjective":"Ku"}`, `{"Adjective":"Ku"}`},
		{"plain string", `"Conjunction"`, "Conjunction"},
		{"corrected spelling is not matched", `"AuxiliaryVerb"`, "AuxiliaryVerb"},
		{"unknown record", `{"Pronoun":"X","Other":1}`, `{"Pronoun":"X","Other":1}`},
		{"number", `5`, "5"},
		{"array", `["Noun"]`, `["Noun"]`},
		{"null", `null`, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, ok := Decode(ParseTag(json.RawMessage(tt.raw)))
			require.True(t, ok)
			assert.NotEmpty(t, label)
			assert.Equal(t, tt.want, label)
		})
	}
}

func TestDecode_Precedence(t *testing.T) {
	t.Parallel()

	// Noun wins over Verb even when both keys are present.
	label, ok := Decode(ParseTag(json.RawMessage(`{"Verb":"Transitive","Noun":"Normal"}`)))
	require.True(t, ok)
	assert.Equal(t, "Noun", label)

	// Irregular suru is checked before Godan.
	label, ok = Decode(ParseTag(json.RawMessage(`{"Verb":{"Godan":"U","Irregular":"NounOrAuxSuru"}}`)))
	require.True(t, ok)
	assert.Equal(t, "Suru verb", label)
}

func TestDecode_GodanGap(t *testing.T) {
	t.Parallel()

	label, ok := Decode(ParseTag(json.RawMessage(`{"Verb":{"Godan":"Ku"}}`)))
	assert.False(t, ok)
	assert.Empty(t, label)

	// An empty Godan value is not a Godan verb and falls back to the raw text.
	for _, raw := range []string{`{"Verb":{"Godan":null}}`, `{"Verb":{"Godan":""}}`} {
		label, ok = Decode(ParseTag(json.RawMessage(raw)))
		assert.True(t, ok, raw)
		assert.Equal(t, raw, label)
	}
}

func TestParseTag_Variants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, LiteralTag{Value: "Expr"}, ParseTag(json.RawMessage(`"Expr"`)))
	assert.Equal(t, NounTag{Value: "Normal", Raw: `{"Noun":"Normal"}`}, ParseTag(json.RawMessage(`{"Noun":"Normal"}`)))
	assert.Equal(t,
		VerbTag{Godan: "Ru", HasGodan: true, Raw: `{"Verb":{"Godan":"Ru"}}`},
		ParseTag(json.RawMessage(`{"Verb":{"Godan":"Ru"}}`)))
	assert.IsType(t, UnknownTag{}, ParseTag(json.RawMessage(`{"Particle":"Case"}`)))
}

func TestDecodeTags(t *testing.T) {
	t.Parallel()

	raw := []json.RawMessage{
		json.RawMessage(`"Expr"`),
		json.RawMessage(`{"Verb":{"Godan":"Ku"}}`),
		json.RawMessage(`{"Noun":"Normal"}`),
		json.RawMessage(`"Unclassified"`),
	}
	assert.Equal(t,
		[]string{"Expressions (phrases, clauses, etc.)", "Noun", "Unclassified"},
		DecodeTags(raw))
	assert.Equal(t, DecodeTags(raw), DecodeTags(raw))
	assert.Empty(t, DecodeTags(nil))
}

func TestToReadable(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"JapaneseAccent":       "Japanese accent",
		"AuxilaryVerb":         "Auxilary verb",
		"UsuallyWrittenInKana": "Usually written in kana",
		"ABCWord":              "Abcword",
		"computing":            "computing",
		"aBcD":                 "a bc d",
		"":                     "",
	}
	for in, want := range tests {
		assert.Equal(t, want, ToReadable(in), "ToReadable(%q)", in)
	}
}
