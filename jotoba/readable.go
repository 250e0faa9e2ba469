package jotoba

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// ToReadable turns an enum style name into a phrase: "JapaneseAccent"
// becomes "Japanese accent". Runs of capitals are not split.
func ToReadable(text string) string {
	spaced := camelBoundary.ReplaceAllString(text, "$1 $2")
	if spaced == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(spaced)
	return spaced[:size] + strings.ToLower(spaced[size:])
}
