package grammar

import (
	"regexp"
	"strings"
	"unicode"
)

var fullWidth = strings.NewReplacer(
	"＊", "*",
	"～", "~",
	"（", "(",
	"）", ")",
	"＋", "+",
	"－", "-",
	"．", ".",
	"／", "/",
	"［", "[",
	"］", "]",
)

var timesRe = regexp.MustCompile(`([\d)])[X×]([\d(])`)

// Normalize prepares raw cell text for matching: whitespace is dropped,
// letters are upper-cased, full-width punctuation is folded and an x or ×
// between two dimensions becomes *.
func Normalize(text string) string {
	text = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	text = fullWidth.Replace(text)
	text = strings.ToUpper(text)

	for {
		next := timesRe.ReplaceAllString(text, "$1*$2")
		if next == text {
			return text
		}
		text = next
	}
}
