package translation

import (
	"strings"
	"unicode"
)

type scriptRule struct {
	code   string
	tables []*unicode.RangeTable
}

// kanaBlock covers the Hiragana and Katakana blocks, including the prolonged sound mark
// and middle dot that belong to the Common script
var kanaBlock = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x3040, Hi: 0x30ff, Stride: 1}},
}

// arabicBlock covers the Arabic block, including its comma, semicolon and question mark
var arabicBlock = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0600, Hi: 0x06ff, Stride: 1}},
}

// Rules are checked in order, so mixed-script text resolves to the first match.
var scriptRules = []scriptRule{
	{code: "ru", tables: []*unicode.RangeTable{unicode.Cyrillic}},
	{code: "zh", tables: []*unicode.RangeTable{unicode.Han}},
	{code: "ja", tables: []*unicode.RangeTable{unicode.Hiragana, unicode.Katakana, kanaBlock}},
	{code: "ko", tables: []*unicode.RangeTable{unicode.Hangul}},
	{code: "el", tables: []*unicode.RangeTable{unicode.Greek}},
	{code: "ar", tables: []*unicode.RangeTable{unicode.Arabic, arabicBlock}},
}

const defaultDetectedLanguage = "en"

// DetectLanguage guesses the language of the text from the scripts it is written in.
// Text without any recognized script is reported as English.
func DetectLanguage(text string) string {
	for _, rule := range scriptRules {
		if strings.ContainsFunc(text, func(r rune) bool {
			return unicode.In(r, rule.tables...)
		}) {
			return rule.code
		}
	}
	return defaultDetectedLanguage
}
