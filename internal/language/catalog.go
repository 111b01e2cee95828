// Package language holds the catalog of languages the tutor can translate
// between. Every other package reads language codes and names from here.
package language

// AutoDetect is the source language marker asking the provider to detect the
// source language itself.
const AutoDetect = "auto"

// Descriptor describes a single supported language.
type Descriptor struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// catalog is in display order.
var catalog = []Descriptor{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "it", Name: "Italian"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "ru", Name: "Russian"},
	{Code: "zh", Name: "Chinese"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ko", Name: "Korean"},
	{Code: "ar", Name: "Arabic"},
	{Code: "hi", Name: "Hindi"},
	{Code: "tr", Name: "Turkish"},
	{Code: "nl", Name: "Dutch"},
	{Code: "pl", Name: "Polish"},
	{Code: "sv", Name: "Swedish"},
	{Code: "da", Name: "Danish"},
	{Code: "fi", Name: "Finnish"},
	{Code: "no", Name: "Norwegian"},
	{Code: "el", Name: "Greek"},
}

var speechLocales = map[string]string{
	"en": "en-US",
	"es": "es-ES",
	"fr": "fr-FR",
	"de": "de-DE",
	"it": "it-IT",
	"pt": "pt-PT",
	"ru": "ru-RU",
	"zh": "zh-CN",
	"ja": "ja-JP",
	"ko": "ko-KR",
	"ar": "ar-SA",
	"hi": "hi-IN",
}

const defaultSpeechLocale = "en-US"

// Supported returns the supported languages in display order.
// The returned slice is a copy and can be modified by the caller.
func Supported() []Descriptor {
	result := make([]Descriptor, len(catalog))
	copy(result, catalog)
	return result
}

// Lookup returns the descriptor for the code.
func Lookup(code string) (Descriptor, bool) {
	for _, d := range catalog {
		if d.Code == code {
			return d, true
		}
	}
	return Descriptor{}, false
}

// IsSupported reports whether the code is in the catalog.
func IsSupported(code string) bool {
	_, ok := Lookup(code)
	return ok
}

// NameForCode returns the display name of the code, or the code itself when
// it is not in the catalog.
func NameForCode(code string) string {
	if d, ok := Lookup(code); ok {
		return d.Name
	}
	return code
}

// SpeechLocale returns the locale tag used for speech synthesis of the code.
func SpeechLocale(code string) string {
	if locale, ok := speechLocales[code]; ok {
		return locale
	}
	return defaultSpeechLocale
}
