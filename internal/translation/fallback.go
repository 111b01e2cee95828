package translation

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

const (
	fallbackTagMessageID = "FallbackTag"
	genericFallbackTag   = "[Translation]"
)

// fallbackTags holds the localized tags prefixed to untranslated text.
type fallbackTags struct {
	bundle *i18n.Bundle
	// codes is the set of target codes with their own tag
	codes map[string]bool
}

func newFallbackTags() (*fallbackTags, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	paths, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("fs.Glob > %w", err)
	}
	for _, path := range paths {
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			return nil, fmt.Errorf("bundle.LoadMessageFileFS(%s) > %w", path, err)
		}
	}

	codes := make(map[string]bool)
	for _, tag := range bundle.LanguageTags() {
		if tag == language.English {
			continue
		}
		codes[tag.String()] = true
	}
	return &fallbackTags{
		bundle: bundle,
		codes:  codes,
	}, nil
}

func (tags *fallbackTags) tag(target string) string {
	if !tags.codes[target] {
		return genericFallbackTag
	}

	localizer := i18n.NewLocalizer(tags.bundle, target)
	tag, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID: fallbackTagMessageID,
	})
	if err != nil || tag == "" {
		return genericFallbackTag
	}
	return tag
}

func (tags *fallbackTags) apply(text, target string) string {
	return tags.tag(target) + " " + text
}
