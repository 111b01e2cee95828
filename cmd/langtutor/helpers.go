package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/langtutor/internal/config"
	"github.com/at-ishikawa/langtutor/internal/providers"
	"github.com/at-ishikawa/langtutor/internal/translation"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

type TranslationProvider string

const (
	TranslationProviderMyMemory    TranslationProvider = providers.TranslationMyMemory
	TranslationProviderGoogle      TranslationProvider = providers.TranslationGoogle
	TranslationProviderHuggingFace TranslationProvider = providers.TranslationHuggingFace
)

var (
	_                       pflag.Value = (*TranslationProvider)(nil)
	allTranslationProviders             = []TranslationProvider{
		TranslationProviderMyMemory,
		TranslationProviderGoogle,
		TranslationProviderHuggingFace,
	}
)

func (p *TranslationProvider) Set(val string) error {
	for _, provider := range allTranslationProviders {
		if val == string(provider) {
			*p = provider
			return nil
		}
	}
	return fmt.Errorf("invalid translation provider: %s", val)
}

func (p TranslationProvider) String() string {
	return string(p)
}

func (p *TranslationProvider) Type() string {
	return "provider"
}

// addProviderFlag registers --provider, which overrides translation.provider of the config when set
func addProviderFlag(flags *pflag.FlagSet, provider *TranslationProvider) {
	flags.Var(provider, "provider", fmt.Sprintf("Translation provider. Possible values are %v", allTranslationProviders))
}

func newTranslationClient(cfg *config.Config, provider TranslationProvider) (*translation.Client, error) {
	return providers.TranslationClient(cfg, string(provider))
}
