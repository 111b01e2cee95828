// Package providers builds the clients and repositories selected by the configuration.
package providers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/langtutor/internal/config"
	"github.com/at-ishikawa/langtutor/internal/database"
	"github.com/at-ishikawa/langtutor/internal/inference"
	hfinference "github.com/at-ishikawa/langtutor/internal/inference/huggingface"
	"github.com/at-ishikawa/langtutor/internal/inference/openai"
	"github.com/at-ishikawa/langtutor/internal/resource"
	"github.com/at-ishikawa/langtutor/internal/translation"
	"github.com/at-ishikawa/langtutor/internal/translation/google"
	hftranslation "github.com/at-ishikawa/langtutor/internal/translation/huggingface"
	"github.com/at-ishikawa/langtutor/internal/translation/mymemory"
)

const (
	TranslationMyMemory    = "mymemory"
	TranslationGoogle      = "google"
	TranslationHuggingFace = "huggingface"

	ChatHuggingFace = "huggingface"
	ChatOpenAI      = "openai"

	ResourcesDatabase = "database"
)

// TranslationProvider returns the named provider, or the configured one when name is empty
func TranslationProvider(cfg *config.Config, name string) (translation.Provider, error) {
	if name == "" {
		name = cfg.Translation.Provider
	}
	switch name {
	case TranslationMyMemory:
		return mymemory.NewClient(cfg.Translation.MyMemory.BaseURL, cfg.Translation.MyMemory.Email), nil
	case TranslationGoogle:
		return google.NewClient(cfg.Translation.Google.BaseURL, cfg.Translation.Google.APIKey), nil
	case TranslationHuggingFace:
		return hftranslation.NewClient(cfg.HuggingFace.BaseURL, cfg.HuggingFace.APIKey), nil
	}
	return nil, fmt.Errorf("invalid translation provider: %s", name)
}

func TranslationClient(cfg *config.Config, name string) (*translation.Client, error) {
	provider, err := TranslationProvider(cfg, name)
	if err != nil {
		return nil, err
	}
	client, err := translation.NewClient(provider, translation.WithTimeout(cfg.Translation.Timeout()))
	if err != nil {
		return nil, fmt.Errorf("translation.NewClient > %w", err)
	}
	return client, nil
}

// ChatClient returns the client of the configured chat provider and the model to ask by default
func ChatClient(cfg *config.Config) (inference.Client, string, error) {
	switch cfg.Chat.Provider {
	case ChatHuggingFace:
		return hfinference.NewClient(cfg.HuggingFace.BaseURL, cfg.HuggingFace.APIKey, cfg.Chat.MaxRetryAttempts), cfg.Chat.Model, nil
	case ChatOpenAI:
		client := openai.NewClient(cfg.Chat.OpenAI.BaseURL, cfg.Chat.OpenAI.APIKey, cfg.Chat.OpenAI.Model, cfg.Chat.MaxRetryAttempts)
		return client, client.GetModel(), nil
	}
	return nil, "", fmt.Errorf("invalid chat provider: %s", cfg.Chat.Provider)
}

// Catalog loads the configured catalog file, or the embedded catalog when none is set
func Catalog(cfg *config.Config) (*resource.CatalogRepository, error) {
	if cfg.Resources.CatalogFile != "" {
		catalog, err := resource.LoadCatalogRepository(cfg.Resources.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("resource.LoadCatalogRepository > %w", err)
		}
		return catalog, nil
	}
	catalog, err := resource.NewCatalogRepository()
	if err != nil {
		return nil, fmt.Errorf("resource.NewCatalogRepository > %w", err)
	}
	return catalog, nil
}

// ResourceRepository returns the repository of the configured source and a func to release it
func ResourceRepository(ctx context.Context, cfg *config.Config) (resource.Repository, func(), error) {
	if cfg.Resources.Source == ResourcesDatabase {
		db, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Connect > %w", err)
		}
		return resource.NewDBRepository(db), func() {
			if err := db.Close(); err != nil {
				slog.Default().Warn("failed to close the database", "error", err)
			}
		}, nil
	}

	catalog, err := Catalog(cfg)
	if err != nil {
		return nil, nil, err
	}
	return catalog, func() {}, nil
}
