package providers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/langtutor/internal/config"
	hfinference "github.com/at-ishikawa/langtutor/internal/inference/huggingface"
	"github.com/at-ishikawa/langtutor/internal/inference/openai"
	"github.com/at-ishikawa/langtutor/internal/resource"
	"github.com/at-ishikawa/langtutor/internal/translation/google"
	hftranslation "github.com/at-ishikawa/langtutor/internal/translation/huggingface"
	"github.com/at-ishikawa/langtutor/internal/translation/mymemory"
)

func TestTranslationProvider(t *testing.T) {
	cfg := &config.Config{
		Translation: config.TranslationConfig{Provider: TranslationGoogle},
	}

	tests := []struct {
		name     string
		provider string
		wantType any
		wantName string
	}{
		{
			name:     "configured provider",
			wantType: &google.Client{},
			wantName: "google",
		},
		{
			name:     "name overrides the config",
			provider: TranslationMyMemory,
			wantType: &mymemory.Client{},
			wantName: "mymemory",
		},
		{
			name:     "hugging face",
			provider: TranslationHuggingFace,
			wantType: &hftranslation.Client{},
			wantName: "huggingface",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TranslationProvider(cfg, tt.provider)
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, got)
			assert.Equal(t, tt.wantName, got.Name())
		})
	}

	_, err := TranslationProvider(&config.Config{}, "")
	assert.ErrorContains(t, err, "invalid translation provider")
}

func TestTranslationClient(t *testing.T) {
	client, err := TranslationClient(&config.Config{
		Translation: config.TranslationConfig{Provider: TranslationMyMemory, TimeoutSeconds: 3},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "mymemory", client.ProviderName())

	_, err = TranslationClient(&config.Config{}, "deepl")
	assert.ErrorContains(t, err, "invalid translation provider: deepl")
}

func TestChatClient(t *testing.T) {
	client, model, err := ChatClient(&config.Config{
		Chat: config.ChatConfig{Provider: ChatHuggingFace, Model: "facebook/blenderbot-400M-distill"},
	})
	require.NoError(t, err)
	assert.IsType(t, &hfinference.Client{}, client)
	assert.Equal(t, "facebook/blenderbot-400M-distill", model)

	client, model, err = ChatClient(&config.Config{
		Chat: config.ChatConfig{Provider: ChatOpenAI},
	})
	require.NoError(t, err)
	assert.IsType(t, &openai.Client{}, client)
	assert.Equal(t, openai.DefaultModel, model)

	_, _, err = ChatClient(&config.Config{})
	assert.ErrorContains(t, err, "invalid chat provider")
}

func TestResourceRepository_Catalog(t *testing.T) {
	repository, release, err := ResourceRepository(context.Background(), &config.Config{
		Resources: config.ResourcesConfig{Source: "catalog"},
	})
	require.NoError(t, err)
	defer release()

	resources, err := repository.FindResources(context.Background(), "es", resource.LevelBeginner)
	require.NoError(t, err)
	require.NotEmpty(t, resources)
	assert.Equal(t, "Duolingo Spanish", resources[0].Title)
}

func TestCatalog_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte(`resources:
  it:
    beginner:
      - title: Italiano Facile
        type: reading
        url: https://example.com/italiano
        free: true
chatbots: {}
`), 0o644))

	catalog, err := Catalog(&config.Config{Resources: config.ResourcesConfig{CatalogFile: path}})
	require.NoError(t, err)
	assert.Equal(t, []string{"it"}, catalog.Languages())

	_, err = Catalog(&config.Config{Resources: config.ResourcesConfig{CatalogFile: filepath.Join(t.TempDir(), "missing.yml")}})
	assert.ErrorContains(t, err, "resource.LoadCatalogRepository")
}
