package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
			CORS: CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		},
		Translation: TranslationConfig{
			Provider:       "mymemory",
			TimeoutSeconds: 10,
		},
		Chat: ChatConfig{
			Provider:       "huggingface",
			Model:          "microsoft/DialoGPT-medium",
			TimeoutSeconds: 30,
			OpenAI:         OpenAIConfig{Model: "gpt-4o-mini"},
		},
		Resources: ResourcesConfig{
			Source: "catalog",
		},
		Transcripts: TranscriptsConfig{
			ExportDirectory: filepath.Join("outputs", "transcripts"),
			Format:          "text",
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     3306,
			Database: "langtutor",
			Username: "user",
		},
	}
}

func clearCredentialEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{"HUGGING_FACE_API_KEY", "GOOGLE_TRANSLATE_API_KEY", "OPENAI_API_KEY", "DB_PASSWORD"} {
		t.Setenv(env, "")
	}
}

func TestConfigLoader_Load(t *testing.T) {
	catalogFile := filepath.Join(t.TempDir(), "resources.yml")
	require.NoError(t, os.WriteFile(catalogFile, []byte("resources: []\n"), 0644))

	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name:          "no config file uses defaults",
			configContent: "",
			want:          defaultConfig,
		},
		{
			name: "valid config file with custom values",
			configContent: `translation:
  provider: google
  timeout_seconds: 5
  mymemory:
    email: learner@example.com
chat:
  model: facebook/blenderbot-400M-distill
  max_retry_attempts: 2
resources:
  source: database
  catalog_file: ` + catalogFile + `
transcripts:
  format: pdf
server:
  port: 9090
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Translation.Provider = "google"
				cfg.Translation.TimeoutSeconds = 5
				cfg.Translation.MyMemory.Email = "learner@example.com"
				cfg.Chat.Model = "facebook/blenderbot-400M-distill"
				cfg.Chat.MaxRetryAttempts = 2
				cfg.Resources.Source = "database"
				cfg.Resources.CatalogFile = catalogFile
				cfg.Transcripts.Format = "pdf"
				cfg.Server.Port = 9090
				return cfg
			},
		},
		{
			name: "explicit config file path",
			configContent: `chat:
  provider: openai
`,
			useExplicitPath: true,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Chat.Provider = "openai"
				return cfg
			},
		},
		{
			name: "credentials come from the environment only",
			configContent: `huggingface:
  api_key: from-file
`,
			env: map[string]string{
				"HUGGING_FACE_API_KEY":     "hf-env",
				"GOOGLE_TRANSLATE_API_KEY": "google-env",
				"OPENAI_API_KEY":           "openai-env",
				"DB_PASSWORD":              "db-env",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.HuggingFace.APIKey = "hf-env"
				cfg.Translation.Google.APIKey = "google-env"
				cfg.Chat.OpenAI.APIKey = "openai-env"
				cfg.Database.Password = "db-env"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `translation:
  provider: mymemory
  invalid yaml format here [[[
`,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unknown providers are rejected",
			configContent: `translation:
  provider: deepl
chat:
  provider: local
`,
			wantErrorContains: []string{
				"invalid configuration",
				"provider must be one of [mymemory google huggingface]",
				"provider must be one of [huggingface openai]",
			},
		},
		{
			name: "missing catalog file is rejected",
			configContent: `resources:
  catalog_file: /nonexistent/resources.yml
`,
			wantErrorContains: []string{
				"catalog_file must be an existing and readable file",
			},
		},
		{
			name: "unknown transcript format is rejected",
			configContent: `transcripts:
  format: docx
`,
			wantErrorContains: []string{
				"format must be one of [text markdown yaml pdf]",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearCredentialEnv(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			tempDir := t.TempDir()

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "langtutor.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				if tt.configContent != "" {
					require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yml"), []byte(tt.configContent), 0644))
				}
				t.Chdir(tempDir)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if len(tt.wantErrorContains) > 0 {
				require.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}

func TestTimeouts(t *testing.T) {
	assert.Equal(t, 10*time.Second, TranslationConfig{TimeoutSeconds: 10}.Timeout())
	assert.Equal(t, time.Duration(0), TranslationConfig{}.Timeout())
	assert.Equal(t, 30*time.Second, ChatConfig{TimeoutSeconds: 30}.Timeout())
}

func TestConfigLoader_ExportDirectory(t *testing.T) {
	clearCredentialEnv(t)
	tempDir := t.TempDir()
	t.Chdir(tempDir)

	existingFile := filepath.Join(tempDir, "transcripts.txt")
	require.NoError(t, os.WriteFile(existingFile, []byte("not a directory"), 0644))

	tests := []struct {
		name      string
		exportDir string
		wantErr   string
	}{
		{
			name:      "existing directory",
			exportDir: tempDir,
		},
		{
			name:      "directory created on export",
			exportDir: filepath.Join(tempDir, "exports", "transcripts"),
		},
		{
			name:      "existing file",
			exportDir: existingFile,
			wantErr:   "transcripts.export_directory must be a directory or a path which does not exist yet",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(configPath, []byte("transcripts:\n  export_directory: "+tt.exportDir+"\n"), 0644))

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.exportDir, got.Transcripts.ExportDirectory)
		})
	}
}
