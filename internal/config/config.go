package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Translation TranslationConfig `mapstructure:"translation"`
	Chat        ChatConfig        `mapstructure:"chat"`
	HuggingFace HuggingFaceConfig `mapstructure:"huggingface"`
	Resources   ResourcesConfig   `mapstructure:"resources"`
	Transcripts TranscriptsConfig `mapstructure:"transcripts"`
	Database    DatabaseConfig    `mapstructure:"database"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"gte=0,lte=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type TranslationConfig struct {
	Provider       string         `mapstructure:"provider" validate:"oneof=mymemory google huggingface"`
	TimeoutSeconds int            `mapstructure:"timeout_seconds" validate:"gte=0"`
	MyMemory       MyMemoryConfig `mapstructure:"mymemory"`
	Google         GoogleConfig   `mapstructure:"google"`
}

// Timeout bounds one provider call. Zero disables the timeout.
func (c TranslationConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type MyMemoryConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
	// Email raises the daily quota of the free tier
	Email string `mapstructure:"email" validate:"omitempty,email"`
}

type GoogleConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey  string `mapstructure:"api_key"`
}

type HuggingFaceConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey  string `mapstructure:"api_key"`
}

type ChatConfig struct {
	Provider         string       `mapstructure:"provider" validate:"oneof=huggingface openai"`
	Model            string       `mapstructure:"model"`
	TimeoutSeconds   int          `mapstructure:"timeout_seconds" validate:"gte=0"`
	MaxRetryAttempts uint         `mapstructure:"max_retry_attempts" validate:"lte=5"`
	OpenAI           OpenAIConfig `mapstructure:"openai"`
}

func (c ChatConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type OpenAIConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

type ResourcesConfig struct {
	Source string `mapstructure:"source" validate:"oneof=catalog database"`
	// CatalogFile replaces the embedded catalog when set
	CatalogFile string `mapstructure:"catalog_file" validate:"omitempty,file"`
}

type TranscriptsConfig struct {
	ExportDirectory string `mapstructure:"export_directory" validate:"required,exportdir"`
	Format          string `mapstructure:"format" validate:"oneof=text markdown yaml pdf"`
	// MarkdownTemplate replaces the bundled template of markdown and pdf exports
	MarkdownTemplate string `mapstructure:"markdown_template" validate:"omitempty,file"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/langtutor")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("translation.provider", "mymemory")
	v.SetDefault("translation.timeout_seconds", 10)
	v.SetDefault("chat.provider", "huggingface")
	v.SetDefault("chat.model", "microsoft/DialoGPT-medium")
	v.SetDefault("chat.timeout_seconds", 30)
	v.SetDefault("chat.max_retry_attempts", 0)
	v.SetDefault("chat.openai.model", "gpt-4o-mini")
	v.SetDefault("resources.source", "catalog")
	v.SetDefault("transcripts.export_directory", filepath.Join("outputs", "transcripts"))
	v.SetDefault("transcripts.format", "text")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "langtutor")
	v.SetDefault("database.username", "user")

	// Bind credentials to environment variables only (not from config file)
	for key, env := range map[string]string{
		"huggingface.api_key":        "HUGGING_FACE_API_KEY",
		"translation.google.api_key": "GOOGLE_TRANSLATE_API_KEY",
		"chat.openai.api_key":        "OPENAI_API_KEY",
		"database.password":          "DB_PASSWORD",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
