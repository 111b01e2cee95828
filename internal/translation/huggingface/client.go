// Package huggingface is a translation provider running the Helsinki-NLP opus-mt
// models on the Hugging Face Inference API.
package huggingface

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"github.com/at-ishikawa/langtutor/internal/translation"
)

const (
	DefaultBaseURL = "https://api-inference.huggingface.co/models"
	providerName   = "huggingface"

	defaultModel = "Helsinki-NLP/opus-mt-en-es"
)

// The models translate from English only.
var models = map[string]string{
	"es": "Helsinki-NLP/opus-mt-en-es",
	"fr": "Helsinki-NLP/opus-mt-en-fr",
	"de": "Helsinki-NLP/opus-mt-en-de",
	"it": "Helsinki-NLP/opus-mt-en-it",
	"pt": "Helsinki-NLP/opus-mt-en-pt",
	"ru": "Helsinki-NLP/opus-mt-en-ru",
}

type Client struct {
	httpClient *resty.Client
}

func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient: client,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

func (client *Client) Name() string {
	return providerName
}

// Model returns the model used to translate into the target language.
func Model(target string) string {
	if model, ok := models[target]; ok {
		return model
	}
	return defaultModel
}

type Request struct {
	Inputs string `json:"inputs"`
}

type Output struct {
	TranslationText *string `json:"translation_text"`
}

func (client *Client) Translate(ctx context.Context, req translation.Request) (string, error) {
	var result []Output
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(Request{Inputs: req.Text}).
		SetResult(&result).
		Post("/" + Model(req.Target))
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	if len(result) == 0 {
		return "", fmt.Errorf("empty response body: %s", response.String())
	}
	if result[0].TranslationText == nil {
		return "", fmt.Errorf("response has no translation_text: %s", response.String())
	}
	return *result[0].TranslationText, nil
}
