// Package google is a translation provider backed by the Google Cloud Translation v2 REST API.
package google

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"github.com/at-ishikawa/langtutor/internal/language"
	"github.com/at-ishikawa/langtutor/internal/translation"
)

const (
	DefaultBaseURL = "https://translation.googleapis.com"
	providerName   = "google"
)

type Client struct {
	httpClient *resty.Client
}

func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetQueryParam("key", apiKey)
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

type TranslateRequest struct {
	Q      string `json:"q"`
	Target string `json:"target"`
	Source string `json:"source,omitempty"`
	Format string `json:"format"`
}

type TranslateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText         *string `json:"translatedText"`
			DetectedSourceLanguage string  `json:"detectedSourceLanguage,omitempty"`
		} `json:"translations"`
	} `json:"data"`
}

type DetectRequest struct {
	Q string `json:"q"`
}

type DetectResponse struct {
	Data struct {
		Detections [][]struct {
			Language   string  `json:"language"`
			Confidence float64 `json:"confidence"`
		} `json:"detections"`
	} `json:"data"`
}

func (client *Client) Translate(ctx context.Context, req translation.Request) (string, error) {
	body := TranslateRequest{
		Q:      req.Text,
		Target: req.Target,
		Format: "text",
	}
	if source := req.SourceOrAuto(); source != language.AutoDetect {
		body.Source = source
	}

	var result TranslateResponse
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post("/language/translate/v2")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	if len(result.Data.Translations) == 0 {
		return "", fmt.Errorf("empty translations: %s", response.String())
	}
	if result.Data.Translations[0].TranslatedText == nil {
		return "", fmt.Errorf("response has no translatedText: %s", response.String())
	}
	return *result.Data.Translations[0].TranslatedText, nil
}

// DetectLanguage implements translation.Detector
func (client *Client) DetectLanguage(ctx context.Context, text string) (string, error) {
	var result DetectResponse
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(DetectRequest{Q: text}).
		SetResult(&result).
		Post("/language/translate/v2/detect")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	if len(result.Data.Detections) == 0 || len(result.Data.Detections[0]) == 0 {
		return "", fmt.Errorf("empty detections: %s", response.String())
	}
	return result.Data.Detections[0][0].Language, nil
}
