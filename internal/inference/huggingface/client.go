package huggingface

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/langtutor/internal/inference"
)

const DefaultBaseURL = "https://api-inference.huggingface.co/models"

type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

func NewClient(baseURL, apiKey string, retryAttempts uint) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

type ConversationalRequest struct {
	Inputs ConversationalInputs `json:"inputs"`
}

type ConversationalInputs struct {
	Text               string   `json:"text"`
	PastUserInputs     []string `json:"past_user_inputs"`
	GeneratedResponses []string `json:"generated_responses"`
}

type ConversationalResponse struct {
	GeneratedText *string `json:"generated_text"`
}

func (r *ConversationalResponse) UnmarshalJSON(data []byte) error {
	// some models answer with a list holding a single output
	type output struct {
		GeneratedText *string `json:"generated_text"`
	}
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var outputs []output
		if err := json.Unmarshal(data, &outputs); err != nil {
			return fmt.Errorf("json.Unmarshal > %w", err)
		}
		if len(outputs) > 0 {
			r.GeneratedText = outputs[0].GeneratedText
		}
		return nil
	}

	var o output
	if err := json.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	r.GeneratedText = o.GeneratedText
	return nil
}

type ErrorResponse struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time,omitempty"`
}

var errMalformedResponse = errors.New("response has no generated_text")

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	// 503 is returned while a model is loading
	if strings.Contains(errStr, "response error 5") {
		return true
	}
	if strings.Contains(errStr, "response error 429") {
		return true
	}
	return false
}

// Chat implements the inference.Client interface
func (client *Client) Chat(ctx context.Context, params inference.ChatRequest) (string, error) {
	var result string
	if err := retry.Do(
		func() error {
			reply, err := client.chat(ctx, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = reply
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return "", err
	}
	return result, nil
}

func (client *Client) chat(ctx context.Context, params inference.ChatRequest) (string, error) {
	if params.Model == "" {
		params.Model = inference.DefaultModel
	}
	requestBody := ConversationalRequest{
		Inputs: ConversationalInputs{
			Text:               params.Message,
			PastUserInputs:     params.PastUserInputs(),
			GeneratedResponses: params.GeneratedResponses(),
		},
	}

	var responseBody ConversationalResponse
	var errorBody ErrorResponse
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&responseBody).
		SetError(&errorBody).
		Post("/" + params.Model)
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		message := errorBody.Error
		if message == "" {
			message = response.String()
		}
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), message)
	}
	if responseBody.GeneratedText == nil {
		return "", fmt.Errorf("%w: %s", errMalformedResponse, response.String())
	}

	slog.Default().Debug("huggingface chat response",
		"model", params.Model,
		"historyLength", len(params.History),
	)
	return *responseBody.GeneratedText, nil
}
