package openai

import (
	"context"
	"fmt"
	"log/slog"

	"resty.dev/v3"

	"github.com/at-ishikawa/langtutor/internal/inference"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
)

const tutorPrompt = `You are a friendly language tutor.
Reply in the language the learner writes in, keep answers short, and gently correct mistakes.`

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

func NewClient(baseURL, apiKey, model string, retryAttempts uint) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client *Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Chat implements the inference.Client interface.
// The configured model is used regardless of the request model.
func (client *Client) Chat(ctx context.Context, params inference.ChatRequest) (string, error) {
	var result string
	if err := withRetry(ctx, client.maxRetryAttempts, func() error {
		reply, err := client.chat(ctx, params)
		if err != nil {
			return err
		}
		result = reply
		return nil
	}); err != nil {
		return "", err
	}
	return result, nil
}

func (client *Client) getRequestBody(params inference.ChatRequest) ChatCompletionRequest {
	messages := make([]Message, 0, len(params.History)*2+2)
	messages = append(messages, Message{Role: RoleSystem, Content: tutorPrompt})
	for _, turn := range params.History {
		messages = append(messages,
			Message{Role: RoleUser, Content: turn.User},
			Message{Role: RoleAssistant, Content: turn.Bot},
		)
	}
	messages = append(messages, Message{Role: RoleUser, Content: params.Message})

	return ChatCompletionRequest{
		Model:       client.model,
		Messages:    messages,
		Temperature: 0.7,
	}
}

func (client *Client) chat(ctx context.Context, params inference.ChatRequest) (string, error) {
	requestBody := client.getRequestBody(params)

	var errorBody ErrorResponse
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		SetError(&errorBody).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		message := errorBody.Error.Message
		if message == "" {
			message = response.String()
		}
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), message)
	}

	responseBody, _ := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return "", fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty response content: %s", response.String())
	}
	slog.Default().Debug("openai chat response",
		"model", responseBody.Model,
		"totalTokens", responseBody.Usage.TotalTokens,
	)
	return content, nil
}
