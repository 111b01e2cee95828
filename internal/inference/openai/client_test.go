package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"resty.dev/v3"

	"github.com/at-ishikawa/langtutor/internal/inference"
)

func TestClient_Chat(t *testing.T) {
	tests := []struct {
		name              string
		request           inference.ChatRequest
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		want            string
		wantErrorString string
	}{
		{
			name: "Success with history",
			request: inference.ChatRequest{
				Model:   inference.DefaultModel,
				Message: "How do I say goodbye?",
				History: []inference.Turn{
					{User: "Hola", Bot: "¡Hola! ¿Qué tal?"},
				},
			},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/chat/completions", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var reqBody ChatCompletionRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
				assert.Equal(t, "gpt-4", reqBody.Model)
				require.Len(t, reqBody.Messages, 4)
				assert.Equal(t, RoleSystem, reqBody.Messages[0].Role)
				assert.Equal(t, Message{Role: RoleUser, Content: "Hola"}, reqBody.Messages[1])
				assert.Equal(t, Message{Role: RoleAssistant, Content: "¡Hola! ¿Qué tal?"}, reqBody.Messages[2])
				assert.Equal(t, Message{Role: RoleUser, Content: "How do I say goodbye?"}, reqBody.Messages[3])

				mockResponse := ChatCompletionResponse{
					ID:      "chatcmpl-123",
					Object:  "chat.completion",
					Created: 1677652288,
					Model:   "gpt-4",
					Choices: []Choice{
						{
							Message:      ChoiceMessage{Role: RoleAssistant, Content: "You say «adiós»."},
							FinishReason: "stop",
						},
					},
					Usage: Usage{PromptTokens: 30, CompletionTokens: 5, TotalTokens: 35},
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				require.NoError(t, json.NewEncoder(w).Encode(mockResponse))
			},
			want: "You say «adiós».",
		},
		{
			name:    "HTTP 401 error carries the provider message",
			request: inference.ChatRequest{Message: "Hi"},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`))
			},
			wantErrorString: "response error 401: Incorrect API key provided",
		},
		{
			name:    "No choices",
			request: inference.ChatRequest{Message: "Hi"},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"id": "chatcmpl-456", "choices": []}`))
			},
			wantErrorString: "empty response body or choices",
		},
		{
			name:    "Empty content",
			request: inference.ChatRequest{Message: "Hi"},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": ""}}]}`))
			},
			wantErrorString: "empty response content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			client := &Client{
				httpClient:       resty.New().SetBaseURL(server.URL),
				model:            "gpt-4",
				maxRetryAttempts: 0,
			}

			got, gotErr := client.Chat(context.Background(), tt.request)
			if tt.wantErrorString != "" {
				require.Error(t, gotErr)
				assert.Contains(t, gotErr.Error(), tt.wantErrorString)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewClient(t *testing.T) {
	client := NewClient("", "key", "", 0)
	assert.Equal(t, DefaultModel, client.GetModel())
	require.NoError(t, client.Close())
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "unknown error", err: assert.AnError, want: false},
		{name: "deadline", err: context.DeadlineExceeded, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}
