package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client generates replies from a hosted conversational model
type Client interface {
	Chat(ctx context.Context, params ChatRequest) (string, error)
}

// Turn is one user message paired with the reply generated for it
type Turn struct {
	User string `json:"user" yaml:"user"`
	Bot  string `json:"bot" yaml:"bot"`
}

// ChatRequest holds a new message and the turns before it.
// Clients are stateless, so the caller sends the whole history on every call.
type ChatRequest struct {
	Model   string `json:"model"`
	Message string `json:"message"`
	History []Turn `json:"history,omitempty"`
}

// PastUserInputs returns the user side of the history in order.
func (req ChatRequest) PastUserInputs() []string {
	inputs := make([]string, 0, len(req.History))
	for _, turn := range req.History {
		inputs = append(inputs, turn.User)
	}
	return inputs
}

// GeneratedResponses returns the bot side of the history in order.
func (req ChatRequest) GeneratedResponses() []string {
	responses := make([]string, 0, len(req.History))
	for _, turn := range req.History {
		responses = append(responses, turn.Bot)
	}
	return responses
}

const (
	DefaultModel = "microsoft/DialoGPT-medium"

	// DefaultMaxRetryAttempts keeps chat to a single request per message
	DefaultMaxRetryAttempts = 0
)
