package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/at-ishikawa/langtutor/internal/inference"
)

// ChatHandler serves the chat service. It keeps no conversation state:
// callers send the history with every message.
type ChatHandler struct {
	client       inference.Client
	defaultModel string
	timeout      time.Duration
	validator    *requestValidator
}

func NewChatHandler(client inference.Client, defaultModel string, timeout time.Duration) (*ChatHandler, error) {
	v, err := newRequestValidator()
	if err != nil {
		return nil, fmt.Errorf("newRequestValidator > %w", err)
	}
	if defaultModel == "" {
		defaultModel = inference.DefaultModel
	}
	return &ChatHandler{
		client:       client,
		defaultModel: defaultModel,
		timeout:      timeout,
		validator:    v,
	}, nil
}

func (h *ChatHandler) Chat(
	ctx context.Context,
	req *connect.Request[ChatRequest],
) (*connect.Response[ChatResponse], error) {
	if err := h.validator.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	model := req.Msg.Model
	if model == "" {
		model = h.defaultModel
	}
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	reply, err := h.client.Chat(ctx, inference.ChatRequest{
		Model:   model,
		Message: req.Msg.Message,
		History: req.Msg.History,
	})
	if err != nil {
		slog.Default().Warn("chat failed", "model", model, "error", err)
		return nil, connect.NewError(connect.CodeUnavailable, fmt.Errorf("failed to get a reply from %s: %w", model, err))
	}

	return connect.NewResponse(&ChatResponse{
		Reply: reply,
		Model: model,
	}), nil
}
