package server

import (
	"context"
	"fmt"

	"connectrpc.com/connect"

	"github.com/at-ishikawa/langtutor/internal/resource"
)

// ResourceHandler serves the resource library.
type ResourceHandler struct {
	repository resource.Repository
	validator  *requestValidator
}

func NewResourceHandler(repository resource.Repository) (*ResourceHandler, error) {
	v, err := newRequestValidator()
	if err != nil {
		return nil, fmt.Errorf("newRequestValidator > %w", err)
	}
	return &ResourceHandler{
		repository: repository,
		validator:  v,
	}, nil
}

func (h *ResourceHandler) ListResources(
	ctx context.Context,
	req *connect.Request[ListResourcesRequest],
) (*connect.Response[ListResourcesResponse], error) {
	if err := h.validator.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	resources, err := h.repository.FindResources(ctx, req.Msg.Language, resource.Level(req.Msg.Level))
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("find resources: %w", err))
	}
	chatbots, err := h.repository.FindChatbots(ctx, req.Msg.Language)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("find chatbots: %w", err))
	}

	if chatbots == nil {
		chatbots = []resource.Chatbot{}
	}
	return connect.NewResponse(&ListResourcesResponse{
		Resources: resource.Filter(resources, req.Msg.Search),
		Chatbots:  chatbots,
	}), nil
}
