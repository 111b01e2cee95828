// Package server provides Connect RPC handlers for translation, chat and the resource library.
package server

import (
	"context"
	"fmt"

	"connectrpc.com/connect"

	"github.com/at-ishikawa/langtutor/internal/language"
	"github.com/at-ishikawa/langtutor/internal/translation"
)

// TranslationHandler serves the translation service.
type TranslationHandler struct {
	client    *translation.Client
	validator *requestValidator
}

func NewTranslationHandler(client *translation.Client) (*TranslationHandler, error) {
	v, err := newRequestValidator()
	if err != nil {
		return nil, fmt.Errorf("newRequestValidator > %w", err)
	}
	return &TranslationHandler{
		client:    client,
		validator: v,
	}, nil
}

// Translate never fails because of the provider: a degraded result is still a response.
func (h *TranslationHandler) Translate(
	ctx context.Context,
	req *connect.Request[TranslateRequest],
) (*connect.Response[TranslateResponse], error) {
	if err := h.validator.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	result, err := h.client.Translate(ctx, translation.Request{
		Text:   req.Msg.Text,
		Source: req.Msg.SourceLanguage,
		Target: req.Msg.TargetLanguage,
	})
	if err != nil {
		return nil, connect.NewError(connect.CodeCanceled, err)
	}

	return connect.NewResponse(&TranslateResponse{
		TranslatedText: result.Text,
		Status:         string(result.Status),
		Degraded:       result.Degraded(),
		Provider:       result.Provider,
	}), nil
}

func (h *TranslationHandler) DetectLanguage(
	ctx context.Context,
	req *connect.Request[DetectLanguageRequest],
) (*connect.Response[DetectLanguageResponse], error) {
	if err := h.validator.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	code := h.client.DetectLanguage(req.Msg.Text)
	if req.Msg.Remote {
		code = h.client.DetectLanguageRemote(ctx, req.Msg.Text)
	}
	return connect.NewResponse(&DetectLanguageResponse{
		Language: code,
		Name:     h.client.NameForCode(code),
	}), nil
}

func (h *TranslationHandler) ListLanguages(
	_ context.Context,
	_ *connect.Request[ListLanguagesRequest],
) (*connect.Response[ListLanguagesResponse], error) {
	descriptors := h.client.SupportedLanguages()
	languages := make([]Language, 0, len(descriptors))
	for _, descriptor := range descriptors {
		languages = append(languages, Language{
			Code:         descriptor.Code,
			Name:         descriptor.Name,
			SpeechLocale: language.SpeechLocale(descriptor.Code),
		})
	}
	return connect.NewResponse(&ListLanguagesResponse{
		Languages: languages,
	}), nil
}
