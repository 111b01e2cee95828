// Package translation translates text through a remote provider and degrades
// to a tagged placeholder when the provider cannot be reached.
package translation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/at-ishikawa/langtutor/internal/language"
)

const DefaultTimeout = 10 * time.Second

var ErrMissingTarget = errors.New("target language is required")

// Client translates text with a single provider.
// A Client is immutable after NewClient and safe for concurrent use.
type Client struct {
	provider Provider
	timeout  time.Duration
	tags     *fallbackTags
}

type Option func(*Client)

// WithTimeout bounds each provider call. A zero duration disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(client *Client) {
		client.timeout = timeout
	}
}

func NewClient(provider Provider, options ...Option) (*Client, error) {
	tags, err := newFallbackTags()
	if err != nil {
		return nil, fmt.Errorf("newFallbackTags > %w", err)
	}

	client := &Client{
		provider: provider,
		timeout:  DefaultTimeout,
		tags:     tags,
	}
	for _, option := range options {
		option(client)
	}
	return client, nil
}

// ProviderName returns the name of the provider behind this client.
func (client *Client) ProviderName() string {
	return client.provider.Name()
}

// Provider returns the provider behind this client.
func (client *Client) Provider() Provider {
	return client.provider
}

// Translate sends one request to the provider.
// Provider failures never surface as an error: the result is degraded instead and
// its text is the fallback placeholder. An error is returned only for a request
// without a target language, or when ctx itself was cancelled.
func (client *Client) Translate(ctx context.Context, req Request) (Result, error) {
	if req.Target == "" {
		return Result{}, ErrMissingTarget
	}
	req.Source = req.SourceOrAuto()

	callCtx := ctx
	if client.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, client.timeout)
		defer cancel()
	}

	text, err := client.provider.Translate(callCtx, req)
	if err == nil {
		return Result{
			Text:     text,
			Status:   StatusOK,
			Provider: client.provider.Name(),
		}, nil
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		return Result{}, fmt.Errorf("translation cancelled > %w", ctx.Err())
	}

	slog.Default().Warn("translation provider failed, returning a placeholder",
		"provider", client.provider.Name(),
		"languagePair", req.LanguagePair(),
		"error", err,
	)
	return Result{
		Text:     client.FallbackTranslation(req.Text, req.Target),
		Status:   StatusDegraded,
		Provider: client.provider.Name(),
		Reason:   err,
	}, nil
}

// TranslateText returns the translated text, or the fallback placeholder when
// the translation could not be done. It never fails.
func (client *Client) TranslateText(ctx context.Context, text, target, source string) string {
	result, err := client.Translate(ctx, Request{
		Text:   text,
		Source: source,
		Target: target,
	})
	if err != nil {
		return client.FallbackTranslation(text, target)
	}
	return result.Text
}

// FallbackTranslation prefixes the text with the placeholder tag of the target language.
// It is not a translation.
func (client *Client) FallbackTranslation(text, target string) string {
	return client.tags.apply(text, target)
}

func (client *Client) DetectLanguage(text string) string {
	return DetectLanguage(text)
}

// DetectLanguageRemote asks the provider to detect the language when it can,
// and falls back to DetectLanguage otherwise.
func (client *Client) DetectLanguageRemote(ctx context.Context, text string) string {
	detector, ok := client.provider.(Detector)
	if !ok {
		return DetectLanguage(text)
	}

	callCtx := ctx
	if client.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, client.timeout)
		defer cancel()
	}
	code, err := detector.DetectLanguage(callCtx, text)
	if err != nil || code == "" {
		slog.Default().Warn("remote language detection failed",
			"provider", client.provider.Name(),
			"error", err,
		)
		return DetectLanguage(text)
	}
	return code
}

func (client *Client) SupportedLanguages() []language.Descriptor {
	return language.Supported()
}

func (client *Client) NameForCode(code string) string {
	return language.NameForCode(code)
}
