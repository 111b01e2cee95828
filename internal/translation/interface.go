package translation

import (
	"context"

	"github.com/at-ishikawa/langtutor/internal/language"
)

//go:generate mockgen -source=interface.go -destination=../mocks/translation/mock_provider.go -package=mock_translation

// Provider translates text through a remote translation service.
type Provider interface {
	Name() string
	Translate(ctx context.Context, req Request) (string, error)
}

// Detector is implemented by providers which can detect the language of a text remotely.
type Detector interface {
	DetectLanguage(ctx context.Context, text string) (string, error)
}

// Request is a single translation request
type Request struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// SourceOrAuto returns the source language, or language.AutoDetect when none is set.
func (req Request) SourceOrAuto() string {
	if req.Source == "" {
		return language.AutoDetect
	}
	return req.Source
}

// LanguagePair formats the request languages as "source|target".
func (req Request) LanguagePair() string {
	return req.SourceOrAuto() + "|" + req.Target
}

type Status string

const (
	// StatusOK means the text was translated by the provider.
	StatusOK Status = "ok"
	// StatusDegraded means the provider failed and the text is a placeholder, not a translation.
	StatusDegraded Status = "degraded"
)

// Result is the outcome of a translation.
type Result struct {
	Text     string `json:"text"`
	Status   Status `json:"status"`
	Provider string `json:"provider"`

	// Reason is the provider failure behind a degraded result.
	Reason error `json:"-"`
}

func (r Result) Degraded() bool {
	return r.Status == StatusDegraded
}
