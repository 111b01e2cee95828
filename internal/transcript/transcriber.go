package transcript

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/at-ishikawa/langtutor/internal/language"
	"github.com/at-ishikawa/langtutor/internal/speech"
	"github.com/at-ishikawa/langtutor/internal/translation"
)

// Transcriber translates each completed utterance of a recognizer into a log
type Transcriber struct {
	recognizer speech.Recognizer
	translator *translation.Client
	log        *Log
	target     string
	now        func() time.Time
}

type TranscriberOption func(*Transcriber)

// WithClock overrides the clock used for entry timestamps
func WithClock(now func() time.Time) TranscriberOption {
	return func(t *Transcriber) {
		t.now = now
	}
}

func NewTranscriber(
	recognizer speech.Recognizer,
	translator *translation.Client,
	log *Log,
	target string,
	options ...TranscriberOption,
) (*Transcriber, error) {
	if !recognizer.Supported() {
		return nil, speech.ErrUnsupported
	}
	if target == "" {
		return nil, translation.ErrMissingTarget
	}
	transcriber := &Transcriber{
		recognizer: recognizer,
		translator: translator,
		log:        log,
		target:     target,
		now:        time.Now,
	}
	for _, option := range options {
		option(transcriber)
	}
	return transcriber, nil
}

func (t *Transcriber) Target() string {
	return t.target
}

// Start begins a new utterance, dropping any previous transcript
func (t *Transcriber) Start(ctx context.Context) error {
	t.recognizer.Reset()
	if err := t.recognizer.Start(ctx); err != nil {
		return fmt.Errorf("recognizer.Start > %w", err)
	}
	return nil
}

// Stop ends the utterance and translates it.
// It reports false when the transcript was blank and nothing was logged.
func (t *Transcriber) Stop(ctx context.Context) (Entry, bool, error) {
	t.recognizer.Stop()
	return t.Complete(ctx)
}

// Complete logs the current transcript once the recognizer is no longer listening
func (t *Transcriber) Complete(ctx context.Context) (Entry, bool, error) {
	if t.recognizer.Listening() {
		return Entry{}, false, nil
	}
	text := t.recognizer.Transcript()
	if strings.TrimSpace(text) == "" {
		return Entry{}, false, nil
	}

	result, err := t.translator.Translate(ctx, translation.Request{
		Text:   text,
		Source: language.AutoDetect,
		Target: t.target,
	})
	if err != nil {
		return Entry{}, false, fmt.Errorf("translator.Translate > %w", err)
	}

	entry := Entry{
		Original:   text,
		Translated: result.Text,
		Timestamp:  t.now(),
		Degraded:   result.Degraded(),
	}
	t.log.Append(entry)
	slog.Default().Debug("transcribed utterance",
		"target", t.target,
		"status", result.Status,
		"entries", t.log.Len(),
	)
	return entry, true, nil
}
