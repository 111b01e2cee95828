package speech

import (
	"context"
	"errors"
	"strings"
	"sync"
)

//go:generate mockgen -source=recognizer.go -destination=../mocks/speech/mock_recognizer.go -package=mock_speech

// ErrUnsupported is returned when the platform has no speech-to-text capability
var ErrUnsupported = errors.New("speech recognition is not supported on this platform")

// Recognizer captures speech as a live transcript, one listening session at a time
type Recognizer interface {
	Supported() bool
	Start(ctx context.Context) error
	Stop()
	Reset()
	Transcript() string
	Listening() bool
}

// Session is a Recognizer whose text comes from a platform source calling Feed.
// Text is only accumulated while listening, and is kept as-is after Stop until
// the next Start or Reset.
type Session struct {
	supported bool

	mu         sync.Mutex
	listening  bool
	transcript strings.Builder
	cancel     context.CancelFunc
	generation uint64
}

func NewSession(supported bool) *Session {
	return &Session{
		supported: supported,
	}
}

func (s *Session) Supported() bool {
	return s.supported
}

// Start begins a new session and drops the transcript of any prior one.
// The session stops by itself when ctx is done.
func (s *Session) Start(ctx context.Context) error {
	if !s.supported {
		return ErrUnsupported
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.transcript.Reset()
	s.listening = true
	s.generation++

	sessionCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	generation := s.generation
	go func() {
		<-sessionCtx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.generation == generation {
			s.stopLocked()
		}
	}()
	return nil
}

// Stop freezes the transcript
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Session) stopLocked() {
	s.listening = false
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Reset clears the transcript without changing whether the session is listening
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript.Reset()
}

// Feed appends recognized text, separated by a space, while listening.
// It reports whether the text was accepted.
func (s *Session) Feed(text string) bool {
	text = strings.TrimSpace(text)
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.listening || text == "" {
		return false
	}
	if s.transcript.Len() > 0 {
		s.transcript.WriteByte(' ')
	}
	s.transcript.WriteString(text)
	return true
}

func (s *Session) Transcript() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript.String()
}

func (s *Session) Listening() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listening
}
