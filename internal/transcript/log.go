package transcript

import (
	"sync"
	"time"
)

// Entry is one completed utterance and its translation
type Entry struct {
	Original   string    `json:"original" yaml:"original"`
	Translated string    `json:"translated" yaml:"translated"`
	Timestamp  time.Time `json:"timestamp" yaml:"timestamp"`
	// Degraded marks a placeholder translation
	Degraded bool `json:"degraded,omitempty" yaml:"degraded,omitempty"`
}

// Log is an append-only, in-memory list of entries
type Log struct {
	mu      sync.Mutex
	entries []Entry
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Append(entry Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

// Entries returns a copy in append order
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
