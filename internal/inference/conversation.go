package inference

import (
	"context"
	"fmt"
	"sync"
)

// Conversation is the running chat of one session with a model.
// Turns are appended when a reply arrives; concurrent sends are not queued,
// so turns are in completion order.
type Conversation struct {
	client Client
	model  string

	mu       sync.Mutex
	turns    []Turn
	inFlight int
	err      error
}

func NewConversation(client Client, model string) *Conversation {
	if model == "" {
		model = DefaultModel
	}
	return &Conversation{
		client: client,
		model:  model,
	}
}

func (c *Conversation) Model() string {
	return c.model
}

// Send sends the message with the current history and appends the turn on success.
// On failure the history is left untouched and the error is kept until the next send or Clear.
func (c *Conversation) Send(ctx context.Context, message string) (string, error) {
	c.mu.Lock()
	history := make([]Turn, len(c.turns))
	copy(history, c.turns)
	c.inFlight++
	c.err = nil
	c.mu.Unlock()

	reply, err := c.client.Chat(ctx, ChatRequest{
		Model:   c.model,
		Message: message,
		History: history,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight--
	if err != nil {
		c.err = fmt.Errorf("failed to get a reply from %s: %w", c.model, err)
		return "", c.err
	}
	c.turns = append(c.turns, Turn{User: message, Bot: reply})
	return reply, nil
}

// Turns returns a copy of the turns so far.
func (c *Conversation) Turns() []Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	turns := make([]Turn, len(c.turns))
	copy(turns, c.turns)
	return turns
}

func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.turns)
}

// Loading reports whether a send is waiting for its reply.
func (c *Conversation) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight > 0
}

// Err returns the error of the last failed send.
func (c *Conversation) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Clear drops all turns and the last error.
func (c *Conversation) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = nil
	c.err = nil
}
